package classifying

import (
	"strings"

	"github.com/vfg2006/search-brand-reporter/internal/domain"
)

// Status de segmentação que removem um termo Performance Max do relatório.
// Um termo excluído na interface não deve aparecer como volume em nenhum
// balde, nem como zero.
const (
	targetingStatusExcluded      = "EXCLUDED"
	targetingStatusAddedExcluded = "ADDED_EXCLUDED"
)

// StandardClassifier roteia linhas de termo de pesquisa dos canais Search e
// Shopping: o matcher decide entre branded e non-branded, sem filtragem.
type StandardClassifier struct {
	matcher     *Matcher
	granularity domain.Granularity
	result      *domain.ChannelResult
}

func NewStandardClassifier(matcher *Matcher, granularity domain.Granularity, channel domain.Channel) *StandardClassifier {
	return &StandardClassifier{
		matcher:     matcher,
		granularity: granularity,
		result:      domain.NewChannelResult(channel),
	}
}

// Ingest acumula a linha em exatamente um slot (período, classificação).
// Linha sem período resolvível é descartada e o retorno é falso.
func (c *StandardClassifier) Ingest(row domain.SearchTermRow) bool {
	periodKey, ok := domain.PeriodKeyFor(c.granularity, row.PeriodRaw)
	if !ok {
		return false
	}

	classification := domain.ClassificationNonBranded
	if c.matcher.Matches(row.SearchTerm) {
		classification = domain.ClassificationBranded
	}

	c.result.AddRow(periodKey, classification, row.Metrics)

	return true
}

func (c *StandardClassifier) Result() *domain.ChannelResult {
	return c.result
}

// ExclusionAwareClassifier roteia termos de pesquisa de Performance Max.
// Termos com status EXCLUDED ou ADDED_EXCLUDED são descartados antes de
// qualquer outra regra; só depois o override allNonBranded força o restante
// para non-branded, quando ativo. A ordem é deliberada: o override nunca
// ressuscita um termo excluído.
type ExclusionAwareClassifier struct {
	matcher       *Matcher
	granularity   domain.Granularity
	allNonBranded bool
	result        *domain.ChannelResult
}

func NewExclusionAwareClassifier(matcher *Matcher, granularity domain.Granularity, allNonBranded bool) *ExclusionAwareClassifier {
	return &ExclusionAwareClassifier{
		matcher:       matcher,
		granularity:   granularity,
		allNonBranded: allNonBranded,
		result:        domain.NewChannelResult(domain.ChannelPerformanceMax),
	}
}

func (c *ExclusionAwareClassifier) Ingest(row domain.PMaxSearchTermRow) bool {
	status := strings.ToUpper(strings.TrimSpace(row.TargetingStatus))
	if status == targetingStatusExcluded || status == targetingStatusAddedExcluded {
		return false
	}

	periodKey, ok := domain.PeriodKeyFor(c.granularity, row.PeriodRaw)
	if !ok {
		return false
	}

	classification := domain.ClassificationNonBranded
	if !c.allNonBranded && c.matcher.Matches(row.SearchTerm) {
		classification = domain.ClassificationBranded
	}

	c.result.AddRow(periodKey, classification, row.Metrics)

	return true
}

func (c *ExclusionAwareClassifier) Result() *domain.ChannelResult {
	return c.result
}

// CategoryClassifier roteia insights de categoria de Performance Max, a
// única fonte com o terceiro balde Blank: rótulo ausente ou só com espaços
// é inclassificável, mas o volume ainda conta. O custo é fixado em zero
// porque a fonte não fornece a métrica.
type CategoryClassifier struct {
	matcher *Matcher
	result  *domain.ChannelResult
}

func NewCategoryClassifier(matcher *Matcher) *CategoryClassifier {
	return &CategoryClassifier{
		matcher: matcher,
		result:  domain.NewChannelResult(domain.ChannelPerformanceMax),
	}
}

// Ingest acumula a linha no período da janela da consulta que a produziu.
func (c *CategoryClassifier) Ingest(periodKey string, row domain.CategoryRow) bool {
	if periodKey == "" {
		return false
	}

	label := strings.TrimSpace(row.Label)

	classification := domain.ClassificationBlank
	if label != "" {
		classification = domain.ClassificationNonBranded
		if c.matcher.Matches(label) {
			classification = domain.ClassificationBranded
		}
	}

	metrics := row.Metrics
	metrics.Cost = 0

	c.result.AddRow(periodKey, classification, metrics)

	return true
}

func (c *CategoryClassifier) Result() *domain.ChannelResult {
	return c.result
}
