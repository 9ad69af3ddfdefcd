package googleads

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/search-brand-reporter/internal/config"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
	"github.com/vfg2006/search-brand-reporter/pkg/utils"
)

// GoogleAdsIntegrator adapta as linhas cruas do fio para o domínio do
// relatório. A conversão de custo de micros para unidades de moeda acontece
// aqui, na borda de ingestão; valores malformados valem zero e linhas sem o
// recurso esperado são registradas e puladas, nunca abortam o stream.
type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleAdsIntegrator) GetAccountInfo() (*domain.AccountInfo, error) {
	customer, err := s.Client.GetAccountInfo()
	if err != nil {
		logrus.WithError(err).Error("ads: falha ao obter dados da conta")
		return nil, errors.Wrap(err, "erro ao consultar dados da conta")
	}

	return &domain.AccountInfo{
		CustomerID:      customer.ID,
		DescriptiveName: customer.DescriptiveName,
		CurrencyCode:    customer.CurrencyCode,
		TimeZone:        customer.TimeZone,
	}, nil
}

func (s *GoogleAdsIntegrator) GetSearchTermRows(channel domain.Channel, granularity domain.Granularity, startDate, endDate time.Time) ([]domain.SearchTermRow, error) {
	results, err := s.Client.GetSearchTermRows(
		string(channel),
		segmentColumn(granularity),
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)
	if err != nil {
		logrus.WithError(err).WithField("channel", channel).Error("ads: falha ao buscar termos de pesquisa")
		return nil, errors.Wrapf(err, "erro ao consultar termos do canal %s", channel)
	}

	rows := make([]domain.SearchTermRow, 0, len(results))
	for _, result := range results {
		row, ok := decodeSearchTermRow(result)
		if !ok {
			continue
		}

		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"channel": channel,
		"rows":    len(rows),
	}).Debug("ads: termos de pesquisa decodificados")

	return rows, nil
}

func (s *GoogleAdsIntegrator) GetPMaxSearchTermRows(granularity domain.Granularity, startDate, endDate time.Time) ([]domain.PMaxSearchTermRow, error) {
	results, err := s.Client.GetPMaxSearchTermRows(
		segmentColumn(granularity),
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)
	if err != nil {
		logrus.WithError(err).Error("ads: falha ao buscar termos de Performance Max")
		return nil, errors.Wrap(err, "erro ao consultar termos de Performance Max")
	}

	rows := make([]domain.PMaxSearchTermRow, 0, len(results))
	for _, result := range results {
		row, ok := decodeSearchTermRow(result)
		if !ok {
			continue
		}

		rows = append(rows, domain.PMaxSearchTermRow{
			SearchTermRow:   row,
			TargetingStatus: result.SearchTermView.Status,
		})
	}

	return rows, nil
}

func (s *GoogleAdsIntegrator) GetPMaxCampaigns() ([]domain.Campaign, error) {
	wireCampaigns, err := s.Client.GetPMaxCampaigns()
	if err != nil {
		logrus.WithError(err).Error("ads: falha ao listar campanhas Performance Max")
		return nil, errors.Wrap(err, "erro ao listar campanhas Performance Max")
	}

	campaigns := make([]domain.Campaign, 0, len(wireCampaigns))
	for _, campaign := range wireCampaigns {
		campaigns = append(campaigns, domain.Campaign{
			ID:     campaign.ID,
			Name:   campaign.Name,
			Status: campaign.Status,
		})
	}

	return campaigns, nil
}

func (s *GoogleAdsIntegrator) GetCategoryRows(campaignID string, window domain.PeriodWindow) ([]domain.CategoryRow, error) {
	results, err := s.Client.GetCategoryInsights(
		campaignID,
		window.Start.Format(time.DateOnly),
		window.End.Format(time.DateOnly),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar categorias da campanha %s", campaignID)
	}

	rows := make([]domain.CategoryRow, 0, len(results))
	for _, result := range results {
		if result.CampaignSearchTermInsight == nil {
			logrus.WithField("campaign_id", campaignID).Warn("ads: linha de categoria sem recurso esperado; pulando")
			continue
		}

		// A fonte não fornece custo; CostMicros fica vazio e vale zero
		rows = append(rows, domain.CategoryRow{
			Label:   result.CampaignSearchTermInsight.CategoryLabel,
			Metrics: decodeMetrics(result.Metrics),
		})
	}

	return rows, nil
}

// decodeSearchTermRow extrai a linha de domínio de um resultado do fio.
// Retorna ok=false para linhas sem o recurso de termo de pesquisa.
func decodeSearchTermRow(result adsdomain.Result) (domain.SearchTermRow, bool) {
	if result.SearchTermView == nil {
		logrus.Warn("ads: linha sem search_term_view; pulando")
		return domain.SearchTermRow{}, false
	}

	return domain.SearchTermRow{
		SearchTerm: result.SearchTermView.SearchTerm,
		PeriodRaw:  result.Segments.PeriodValue(),
		Metrics:    decodeMetrics(result.Metrics),
	}, true
}

// decodeMetrics coage as métricas do fio com substituição silenciosa por
// zero, inclusive para valores negativos, e converte o custo de micros
// para unidades.
func decodeMetrics(metrics *adsdomain.Metrics) domain.Metrics {
	if metrics == nil {
		return domain.Metrics{}
	}

	return domain.Metrics{
		Impressions:      utils.ParseInt64OrZero(metrics.Impressions),
		Clicks:           utils.ParseInt64OrZero(metrics.Clicks),
		Cost:             utils.MicrosToUnits(utils.ParseInt64OrZero(metrics.CostMicros)),
		Conversions:      utils.ZeroIfNegative(metrics.Conversions),
		ConversionsValue: utils.ZeroIfNegative(metrics.ConversionsValue),
	}
}

func segmentColumn(granularity domain.Granularity) string {
	if granularity == domain.GranularityWeek {
		return "week"
	}

	return "month"
}
