package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-brand-reporter/infrastructure/repository"
	"github.com/vfg2006/search-brand-reporter/internal/config"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
	"github.com/vfg2006/search-brand-reporter/internal/usecases/classifying"
	"github.com/vfg2006/search-brand-reporter/pkg/utils"
)

// Nomes das visões do relatório, também usados como títulos de abas.
const (
	ViewCombined = "Combined"
	ViewCategory = "Categories"
)

var standardClassifications = []domain.Classification{
	domain.ClassificationBranded,
	domain.ClassificationNonBranded,
}

// Service orquestra uma execução completa: busca linhas da fonte, classifica
// por canal, mescla nas visões combinada e por canal, monta o relatório e
// publica no destino. Tudo é recomputado a cada execução.
type Service struct {
	cfg       *config.Config
	source    AdsSource
	publisher Publisher
	runRepo   repository.ReportRunRepository
	now       func() time.Time
}

func NewService(cfg *config.Config, source AdsSource, publisher Publisher) *Service {
	return &Service{
		cfg:       cfg,
		source:    source,
		publisher: publisher,
		now:       time.Now,
	}
}

// WithRunJournal habilita o registro opcional de desfechos de execução.
// Sem repositório configurado o relatório funciona normalmente.
func (s *Service) WithRunJournal(runRepo repository.ReportRunRepository) *Service {
	s.runRepo = runRepo
	return s
}

// Run executa o pipeline inteiro. Erros de configuração falham antes de
// qualquer busca; falhas de canal ou de publicação encerram a execução e
// são devolvidas ao chamador depois de registradas.
func (s *Service) Run(ctx context.Context, trigger domain.RunTrigger) (*domain.ReportRun, error) {
	granularity, err := domain.ParseGranularity(s.cfg.Report.Granularity)
	if err != nil {
		return nil, err
	}

	startDate, endDate, err := s.cfg.Report.ResolveDateRange(s.now())
	if err != nil {
		return nil, err
	}

	matcher, err := classifying.NewMatcher(s.cfg.Report.BrandTermList())
	if err != nil {
		return nil, fmt.Errorf("erro ao compilar termos de marca: %w", err)
	}

	run := s.startRun(trigger, granularity, startDate, endDate)

	logrus.WithFields(logrus.Fields{
		"run_id":      run.ID,
		"trigger":     trigger,
		"start_date":  startDate.Format(time.DateOnly),
		"end_date":    endDate.Format(time.DateOnly),
		"granularity": granularity,
	}).Info("Iniciando execução do relatório de marca")

	report, err := s.buildReport(matcher, granularity, startDate, endDate, run)
	if err == nil {
		err = s.publisher.Publish(ctx, report)
		if err != nil {
			err = fmt.Errorf("erro ao publicar o relatório: %w", err)
		}
	}

	s.finishRun(run, err)

	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"run_id":  run.ID,
			"trigger": trigger,
		}).Error("Execução do relatório de marca falhou")

		return run, err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     run.ID,
		"row_counts": run.RowCounts,
	}).Info("Execução do relatório de marca concluída")

	return run, nil
}

// buildReport busca e classifica as linhas de todos os canais habilitados e
// monta o relatório final.
func (s *Service) buildReport(matcher *classifying.Matcher, granularity domain.Granularity, startDate, endDate time.Time, run *domain.ReportRun) (*domain.BrandReport, error) {
	account, err := s.source.GetAccountInfo()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter dados da conta: %w", err)
	}

	combined := domain.NewChannelResult("")
	channelReports := make([]*domain.ChannelReport, 0, len(domain.ChannelOrder))

	for _, channel := range domain.ChannelOrder {
		if !s.channelEnabled(channel) {
			continue
		}

		result, rowCount, err := s.collectChannel(matcher, channel, granularity, startDate, endDate)
		if err != nil {
			return nil, err
		}

		run.RowCounts[string(channel)] = rowCount
		MergeChannelResults(combined, result)

		logrus.WithFields(logrus.Fields{
			"channel": channel,
			"rows":    rowCount,
			"periods": result.PeriodCount(),
		}).Info("Canal classificado")

		if s.cfg.Report.ChannelTabsEnabled {
			channelReports = append(channelReports, AssembleChannelReport(channel.Label(), granularity, result, standardClassifications))
		}
	}

	report := &domain.BrandReport{
		Account:     account,
		StartDate:   startDate,
		EndDate:     endDate,
		Granularity: granularity,
		BrandTerms:  s.cfg.Report.BrandTermList(),
		GeneratedAt: s.now(),
		Combined:    AssembleChannelReport(ViewCombined, granularity, combined, standardClassifications),
		Channels:    channelReports,
	}

	if s.cfg.Report.CategoryTabEnabled && s.cfg.Report.PMaxEnabled {
		categoryResult, rowCount := s.collectCategories(matcher, granularity, startDate, endDate)
		run.RowCounts["CATEGORY"] = rowCount
		report.Category = AssembleChannelReport(ViewCategory, granularity, categoryResult, domain.ClassificationOrder)
	}

	return report, nil
}

// collectChannel busca e classifica os termos de pesquisa de um canal.
func (s *Service) collectChannel(matcher *classifying.Matcher, channel domain.Channel, granularity domain.Granularity, startDate, endDate time.Time) (*domain.ChannelResult, int64, error) {
	var kept int64

	if channel == domain.ChannelPerformanceMax {
		rows, err := s.source.GetPMaxSearchTermRows(granularity, startDate, endDate)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao buscar termos de Performance Max: %w", err)
		}

		classifier := classifying.NewExclusionAwareClassifier(matcher, granularity, s.cfg.Report.PMaxAllNonBranded)
		for _, row := range rows {
			if classifier.Ingest(row) {
				kept++
			}
		}

		return classifier.Result(), kept, nil
	}

	rows, err := s.source.GetSearchTermRows(channel, granularity, startDate, endDate)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar termos do canal %s: %w", channel, err)
	}

	classifier := classifying.NewStandardClassifier(matcher, granularity, channel)
	for _, row := range rows {
		if classifier.Ingest(row) {
			kept++
		}
	}

	return classifier.Result(), kept, nil
}

// collectCategories consulta os insights de categoria, uma consulta por par
// (campanha, janela de período). Falha numa subconsulta é registrada e a
// contribuição daquele par é pulada; as demais continuam.
func (s *Service) collectCategories(matcher *classifying.Matcher, granularity domain.Granularity, startDate, endDate time.Time) (*domain.ChannelResult, int64) {
	classifier := classifying.NewCategoryClassifier(matcher)

	campaigns, err := s.source.GetPMaxCampaigns()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas Performance Max; aba de categorias ficará vazia")
		return classifier.Result(), 0
	}

	windows := domain.EnumeratePeriods(granularity, startDate, endDate)

	var kept int64
	for _, campaign := range campaigns {
		for _, window := range windows {
			rows, err := s.source.GetCategoryRows(campaign.ID, window)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"campaign_id": campaign.ID,
					"period_key":  window.Key,
				}).Warn("Erro em subconsulta de categorias; contribuição ignorada")
				continue
			}

			for _, row := range rows {
				if classifier.Ingest(window.Key, row) {
					kept++
				}
			}
		}
	}

	return classifier.Result(), kept
}

func (s *Service) channelEnabled(channel domain.Channel) bool {
	switch channel {
	case domain.ChannelSearch:
		return s.cfg.Report.SearchEnabled
	case domain.ChannelPerformanceMax:
		return s.cfg.Report.PMaxEnabled
	case domain.ChannelShopping:
		return s.cfg.Report.ShoppingEnabled
	}

	return false
}

// startRun cria o registro operacional da execução. Sem journal configurado
// o registro existe apenas em memória.
func (s *Service) startRun(trigger domain.RunTrigger, granularity domain.Granularity, startDate, endDate time.Time) *domain.ReportRun {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID da execução; usando timestamp")
		id = s.now().Format("20060102150405")
	}

	run := &domain.ReportRun{
		ID:          id,
		Trigger:     trigger,
		Status:      domain.RunStatusRunning,
		StartDate:   startDate,
		EndDate:     endDate,
		Granularity: granularity,
		RowCounts:   map[string]int64{},
		StartedAt:   s.now(),
	}

	if s.runRepo != nil {
		if err := s.runRepo.SaveOrUpdate(run); err != nil {
			logrus.WithError(err).Warn("Erro ao registrar início da execução no journal")
		}
	}

	return run
}

func (s *Service) finishRun(run *domain.ReportRun, runErr error) {
	finishedAt := s.now()
	run.FinishedAt = &finishedAt

	if runErr != nil {
		run.Status = domain.RunStatusFailed
		errorText := runErr.Error()
		run.ErrorText = &errorText
	} else {
		run.Status = domain.RunStatusSucceeded
	}

	if s.runRepo != nil {
		if err := s.runRepo.SaveOrUpdate(run); err != nil {
			logrus.WithError(err).Warn("Erro ao registrar desfecho da execução no journal")
		}
	}
}
