package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-brand-reporter/infrastructure/repository"
	"github.com/vfg2006/search-brand-reporter/internal/config"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
	"github.com/vfg2006/search-brand-reporter/internal/usecases/reporting"
)

// ReportSyncConfig representa a configuração do agendador do relatório
type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	PruneDays    int
}

// ReportSyncService gerencia o agendamento e a execução recorrente do
// relatório. Execuções nunca se sobrepõem: um disparo com sincronização em
// andamento é ignorado.
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	reportService       reporting.Runner
	runRepo             repository.ReportRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRun             *domain.ReportRun
}

// NewReportSyncService cria uma nova instância do serviço de sincronização do relatório
func NewReportSyncService(
	reportService reporting.Runner,
	runRepo repository.ReportRunRepository,
	appConfig *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
		PruneDays:    appConfig.ReportSync.PruneDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"prune_days":    syncConfig.PruneDays,
	}).Info("Configuração do agendador do relatório carregada")

	return &ReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		reportService: reportService,
		runRepo:       runRepo,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada do relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runReport(ctx, domain.RunTriggerScheduled)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução do relatório: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// runReport executa o relatório completo, do fetch à publicação
func (s *ReportSyncService) runReport(ctx context.Context, trigger domain.RunTrigger) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do relatório já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("trigger", trigger).Info("Iniciando execução do relatório")

	run, err := s.reportService.Run(ctx, trigger)

	s.syncMutex.Lock()
	s.lastRun = run
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Execução do relatório terminou com erro")
		return
	}

	s.pruneOldRuns()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"run_id":   run.ID,
	}).Info("Execução do relatório concluída")

	s.lastSyncCompletedAt = time.Now()
}

// pruneOldRuns remove do diário execuções mais antigas que a retenção
// configurada. Sem diário configurado não há o que podar.
func (s *ReportSyncService) pruneOldRuns() {
	if s.runRepo == nil || s.config.PruneDays <= 0 {
		return
	}

	deleted, err := s.runRepo.DeleteOlderThan(s.config.PruneDays)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao podar execuções antigas do diário")
		return
	}

	if deleted > 0 {
		logrus.WithField("deleted", deleted).Info("Execuções antigas removidas do diário")
	}
}

// TriggerManualSync inicia manualmente uma execução do relatório
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do relatório já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do relatório")
	go s.runReport(context.Background(), domain.RunTriggerManual)
}

// GetStatus retorna o status atual da sincronização
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastRun != nil {
		status["last_run"] = s.lastRun
	}

	return status
}
