package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/search-brand-reporter/infrastructure/repository/mocks"
	"github.com/vfg2006/search-brand-reporter/internal/config"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
	reportingmocks "github.com/vfg2006/search-brand-reporter/internal/usecases/reporting/mocks"
	gomock "go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		ReportSync: config.ReportSync{
			CronSchedule: "0 6 * * 1",
			Enabled:      true,
			PruneDays:    90,
		},
	}
}

func TestRunReport(t *testing.T) {
	ctrl := gomock.NewController(t)

	runner := reportingmocks.NewMockRunner(ctrl)
	runRepo := repomocks.NewMockReportRunRepository(ctrl)

	run := &domain.ReportRun{
		ID:      "run-1",
		Trigger: domain.RunTriggerScheduled,
		Status:  domain.RunStatusSucceeded,
	}

	runner.EXPECT().
		Run(gomock.Any(), domain.RunTriggerScheduled).
		Return(run, nil)
	runRepo.EXPECT().DeleteOlderThan(90).Return(int64(3), nil)

	service := NewReportSyncService(runner, runRepo, newTestConfig())
	service.runReport(context.Background(), domain.RunTriggerScheduled)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, run, status["last_run"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestRunReportComErroNaoAtualizaConclusao(t *testing.T) {
	ctrl := gomock.NewController(t)

	runner := reportingmocks.NewMockRunner(ctrl)

	failed := &domain.ReportRun{
		ID:     "run-2",
		Status: domain.RunStatusFailed,
	}

	runner.EXPECT().
		Run(gomock.Any(), domain.RunTriggerManual).
		Return(failed, assert.AnError)

	// sem diário configurado; a poda é pulada
	service := NewReportSyncService(runner, nil, newTestConfig())
	service.runReport(context.Background(), domain.RunTriggerManual)

	status := service.GetStatus()
	assert.Equal(t, failed, status["last_run"])
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestRunReportIgnoraDisparoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)

	runner := reportingmocks.NewMockRunner(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	runner.EXPECT().
		Run(gomock.Any(), domain.RunTriggerScheduled).
		DoAndReturn(func(context.Context, domain.RunTrigger) (*domain.ReportRun, error) {
			close(started)
			<-release
			return &domain.ReportRun{ID: "run-3"}, nil
		})

	service := NewReportSyncService(runner, nil, newTestConfig())

	done := make(chan struct{})
	go func() {
		service.runReport(context.Background(), domain.RunTriggerScheduled)
		close(done)
	}()

	<-started

	// segundo disparo com execução em andamento não chama o runner de novo
	service.runReport(context.Background(), domain.RunTriggerScheduled)

	close(release)
	<-done
}

func TestStartDesabilitadoNaoAgenda(t *testing.T) {
	ctrl := gomock.NewController(t)

	runner := reportingmocks.NewMockRunner(ctrl)

	cfg := newTestConfig()
	cfg.ReportSync.Enabled = false

	service := NewReportSyncService(runner, nil, cfg)

	err := service.Start(context.Background())
	require.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
}

func TestPruneOldRunsToleraErro(t *testing.T) {
	ctrl := gomock.NewController(t)

	runRepo := repomocks.NewMockReportRunRepository(ctrl)
	runRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), assert.AnError)

	service := NewReportSyncService(nil, runRepo, newTestConfig())

	// erro na poda só gera log, nunca derruba a execução
	service.pruneOldRuns()
}
