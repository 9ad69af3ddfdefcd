package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-brand-reporter/infrastructure/database/postgres"
	"github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads"
	"github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleauth"
	"github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets"
	"github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/search-brand-reporter/infrastructure/repository"
	"github.com/vfg2006/search-brand-reporter/internal/api"
	"github.com/vfg2006/search-brand-reporter/internal/config"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
	"github.com/vfg2006/search-brand-reporter/internal/scheduler"
	"github.com/vfg2006/search-brand-reporter/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Erros de configuração derrubam o processo antes de qualquer consulta
	if _, err := domain.ParseGranularity(cfg.Report.Granularity); err != nil {
		logrus.Fatal(err)
	}

	if _, err := sheets.ParseSpreadsheetID(cfg.Sheets.SpreadsheetID); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O diário de execuções é opcional: sem banco configurado o relatório
	// roda normalmente, só não persiste desfechos
	var runRepo repository.ReportRunRepository
	if cfg.Database.URL != "" {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		runRepo = repository.NewReportRunRepository(pgConn)
	} else {
		logrus.Info("Banco de dados não configurado; diário de execuções desabilitado")
	}

	tokenManager := googleauth.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	adsClient := adsclient.NewClient(cfg, tokenManager)
	adsIntegrator := googleads.New(cfg, adsClient)

	sheetsClient := sheetsclient.NewClient(cfg, tokenManager)
	publisher, err := sheets.NewPublisher(cfg, sheetsClient)
	if err != nil {
		logrus.Fatal(err)
	}

	reportService := reporting.NewService(cfg, adsIntegrator, publisher)
	if runRepo != nil {
		reportService = reportService.WithRunJournal(runRepo)
	}

	if cfg.App.RunMode == config.RunModeOnce {
		runOnce(ctx, reportService)
		return
	}

	// Modo serve: agendador recorrente mais a API operacional
	syncService := scheduler.NewReportSyncService(reportService, runRepo, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório")
	} else {
		logrus.Info("Agendador do relatório iniciado com sucesso")
	}

	server, err := api.New(cfg, syncService, runRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// runOnce executa o relatório uma única vez e encerra o processo com código
// de saída refletindo o desfecho.
func runOnce(ctx context.Context, reportService *reporting.Service) {
	run, err := reportService.Run(ctx, domain.RunTriggerOnce)
	if err != nil {
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     run.ID,
		"row_counts": run.RowCounts,
	}).Info("Execução única concluída")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
