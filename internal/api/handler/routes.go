package handler

import (
	"net/http"

	"github.com/vfg2006/search-brand-reporter/infrastructure/repository"
	"github.com/vfg2006/search-brand-reporter/internal/api/handler/router"
	"github.com/vfg2006/search-brand-reporter/internal/scheduler"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Report(syncService *scheduler.ReportSyncService, runRepo repository.ReportRunRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report/run",
			Method:  http.MethodPost,
			Handler: RunReport(syncService),
		},
		{
			Path:    "/v1/report/status",
			Method:  http.MethodGet,
			Handler: GetReportStatus(syncService),
		},
		{
			Path:    "/v1/report/runs",
			Method:  http.MethodGet,
			Handler: ListReportRuns(runRepo),
		},
		{
			Path:    "/v1/report/runs/:id",
			Method:  http.MethodGet,
			Handler: GetReportRun(runRepo),
		},
	}
}
