package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-brand-reporter/infrastructure/repository"
	"github.com/vfg2006/search-brand-reporter/internal/scheduler"
	"github.com/vfg2006/search-brand-reporter/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultRunListLimit = 20

// RunReport dispara manualmente uma execução do relatório. A execução roda
// em segundo plano; disparo com execução em andamento é ignorado pelo
// serviço de sincronização.
func RunReport(syncService *scheduler.ReportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReport")

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de execução do relatório não disponível", nil)
			return
		}

		syncService.TriggerManualSync()

		response := map[string]any{
			"message": "Execução do relatório iniciada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetReportStatus retorna o status da execução agendada do relatório
func GetReportStatus(syncService *scheduler.ReportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetReportStatus")

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de execução do relatório não disponível", nil)
			return
		}

		json.NewEncoder(w).Encode(syncService.GetStatus())
	}
}

// ListReportRuns lista as execuções recentes registradas no diário
func ListReportRuns(runRepo repository.ReportRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListReportRuns")

		if runRepo == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Diário de execuções não configurado", nil)
			return
		}

		limit := defaultRunListLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := runRepo.ListRecent(limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar execuções do relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções do relatório", nil)
			return
		}

		json.NewEncoder(w).Encode(runs)
	}
}

// GetReportRun retorna uma execução do diário pelo identificador
func GetReportRun(runRepo repository.ReportRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetReportRun")

		if runRepo == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Diário de execuções não configurado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da execução é obrigatório", nil)
			return
		}

		run, err := runRepo.GetByID(id)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar execução do relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar execução do relatório", nil)
			return
		}

		if run == nil {
			apiErrors.WriteError(w, apiErrors.ErrRunNotFound, "Execução não encontrada", nil)
			return
		}

		json.NewEncoder(w).Encode(run)
	}
}
