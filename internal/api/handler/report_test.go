package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mocks "github.com/vfg2006/search-brand-reporter/infrastructure/repository/mocks"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

func TestListReportRuns(t *testing.T) {
	ctrl := gomock.NewController(t)

	runRepo := mocks.NewMockReportRunRepository(ctrl)
	runRepo.EXPECT().ListRecent(20).Return([]*domain.ReportRun{
		{ID: "run-1", Status: domain.RunStatusSucceeded},
	}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/report/runs", nil)
	recorder := httptest.NewRecorder()

	ListReportRuns(runRepo).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var runs []*domain.ReportRun
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
}

func TestListReportRunsComLimiteInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)

	runRepo := mocks.NewMockReportRunRepository(ctrl)

	request := httptest.NewRequest(http.MethodGet, "/v1/report/runs?limit=zero", nil)
	recorder := httptest.NewRecorder()

	ListReportRuns(runRepo).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListReportRunsSemDiario(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/v1/report/runs", nil)
	recorder := httptest.NewRecorder()

	ListReportRuns(nil).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func runRequestWithID(id string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/v1/report/runs/"+id, nil)
	params := httprouter.Params{{Key: "id", Value: id}}

	return request.WithContext(context.WithValue(request.Context(), httprouter.ParamsKey, params))
}

func TestGetReportRun(t *testing.T) {
	ctrl := gomock.NewController(t)

	runRepo := mocks.NewMockReportRunRepository(ctrl)
	runRepo.EXPECT().GetByID("run-1").Return(&domain.ReportRun{
		ID:     "run-1",
		Status: domain.RunStatusSucceeded,
	}, nil)

	recorder := httptest.NewRecorder()

	GetReportRun(runRepo).ServeHTTP(recorder, runRequestWithID("run-1"))

	require.Equal(t, http.StatusOK, recorder.Code)

	var run domain.ReportRun
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &run))
	assert.Equal(t, "run-1", run.ID)
}

func TestGetReportRunNaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)

	runRepo := mocks.NewMockReportRunRepository(ctrl)
	runRepo.EXPECT().GetByID("run-x").Return(nil, nil)

	recorder := httptest.NewRecorder()

	GetReportRun(runRepo).ServeHTTP(recorder, runRequestWithID("run-x"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetReportRunComErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)

	runRepo := mocks.NewMockReportRunRepository(ctrl)
	runRepo.EXPECT().GetByID("run-1").Return(nil, assert.AnError)

	recorder := httptest.NewRecorder()

	GetReportRun(runRepo).ServeHTTP(recorder, runRequestWithID("run-1"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestRunReportSemServico(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/v1/report/run", nil)
	recorder := httptest.NewRecorder()

	RunReport(nil).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
