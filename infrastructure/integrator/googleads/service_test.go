package googleads

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mock_adsclient "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/adsclient/mocks"
	adsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/search-brand-reporter/internal/config"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

func TestDecodeMetrics(t *testing.T) {
	testCases := []struct {
		name     string
		metrics  *adsdomain.Metrics
		expected domain.Metrics
	}{
		{
			name: "Converte custo de micros para unidades de moeda",
			metrics: &adsdomain.Metrics{
				Impressions:      "1200",
				Clicks:           "34",
				CostMicros:       "1500000",
				Conversions:      2.5,
				ConversionsValue: 180.75,
			},
			expected: domain.Metrics{
				Impressions:      1200,
				Clicks:           34,
				Cost:             1.5,
				Conversions:      2.5,
				ConversionsValue: 180.75,
			},
		},
		{
			name: "Valores malformados valem zero sem abortar a linha",
			metrics: &adsdomain.Metrics{
				Impressions: "not-a-number",
				Clicks:      "",
				CostMicros:  "12.5",
			},
			expected: domain.Metrics{},
		},
		{
			name: "Valores negativos coagem para zero",
			metrics: &adsdomain.Metrics{
				Impressions:      "-7",
				Clicks:           "5",
				CostMicros:       "-1500000",
				Conversions:      -2.5,
				ConversionsValue: -10,
			},
			expected: domain.Metrics{Clicks: 5},
		},
		{
			name:     "Métricas ausentes valem o vetor zero",
			metrics:  nil,
			expected: domain.Metrics{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, decodeMetrics(tc.metrics))
		})
	}
}

func TestGetSearchTermRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_adsclient.NewMockClient(ctrl)
	integrator := New(&config.Config{}, client)

	startDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	client.EXPECT().
		GetSearchTermRows("SEARCH", "month", "2025-01-01", "2025-02-28").
		Return([]adsdomain.Result{
			{
				SearchTermView: &adsdomain.SearchTermView{SearchTerm: "tenis corrida"},
				Metrics:        &adsdomain.Metrics{Impressions: "10", Clicks: "2", CostMicros: "500000"},
				Segments:       &adsdomain.Segments{Month: "2025-01-01"},
			},
			{
				// linha sem o recurso esperado é registrada e pulada
				Metrics:  &adsdomain.Metrics{Impressions: "99"},
				Segments: &adsdomain.Segments{Month: "2025-01-01"},
			},
		}, nil)

	rows, err := integrator.GetSearchTermRows(domain.ChannelSearch, domain.GranularityMonth, startDate, endDate)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "tenis corrida", rows[0].SearchTerm)
	assert.Equal(t, "2025-01-01", rows[0].PeriodRaw)
	assert.Equal(t, 0.5, rows[0].Metrics.Cost)
}

func TestGetPMaxSearchTermRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_adsclient.NewMockClient(ctrl)
	integrator := New(&config.Config{}, client)

	startDate := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

	client.EXPECT().
		GetPMaxSearchTermRows("week", "2025-01-06", "2025-01-12").
		Return([]adsdomain.Result{
			{
				SearchTermView: &adsdomain.SearchTermView{SearchTerm: "sapato social", Status: "EXCLUDED"},
				Metrics:        &adsdomain.Metrics{Clicks: "3"},
				Segments:       &adsdomain.Segments{Week: "2025-01-06"},
			},
		}, nil)

	rows, err := integrator.GetPMaxSearchTermRows(domain.GranularityWeek, startDate, endDate)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EXCLUDED", rows[0].TargetingStatus)
	assert.Equal(t, int64(3), rows[0].Metrics.Clicks)
}

func TestGetCategoryRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_adsclient.NewMockClient(ctrl)
	integrator := New(&config.Config{}, client)

	window := domain.PeriodWindow{
		Key:   "2025-01",
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	client.EXPECT().
		GetCategoryInsights("123", "2025-01-01", "2025-01-31").
		Return([]adsdomain.Result{
			{
				CampaignSearchTermInsight: &adsdomain.CampaignSearchTermInsight{CategoryLabel: "running shoes"},
				Metrics:                   &adsdomain.Metrics{Impressions: "50", Conversions: 1},
			},
			{
				CampaignSearchTermInsight: &adsdomain.CampaignSearchTermInsight{},
				Metrics:                   &adsdomain.Metrics{Impressions: "7"},
			},
		}, nil)

	rows, err := integrator.GetCategoryRows("123", window)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "running shoes", rows[0].Label)
	assert.Equal(t, int64(50), rows[0].Metrics.Impressions)

	// rótulo vazio chega ao classificador, que o coloca no balde Blank
	assert.Equal(t, "", rows[1].Label)
}

func TestGetAccountInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_adsclient.NewMockClient(ctrl)
	integrator := New(&config.Config{}, client)

	client.EXPECT().GetAccountInfo().Return(nil, errors.New("no data found"))

	info, err := integrator.GetAccountInfo()

	assert.Error(t, err)
	assert.Nil(t, info)
}
