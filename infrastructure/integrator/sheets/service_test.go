package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets/domain"
	mock_sheetsclient "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/vfg2006/search-brand-reporter/internal/config"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

func TestParseSpreadsheetID(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expectedID  string
		expectedErr bool
	}{
		{
			name:       "Aceita o ID cru do documento",
			raw:        "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
			expectedID: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		},
		{
			name:       "Extrai o ID de uma URL completa do Google Docs",
			raw:        "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0",
			expectedID: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		},
		{
			name:       "Tolera espaços em volta do identificador",
			raw:        "  1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms  ",
			expectedID: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		},
		{
			name:        "Rejeita identificador vazio",
			raw:         "",
			expectedErr: true,
		},
		{
			name:        "Rejeita URL sem o segmento do documento",
			raw:         "https://docs.google.com/spreadsheets/u/0/",
			expectedErr: true,
		},
		{
			name:        "Rejeita identificador com caracteres inválidos",
			raw:         "abc def!",
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ParseSpreadsheetID(tc.raw)

			if tc.expectedErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

func TestChartTabValues(t *testing.T) {
	view := &domain.ChannelReport{
		Name: "Search",
		Charts: []domain.MetricSeries{
			{
				Metric: domain.MetricClicks,
				Series: []domain.ChartSeries{
					{
						Name: "Branded",
						Points: []domain.SeriesPoint{
							{PeriodKey: "2025-01", Label: "January 2025", Value: 10},
							{PeriodKey: "2025-02", Label: "February 2025", Value: 20},
						},
					},
					{
						Name: "Non-branded",
						Points: []domain.SeriesPoint{
							{PeriodKey: "2025-01", Label: "January 2025", Value: 30},
							{PeriodKey: "2025-02", Label: "February 2025", Value: 40},
						},
					},
				},
			},
			{
				Metric: domain.MetricCost,
				Series: []domain.ChartSeries{
					{
						Name: "Branded",
						Points: []domain.SeriesPoint{
							{PeriodKey: "2025-01", Label: "January 2025", Value: 1.234},
						},
					},
				},
			},
		},
	}

	values, blocks := chartTabValues(view)

	require.Len(t, blocks, 2)

	// primeiro bloco: título na linha 0, cabeçalho na linha 1, dados em 2-3
	assert.Equal(t, int64(1), blocks[0].headerRow)
	assert.Equal(t, int64(2), blocks[0].rowCount)
	assert.Equal(t, int64(3), blocks[0].columnCount)
	assert.Equal(t, []any{"Period", "Branded", "Non-branded"}, values[1])
	assert.Equal(t, []any{"January 2025", 10.0, 30.0}, values[2])

	// segundo bloco começa depois da linha em branco do primeiro
	assert.Equal(t, int64(6), blocks[1].headerRow)
	assert.Equal(t, int64(1), blocks[1].rowCount)
	assert.Equal(t, []any{"Cost"}, values[5])
	assert.Equal(t, []any{"January 2025", 1.23}, values[7])
}

func TestPublish(t *testing.T) {
	ctrl := gomock.NewController(t)

	report := &domain.BrandReport{
		Account: &domain.AccountInfo{
			CustomerID:      "1234567890",
			DescriptiveName: "Loja Exemplo",
			CurrencyCode:    "BRL",
			TimeZone:        "America/Sao_Paulo",
		},
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Granularity: domain.GranularityMonth,
		BrandTerms:  []string{"exemplo"},
		GeneratedAt: time.Date(2025, 2, 1, 6, 0, 0, 0, time.UTC),
		Combined: &domain.ChannelReport{
			Name: "Combined",
			Table: domain.ReportTable{Rows: []domain.ReportRow{{
				PeriodKey:      "2025-01",
				PeriodLabel:    "January 2025",
				Classification: domain.ClassificationBranded,
				Metrics:        domain.Metrics{Impressions: 100, Clicks: 10, Cost: 5, Conversions: 2, ConversionsValue: 50},
				CPA:            2.5,
				ROAS:           10,
			}}},
			Charts: []domain.MetricSeries{{
				Metric: domain.MetricClicks,
				Series: []domain.ChartSeries{{
					Name:   "Branded",
					Points: []domain.SeriesPoint{{PeriodKey: "2025-01", Label: "January 2025", Value: 10}},
				}},
			}},
		},
	}

	cfg := &config.Config{
		Sheets: config.Sheets{SpreadsheetID: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
	}

	client := mock_sheetsclient.NewMockClient(ctrl)

	// só a aba Info já existe; Combined e Combined Charts são criadas
	client.EXPECT().
		GetSpreadsheet("1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms").
		Return(&sheetsdomain.Spreadsheet{
			Sheets: []sheetsdomain.Sheet{
				{Properties: sheetsdomain.SheetProperties{SheetID: 0, Title: "Info"}},
			},
		}, nil)

	client.EXPECT().
		BatchUpdate(gomock.Any(), gomock.Len(2)).
		Return(&sheetsdomain.BatchUpdateResponse{
			Replies: []sheetsdomain.Reply{
				{AddSheet: &sheetsdomain.AddSheetReply{Properties: sheetsdomain.SheetProperties{SheetID: 11, Title: "Combined"}}},
				{AddSheet: &sheetsdomain.AddSheetReply{Properties: sheetsdomain.SheetProperties{SheetID: 12, Title: "Combined Charts"}}},
			},
		}, nil)

	client.EXPECT().ClearValues(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	var rawValues [][]any
	client.EXPECT().
		UpdateValues(gomock.Any(), "'Combined'!A1", gomock.Any()).
		DoAndReturn(func(_, _ string, values [][]any) error {
			rawValues = values
			return nil
		})
	client.EXPECT().UpdateValues(gomock.Any(), "'Info'!A1", gomock.Any()).Return(nil)
	client.EXPECT().UpdateValues(gomock.Any(), "'Combined Charts'!A1", gomock.Any()).Return(nil)

	var chartRequests []sheetsdomain.Request
	client.EXPECT().
		BatchUpdate(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ string, requests []sheetsdomain.Request) (*sheetsdomain.BatchUpdateResponse, error) {
			chartRequests = requests
			return &sheetsdomain.BatchUpdateResponse{}, nil
		})

	// reordenação final das três abas
	client.EXPECT().
		BatchUpdate(gomock.Any(), gomock.Len(3)).
		Return(&sheetsdomain.BatchUpdateResponse{}, nil)

	publisher, err := NewPublisher(cfg, client)
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), report)
	require.NoError(t, err)

	require.NotEmpty(t, rawValues)
	assert.Equal(t, []any{
		"Period", "Classification", "Impressions", "Clicks", "Cost",
		"Conversions", "Conv. value", "CPA", "ROAS",
	}, rawValues[0])
	assert.Equal(t, "January 2025", rawValues[1][0])
	assert.Equal(t, "Branded", rawValues[1][1])

	require.Len(t, chartRequests, 1)
	require.NotNil(t, chartRequests[0].AddChart)
	chart := chartRequests[0].AddChart.Chart
	assert.Equal(t, "Combined - Clicks", chart.Spec.Title)
	require.NotNil(t, chart.Spec.BasicChart)
	assert.Equal(t, "LINE", chart.Spec.BasicChart.ChartType)
	assert.Equal(t, int64(12), chart.Position.OverlayPosition.AnchorCell.SheetID)
}

func TestEnsureTabsRecriaAbaDeGraficosExistente(t *testing.T) {
	ctrl := gomock.NewController(t)

	client := mock_sheetsclient.NewMockClient(ctrl)
	publisher := &SheetsPublisher{
		cfg:           &config.Config{},
		Client:        client,
		spreadsheetID: "planilha",
	}

	spreadsheet := &sheetsdomain.Spreadsheet{
		Sheets: []sheetsdomain.Sheet{
			{Properties: sheetsdomain.SheetProperties{SheetID: 0, Title: "Info"}},
			{Properties: sheetsdomain.SheetProperties{SheetID: 11, Title: "Combined"}},
			{Properties: sheetsdomain.SheetProperties{SheetID: 12, Title: "Combined Charts"}},
		},
	}

	tabs := []tabPlan{
		{title: "Info"},
		{title: "Combined"},
		{title: "Combined Charts", charts: []chartBlock{{title: "Combined - Clicks"}}},
	}

	var captured []sheetsdomain.Request
	client.EXPECT().
		BatchUpdate("planilha", gomock.Len(2)).
		DoAndReturn(func(_ string, requests []sheetsdomain.Request) (*sheetsdomain.BatchUpdateResponse, error) {
			captured = requests
			return &sheetsdomain.BatchUpdateResponse{
				Replies: []sheetsdomain.Reply{
					{},
					{AddSheet: &sheetsdomain.AddSheetReply{Properties: sheetsdomain.SheetProperties{SheetID: 20, Title: "Combined Charts"}}},
				},
			}, nil
		})

	sheetIDs, err := publisher.ensureTabs(spreadsheet, tabs)
	require.NoError(t, err)

	// a aba de gráficos existente foi removida e recriada; as demais
	// permanecem e nenhum gráfico antigo sobrevive na recriação
	require.NotNil(t, captured[0].DeleteSheet)
	assert.Equal(t, int64(12), captured[0].DeleteSheet.SheetID)
	require.NotNil(t, captured[1].AddSheet)
	assert.Equal(t, "Combined Charts", captured[1].AddSheet.Properties.Title)

	assert.Equal(t, int64(0), sheetIDs["Info"])
	assert.Equal(t, int64(11), sheetIDs["Combined"])
	assert.Equal(t, int64(20), sheetIDs["Combined Charts"])
}

func TestPublishComMetadadosDaConta(t *testing.T) {
	values := infoValues(&domain.BrandReport{
		Account: &domain.AccountInfo{
			CustomerID:      "1234567890",
			DescriptiveName: "Loja Exemplo",
			CurrencyCode:    "BRL",
			TimeZone:        "America/Sao_Paulo",
		},
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Granularity: domain.GranularityMonth,
		BrandTerms:  []string{"exemplo", "loja exemplo"},
	})

	assert.Equal(t, []any{"Account", "Loja Exemplo"}, values[0])
	assert.Equal(t, []any{"Customer ID", "1234567890"}, values[1])
	assert.Equal(t, []any{"Date range", "2025-01-01 - 2025-01-31"}, values[4])
	assert.Equal(t, []any{"Brand terms", "exemplo, loja exemplo"}, values[6])
}
