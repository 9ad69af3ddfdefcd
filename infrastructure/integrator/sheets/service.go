package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	sheetsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/search-brand-reporter/internal/config"
	"github.com/vfg2006/search-brand-reporter/internal/domain"
	"github.com/vfg2006/search-brand-reporter/pkg/utils"
)

const (
	infoTabTitle    = "Info"
	chartTabSuffix  = " Charts"
	chartWidthCells = 7
)

var (
	spreadsheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
	spreadsheetIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,}$`)
)

// ParseSpreadsheetID extrai o ID do documento de um ID cru ou da URL
// completa do Google Docs. Identificador inválido é erro de configuração e
// falha antes de qualquer busca de dados.
func ParseSpreadsheetID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("identificador de planilha não configurado")
	}

	if match := spreadsheetURLPattern.FindStringSubmatch(raw); match != nil {
		return match[1], nil
	}

	if spreadsheetIDPattern.MatchString(raw) {
		return raw, nil
	}

	return "", fmt.Errorf("identificador de planilha inválido: %q", raw)
}

// SheetsPublisher renderiza o relatório montado num documento do Google
// Sheets: aba de metadados, tabelas cruas e abas de gráficos, em ordem fixa.
// Nenhum valor acumulado é alterado aqui; só formatação.
type SheetsPublisher struct {
	cfg           *config.Config
	Client        sheetsclient.Client
	spreadsheetID string
}

func NewPublisher(cfg *config.Config, client sheetsclient.Client) (*SheetsPublisher, error) {
	spreadsheetID, err := ParseSpreadsheetID(cfg.Sheets.SpreadsheetID)
	if err != nil {
		return nil, err
	}

	return &SheetsPublisher{
		cfg:           cfg,
		Client:        client,
		spreadsheetID: spreadsheetID,
	}, nil
}

// tabPlan é uma aba a publicar: valores de células e, nas abas de gráfico,
// os blocos que ancoram os gráficos embutidos.
type tabPlan struct {
	title  string
	values [][]any
	charts []chartBlock
}

// chartBlock descreve um bloco de dados de gráfico dentro da aba: a linha
// do cabeçalho, quantas linhas de dados e quantas colunas (período + séries).
type chartBlock struct {
	title       string
	headerRow   int64
	rowCount    int64
	columnCount int64
}

func (p *SheetsPublisher) Publish(ctx context.Context, report *domain.BrandReport) error {
	tabs := p.planTabs(report)

	spreadsheet, err := p.Client.GetSpreadsheet(p.spreadsheetID)
	if err != nil {
		return fmt.Errorf("erro ao inspecionar a planilha: %w", err)
	}

	sheetIDs, err := p.ensureTabs(spreadsheet, tabs)
	if err != nil {
		return err
	}

	for _, tab := range tabs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := p.writeTab(tab, sheetIDs[tab.title]); err != nil {
			return fmt.Errorf("erro ao escrever a aba %q: %w", tab.title, err)
		}
	}

	if err := p.orderTabs(tabs, sheetIDs); err != nil {
		return fmt.Errorf("erro ao ordenar as abas: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": p.spreadsheetID,
		"tabs":           len(tabs),
	}).Info("Relatório publicado na planilha")

	return nil
}

// planTabs monta a sequência fixa de abas: Info, visão combinada, canais
// habilitados e categorias, cada visão com sua aba de gráficos. Visões
// ausentes são simplesmente puladas.
func (p *SheetsPublisher) planTabs(report *domain.BrandReport) []tabPlan {
	tabs := []tabPlan{{
		title:  infoTabTitle,
		values: infoValues(report),
	}}

	views := make([]*domain.ChannelReport, 0, 5)
	if report.Combined != nil {
		views = append(views, report.Combined)
	}
	views = append(views, report.Channels...)
	if report.Category != nil {
		views = append(views, report.Category)
	}

	for _, view := range views {
		tabs = append(tabs, tabPlan{
			title:  view.Name,
			values: tableValues(view.Table),
		})

		values, blocks := chartTabValues(view)
		tabs = append(tabs, tabPlan{
			title:  view.Name + chartTabSuffix,
			values: values,
			charts: blocks,
		})
	}

	return tabs
}

// ensureTabs cria as abas que ainda não existem e devolve o sheetId de
// cada título planejado. Abas de gráfico existentes são recriadas: limpar
// células não remove gráficos embutidos, e mantê-las acumularia gráficos
// duplicados a cada publicação.
func (p *SheetsPublisher) ensureTabs(spreadsheet *sheetsdomain.Spreadsheet, tabs []tabPlan) (map[string]int64, error) {
	sheetIDs := make(map[string]int64, len(tabs))
	for _, sheet := range spreadsheet.Sheets {
		sheetIDs[sheet.Properties.Title] = sheet.Properties.SheetID
	}

	requests := make([]sheetsdomain.Request, 0)
	missing := make([]string, 0)
	for _, tab := range tabs {
		if sheetID, ok := sheetIDs[tab.title]; ok {
			if len(tab.charts) == 0 {
				continue
			}

			delete(sheetIDs, tab.title)
			requests = append(requests, sheetsdomain.Request{
				DeleteSheet: &sheetsdomain.DeleteSheetRequest{SheetID: sheetID},
			})
		}

		missing = append(missing, tab.title)
		requests = append(requests, sheetsdomain.Request{
			AddSheet: &sheetsdomain.AddSheetRequest{
				Properties: sheetsdomain.SheetProperties{Title: tab.title},
			},
		})
	}

	if len(requests) == 0 {
		return sheetIDs, nil
	}

	response, err := p.Client.BatchUpdate(p.spreadsheetID, requests)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar abas: %w", err)
	}

	// As respostas seguem a ordem das requisições; só os addSheet carregam
	// o sheetId da aba criada.
	created := 0
	for _, reply := range response.Replies {
		if reply.AddSheet == nil || created >= len(missing) {
			continue
		}

		sheetIDs[missing[created]] = reply.AddSheet.Properties.SheetID
		created++
	}

	return sheetIDs, nil
}

func (p *SheetsPublisher) writeTab(tab tabPlan, sheetID int64) error {
	if err := p.Client.ClearValues(p.spreadsheetID, quoteTitle(tab.title)); err != nil {
		return err
	}

	if len(tab.values) > 0 {
		if err := p.Client.UpdateValues(p.spreadsheetID, quoteTitle(tab.title)+"!A1", tab.values); err != nil {
			return err
		}
	}

	if len(tab.charts) == 0 {
		return nil
	}

	requests := make([]sheetsdomain.Request, 0, len(tab.charts))
	for _, block := range tab.charts {
		requests = append(requests, chartRequest(sheetID, block))
	}

	if _, err := p.Client.BatchUpdate(p.spreadsheetID, requests); err != nil {
		return err
	}

	return nil
}

// orderTabs posiciona as abas publicadas na sequência planejada; abas
// alheias ao relatório ficam depois, na ordem em que já estavam.
func (p *SheetsPublisher) orderTabs(tabs []tabPlan, sheetIDs map[string]int64) error {
	requests := make([]sheetsdomain.Request, 0, len(tabs))
	for i, tab := range tabs {
		sheetID, ok := sheetIDs[tab.title]
		if !ok {
			continue
		}

		requests = append(requests, sheetsdomain.Request{
			UpdateSheetProperties: &sheetsdomain.UpdateSheetPropertiesRequest{
				Properties: sheetsdomain.SheetProperties{
					SheetID: sheetID,
					Index:   int64(i),
				},
				Fields: "index",
			},
		})
	}

	_, err := p.Client.BatchUpdate(p.spreadsheetID, requests)
	return err
}

func infoValues(report *domain.BrandReport) [][]any {
	account := report.Account
	if account == nil {
		account = &domain.AccountInfo{}
	}

	return [][]any{
		{"Account", account.DescriptiveName},
		{"Customer ID", account.CustomerID},
		{"Currency", account.CurrencyCode},
		{"Time zone", account.TimeZone},
		{"Date range", fmt.Sprintf("%s - %s", report.StartDate.Format(time.DateOnly), report.EndDate.Format(time.DateOnly))},
		{"Granularity", string(report.Granularity)},
		{"Brand terms", strings.Join(report.BrandTerms, ", ")},
		{"Generated at", report.GeneratedAt.Format(time.RFC3339)},
	}
}

func tableValues(table domain.ReportTable) [][]any {
	values := make([][]any, 0, len(table.Rows)+1)
	values = append(values, []any{
		"Period", "Classification", "Impressions", "Clicks", "Cost",
		"Conversions", "Conv. value", "CPA", "ROAS",
	})

	for _, row := range table.Rows {
		values = append(values, []any{
			row.PeriodLabel,
			row.Classification.Label(),
			row.Metrics.Impressions,
			row.Metrics.Clicks,
			utils.RoundWithTwoDecimalPlace(row.Metrics.Cost),
			utils.RoundWithTwoDecimalPlace(row.Metrics.Conversions),
			utils.RoundWithTwoDecimalPlace(row.Metrics.ConversionsValue),
			utils.RoundWithTwoDecimalPlace(row.CPA),
			utils.RoundWithTwoDecimalPlace(row.ROAS),
		})
	}

	return values
}

// chartTabValues empilha um bloco de dados por métrica: título, cabeçalho
// (período + uma coluna por série) e uma linha por período, com uma linha
// em branco entre blocos.
func chartTabValues(view *domain.ChannelReport) ([][]any, []chartBlock) {
	values := make([][]any, 0)
	blocks := make([]chartBlock, 0, len(view.Charts))

	for _, chart := range view.Charts {
		values = append(values, []any{chart.Metric.Label()})
		headerRow := int64(len(values))

		header := []any{"Period"}
		for _, series := range chart.Series {
			header = append(header, series.Name)
		}
		values = append(values, header)

		var rowCount int64
		if len(chart.Series) > 0 {
			periods := chart.Series[0].Points
			rowCount = int64(len(periods))

			for i, point := range periods {
				row := []any{point.Label}
				for _, series := range chart.Series {
					row = append(row, utils.RoundWithTwoDecimalPlace(series.Points[i].Value))
				}
				values = append(values, row)
			}
		}

		blocks = append(blocks, chartBlock{
			title:       fmt.Sprintf("%s - %s", view.Name, chart.Metric.Label()),
			headerRow:   headerRow,
			rowCount:    rowCount,
			columnCount: int64(len(chart.Series)) + 1,
		})

		values = append(values, []any{})
	}

	return values, blocks
}

// chartRequest monta o addChart de um bloco: gráfico de linhas com o
// período no domínio e uma série por coluna, ancorado ao lado do bloco.
func chartRequest(sheetID int64, block chartBlock) sheetsdomain.Request {
	domainRange := sheetsdomain.GridRange{
		SheetID:          sheetID,
		StartRowIndex:    block.headerRow,
		EndRowIndex:      block.headerRow + 1 + block.rowCount,
		StartColumnIndex: 0,
		EndColumnIndex:   1,
	}

	series := make([]sheetsdomain.BasicChartSeries, 0, block.columnCount-1)
	for column := int64(1); column < block.columnCount; column++ {
		series = append(series, sheetsdomain.BasicChartSeries{
			Series: sheetsdomain.ChartData{
				SourceRange: &sheetsdomain.ChartSourceRange{
					Sources: []sheetsdomain.GridRange{{
						SheetID:          sheetID,
						StartRowIndex:    block.headerRow,
						EndRowIndex:      block.headerRow + 1 + block.rowCount,
						StartColumnIndex: column,
						EndColumnIndex:   column + 1,
					}},
				},
			},
			TargetAxis: "LEFT_AXIS",
		})
	}

	return sheetsdomain.Request{
		AddChart: &sheetsdomain.AddChartRequest{
			Chart: sheetsdomain.EmbeddedChart{
				Spec: sheetsdomain.ChartSpec{
					Title: block.title,
					BasicChart: &sheetsdomain.BasicChartSpec{
						ChartType:      "LINE",
						LegendPosition: "BOTTOM_LEGEND",
						HeaderCount:    1,
						Domains: []sheetsdomain.BasicChartDomain{{
							Domain: sheetsdomain.ChartData{
								SourceRange: &sheetsdomain.ChartSourceRange{
									Sources: []sheetsdomain.GridRange{domainRange},
								},
							},
						}},
						Series: series,
					},
				},
				Position: sheetsdomain.EmbeddedObjectPosition{
					OverlayPosition: &sheetsdomain.OverlayPosition{
						AnchorCell: sheetsdomain.GridCoordinate{
							SheetID:     sheetID,
							RowIndex:    block.headerRow,
							ColumnIndex: block.columnCount + 1,
						},
						WidthPixels:  chartWidthCells * 100,
						HeightPixels: 340,
					},
				},
			},
		},
	}
}

// quoteTitle protege títulos com espaços em intervalos A1.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
