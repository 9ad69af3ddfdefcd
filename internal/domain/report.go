package domain

import "time"

// MetricName identifica uma métrica individual nas séries de gráfico.
type MetricName string

const (
	MetricImpressions      MetricName = "impressions"
	MetricClicks           MetricName = "clicks"
	MetricCost             MetricName = "cost"
	MetricConversions      MetricName = "conversions"
	MetricConversionsValue MetricName = "conversions_value"
)

// MetricOrder é a ordem fixa das métricas nas colunas e gráficos.
var MetricOrder = []MetricName{
	MetricImpressions,
	MetricClicks,
	MetricCost,
	MetricConversions,
	MetricConversionsValue,
}

func (m MetricName) Label() string {
	switch m {
	case MetricImpressions:
		return "Impressions"
	case MetricClicks:
		return "Clicks"
	case MetricCost:
		return "Cost"
	case MetricConversions:
		return "Conversions"
	case MetricConversionsValue:
		return "Conv. value"
	}

	return string(m)
}

// ValueOf retorna o componente do vetor correspondente à métrica, como
// float64 para alimentar séries de gráfico de forma uniforme.
func (m Metrics) ValueOf(name MetricName) float64 {
	switch name {
	case MetricImpressions:
		return float64(m.Impressions)
	case MetricClicks:
		return float64(m.Clicks)
	case MetricCost:
		return m.Cost
	case MetricConversions:
		return m.Conversions
	case MetricConversionsValue:
		return m.ConversionsValue
	}

	return 0
}

// ReportRow é uma linha da tabela final: um par (período, classificação)
// com as métricas acumuladas e as razões derivadas calculadas na renderização.
type ReportRow struct {
	PeriodKey      string
	PeriodLabel    string
	Classification Classification
	Metrics        Metrics
	CPA            float64
	ROAS           float64
}

type ReportTable struct {
	Title string
	Rows  []ReportRow
}

type SeriesPoint struct {
	PeriodKey string
	Label     string
	Value     float64
}

// ChartSeries é uma série temporal de uma classificação (ou da razão de
// participação branded) para uma métrica.
type ChartSeries struct {
	Name   string
	Points []SeriesPoint
}

// MetricSeries agrupa as séries de gráfico de uma métrica: uma por
// classificação presente mais a série de participação branded.
type MetricSeries struct {
	Metric MetricName
	Series []ChartSeries
}

// ChannelReport é o bloco renderizável de uma visão do relatório
// (combinada, por canal ou de categorias).
type ChannelReport struct {
	Name   string
	Table  ReportTable
	Charts []MetricSeries
}

// BrandReport é o relatório completo de uma execução, pronto para o sink.
type BrandReport struct {
	Account     *AccountInfo
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
	BrandTerms  []string
	GeneratedAt time.Time
	Combined    *ChannelReport
	Channels    []*ChannelReport
	Category    *ChannelReport
}
