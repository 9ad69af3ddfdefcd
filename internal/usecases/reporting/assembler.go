package reporting

import (
	"github.com/vfg2006/search-brand-reporter/internal/domain"
)

// AssembleChannelReport transforma um resultado acumulado no bloco
// renderizável: tabela ordenada por período crescente e, dentro do período,
// pela ordem fixa de classificação, mais as séries de gráfico por métrica.
// As razões derivadas são calculadas aqui, na renderização; os valores
// acumulados nunca são alterados.
func AssembleChannelReport(name string, granularity domain.Granularity, result *domain.ChannelResult, classifications []domain.Classification) *domain.ChannelReport {
	periodKeys := result.Periods.SortedKeys()

	rows := make([]domain.ReportRow, 0, len(periodKeys)*len(classifications))
	for _, periodKey := range periodKeys {
		bucket := result.Periods[periodKey]
		label := domain.FormatPeriodLabel(granularity, periodKey)

		for _, classification := range classifications {
			metrics := domain.Metrics{}
			if accumulated := bucket[classification]; accumulated != nil {
				metrics = *accumulated
			}

			rows = append(rows, domain.ReportRow{
				PeriodKey:      periodKey,
				PeriodLabel:    label,
				Classification: classification,
				Metrics:        metrics,
				CPA:            CPA(metrics),
				ROAS:           ROAS(metrics),
			})
		}
	}

	return &domain.ChannelReport{
		Name: name,
		Table: domain.ReportTable{
			Title: name,
			Rows:  rows,
		},
		Charts: assembleCharts(granularity, result, periodKeys, classifications),
	}
}

// assembleCharts monta, para cada métrica, uma série por classificação mais
// a série de participação branded.
func assembleCharts(granularity domain.Granularity, result *domain.ChannelResult, periodKeys []string, classifications []domain.Classification) []domain.MetricSeries {
	charts := make([]domain.MetricSeries, 0, len(domain.MetricOrder))

	for _, metric := range domain.MetricOrder {
		series := make([]domain.ChartSeries, 0, len(classifications)+1)

		for _, classification := range classifications {
			points := make([]domain.SeriesPoint, 0, len(periodKeys))
			for _, periodKey := range periodKeys {
				var value float64
				if metrics := result.Periods[periodKey][classification]; metrics != nil {
					value = metrics.ValueOf(metric)
				}

				points = append(points, domain.SeriesPoint{
					PeriodKey: periodKey,
					Label:     domain.FormatPeriodLabel(granularity, periodKey),
					Value:     value,
				})
			}

			series = append(series, domain.ChartSeries{
				Name:   classification.Label(),
				Points: points,
			})
		}

		sharePoints := make([]domain.SeriesPoint, 0, len(periodKeys))
		for _, periodKey := range periodKeys {
			sharePoints = append(sharePoints, domain.SeriesPoint{
				PeriodKey: periodKey,
				Label:     domain.FormatPeriodLabel(granularity, periodKey),
				Value:     BrandedShare(result.Periods[periodKey], metric),
			})
		}

		series = append(series, domain.ChartSeries{
			Name:   "% Branded",
			Points: sharePoints,
		})

		charts = append(charts, domain.MetricSeries{
			Metric: metric,
			Series: series,
		})
	}

	return charts
}
