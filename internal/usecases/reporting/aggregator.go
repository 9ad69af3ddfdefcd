package reporting

import (
	"github.com/vfg2006/search-brand-reporter/internal/domain"
)

// MergeTotals acumula os vetores de source em target, componente a
// componente. A operação é comutativa e associativa, então a ordem dos
// merges entre canais não altera o resultado.
func MergeTotals(target, source domain.PeriodBucket) {
	for classification, metrics := range source {
		if metrics == nil {
			continue
		}

		target.Get(classification).Add(*metrics)
	}
}

// MergePeriodData acumula source em target período a período. Um período
// presente só em source ganha um bucket zerado em target antes da soma;
// nenhum período de nenhum dos operandos é descartado.
func MergePeriodData(target, source domain.PeriodData) {
	for periodKey, bucket := range source {
		MergeTotals(target.Bucket(periodKey), bucket)
	}
}

// MergeChannelResults acumula totais e períodos de source em target.
func MergeChannelResults(target, source *domain.ChannelResult) {
	if source == nil {
		return
	}

	MergeTotals(target.Totals, source.Totals)
	MergePeriodData(target.Periods, source.Periods)
}

// CPA é o custo por conversão. Zero conversões resulta em zero, nunca em
// divisão por zero.
func CPA(m domain.Metrics) float64 {
	if m.Conversions == 0 {
		return 0
	}

	return m.Cost / m.Conversions
}

// ROAS é o retorno sobre o investimento em anúncios.
func ROAS(m domain.Metrics) float64 {
	if m.Cost == 0 {
		return 0
	}

	return m.ConversionsValue / m.Cost
}

// BrandedShare é a participação branded de uma métrica num bucket,
// considerando todas as classificações presentes no denominador (inclusive
// Blank na fonte de categorias). Denominador zero resulta em zero.
func BrandedShare(bucket domain.PeriodBucket, metric domain.MetricName) float64 {
	var branded, total float64

	for classification, metrics := range bucket {
		if metrics == nil {
			continue
		}

		value := metrics.ValueOf(metric)
		total += value

		if classification == domain.ClassificationBranded {
			branded = value
		}
	}

	if total == 0 {
		return 0
	}

	return branded / total
}
