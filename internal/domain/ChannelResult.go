package domain

import "sort"

// PeriodBucket mapeia classificação → métricas acumuladas de um período.
type PeriodBucket map[Classification]*Metrics

// Get busca o vetor da classificação, criando o vetor zero na primeira
// escrita. A criação explícita faz parte do contrato do acumulador.
func (b PeriodBucket) Get(classification Classification) *Metrics {
	metrics, ok := b[classification]
	if !ok {
		metrics = &Metrics{}
		b[classification] = metrics
	}

	return metrics
}

// PeriodData mapeia chave de período → bucket por classificação.
type PeriodData map[string]PeriodBucket

// Bucket busca o bucket do período, criando um vazio na primeira escrita.
func (d PeriodData) Bucket(periodKey string) PeriodBucket {
	bucket, ok := d[periodKey]
	if !ok {
		bucket = PeriodBucket{}
		d[periodKey] = bucket
	}

	return bucket
}

// SortedKeys retorna as chaves de período em ordem crescente. Os formatos
// canônicos garantem que ordem lexicográfica é ordem cronológica.
func (d PeriodData) SortedKeys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// ChannelResult acumula os totais e os dados por período de um canal.
type ChannelResult struct {
	Channel Channel
	Totals  PeriodBucket
	Periods PeriodData
}

func NewChannelResult(channel Channel) *ChannelResult {
	return &ChannelResult{
		Channel: channel,
		Totals:  PeriodBucket{},
		Periods: PeriodData{},
	}
}

// AddRow acumula um vetor em exatamente um slot (período, classificação),
// tanto no mapa de períodos quanto nos totais do canal.
func (r *ChannelResult) AddRow(periodKey string, classification Classification, metrics Metrics) {
	r.Periods.Bucket(periodKey).Get(classification).Add(metrics)
	r.Totals.Get(classification).Add(metrics)
}

// PeriodCount retorna o total de períodos com pelo menos uma linha acumulada.
func (r *ChannelResult) PeriodCount() int {
	return len(r.Periods)
}
