package domain

// Metrics é o vetor de métricas acumulado por período e classificação.
// Custo chega aqui já convertido de micros para unidades de moeda; a
// conversão acontece na borda de ingestão das linhas, nunca neste nível.
type Metrics struct {
	Impressions      int64   `json:"impressions"`
	Clicks           int64   `json:"clicks"`
	Cost             float64 `json:"cost"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversions_value"`
}

// Add soma componente a componente. A operação é comutativa e associativa,
// requisito para a correção dos merges entre canais.
func (m *Metrics) Add(other Metrics) {
	m.Impressions += other.Impressions
	m.Clicks += other.Clicks
	m.Cost += other.Cost
	m.Conversions += other.Conversions
	m.ConversionsValue += other.ConversionsValue
}

func (m *Metrics) IsEmpty() bool {
	if m == nil {
		return true
	}

	return m.Impressions == 0 && m.Clicks == 0 && m.Cost == 0 &&
		m.Conversions == 0 && m.ConversionsValue == 0
}
