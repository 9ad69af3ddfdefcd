package domain

// SearchTermRow é uma linha decodificada de termo de pesquisa (Search e
// Shopping). O custo já chega convertido de micros para unidades de moeda.
type SearchTermRow struct {
	SearchTerm string
	PeriodRaw  string
	Metrics    Metrics
}

// PMaxSearchTermRow acrescenta o status de segmentação da interface, usado
// para descartar termos excluídos antes de qualquer acumulação.
type PMaxSearchTermRow struct {
	SearchTermRow
	TargetingStatus string
}

// CategoryRow é uma linha de insight de categoria de uma campanha
// Performance Max. Não há custo nesta fonte; o período vem da janela da
// consulta que produziu a linha, não de um segmento da própria linha.
type CategoryRow struct {
	Label   string
	Metrics Metrics
}
