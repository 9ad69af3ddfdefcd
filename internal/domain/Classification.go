package domain

type Classification string

const (
	ClassificationBranded    Classification = "BRANDED"
	ClassificationNonBranded Classification = "NON_BRANDED"
	ClassificationBlank      Classification = "BLANK"
)

// ClassificationOrder é a ordem fixa de renderização nas tabelas e gráficos.
var ClassificationOrder = []Classification{
	ClassificationBranded,
	ClassificationNonBranded,
	ClassificationBlank,
}

// Label retorna o rótulo exibido na planilha.
func (c Classification) Label() string {
	switch c {
	case ClassificationBranded:
		return "Branded"
	case ClassificationNonBranded:
		return "Non-branded"
	case ClassificationBlank:
		return "Blank"
	}

	return string(c)
}
