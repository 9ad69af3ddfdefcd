package domain

// Channel identifica o tipo de campanha de origem das linhas do relatório.
// Cada canal tem um formato de consulta próprio na fonte de dados.
type Channel string

const (
	ChannelSearch         Channel = "SEARCH"
	ChannelPerformanceMax Channel = "PERFORMANCE_MAX"
	ChannelShopping       Channel = "SHOPPING"
)

// ChannelOrder é a ordem fixa dos canais nas abas da planilha.
var ChannelOrder = []Channel{
	ChannelSearch,
	ChannelPerformanceMax,
	ChannelShopping,
}

// Label retorna o nome exibido na planilha.
func (c Channel) Label() string {
	switch c {
	case ChannelSearch:
		return "Search"
	case ChannelPerformanceMax:
		return "Performance Max"
	case ChannelShopping:
		return "Shopping"
	}

	return string(c)
}
