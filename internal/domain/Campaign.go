package domain

// Campaign é uma campanha Performance Max da conta. A fonte de insights de
// categoria não filtra por data nem por canal, então a listagem prévia de
// campanhas define o leque de consultas por (campanha, janela de período).
type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
