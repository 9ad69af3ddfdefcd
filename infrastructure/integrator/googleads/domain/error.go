package domain

import "fmt"

// ErrorResponse é o envelope de erro padrão da API do Google Ads.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (e *ErrorResponse) String() string {
	return fmt.Sprintf("%s (%d): %s", e.Error.Status, e.Error.Code, e.Error.Message)
}

// IsAuthError indica erro de credencial ou token, casos em que vale renovar
// o token e tentar de novo.
func (e *ErrorResponse) IsAuthError() bool {
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED"
}
