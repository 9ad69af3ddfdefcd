package domain

// AccountInfo identifica a conta anunciante no cabeçalho do relatório.
type AccountInfo struct {
	CustomerID      string `json:"customer_id"`
	DescriptiveName string `json:"descriptive_name"`
	CurrencyCode    string `json:"currency_code"`
	TimeZone        string `json:"time_zone"`
}
