package domain

// SearchRequest é o corpo da chamada googleAds:search.
type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// SearchResponse é uma página de resultados; NextPageToken vazio encerra a
// paginação.
type SearchResponse struct {
	Results       []Result `json:"results"`
	NextPageToken string   `json:"nextPageToken"`
}

// Result é uma linha do relatório. Só os recursos selecionados na consulta
// vêm preenchidos.
type Result struct {
	Customer                  *Customer                  `json:"customer,omitempty"`
	Campaign                  *Campaign                  `json:"campaign,omitempty"`
	SearchTermView            *SearchTermView            `json:"searchTermView,omitempty"`
	CampaignSearchTermInsight *CampaignSearchTermInsight `json:"campaignSearchTermInsight,omitempty"`
	Metrics                   *Metrics                   `json:"metrics,omitempty"`
	Segments                  *Segments                  `json:"segments,omitempty"`
}

type Customer struct {
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
}

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type SearchTermView struct {
	SearchTerm string `json:"searchTerm"`
	Status     string `json:"status"`
}

type CampaignSearchTermInsight struct {
	ID            string `json:"id"`
	CampaignID    string `json:"campaignId"`
	CategoryLabel string `json:"categoryLabel"`
}

// Metrics carrega os valores como chegam no fio: inteiros de 64 bits são
// strings JSON, decimais são números.
type Metrics struct {
	Impressions      string  `json:"impressions"`
	Clicks           string  `json:"clicks"`
	CostMicros       string  `json:"costMicros"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

// Segments traz a chave de período da linha conforme a coluna de segmento
// selecionada na consulta.
type Segments struct {
	Date  string `json:"date"`
	Month string `json:"month"`
	Week  string `json:"week"`
}

// PeriodValue retorna o valor de período presente no segmento, priorizando
// a coluna selecionada pela granularidade da consulta.
func (s *Segments) PeriodValue() string {
	if s == nil {
		return ""
	}

	if s.Month != "" {
		return s.Month
	}

	if s.Week != "" {
		return s.Week
	}

	return s.Date
}
