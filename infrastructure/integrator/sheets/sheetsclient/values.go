package sheetsclient

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	sheetsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets/domain"
)

// UpdateValues grava um bloco de células começando no intervalo informado.
func (c *SheetsClient) UpdateValues(spreadsheetID, rangeA1 string, values [][]any) error {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=USER_ENTERED",
		c.Cfg.Sheets.BaseURL, spreadsheetID, url.PathEscape(rangeA1))

	body, err := json.Marshal(sheetsdomain.ValueRange{
		Range:  rangeA1,
		Values: values,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar valores: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	return c.do(req, nil)
}

// ClearValues limpa o intervalo informado antes de uma nova escrita.
func (c *SheetsClient) ClearValues(spreadsheetID, rangeA1 string) error {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:clear",
		c.Cfg.Sheets.BaseURL, spreadsheetID, url.PathEscape(rangeA1))

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	return c.do(req, nil)
}
