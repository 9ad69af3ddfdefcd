package sheetsclient

import (
	"fmt"
	"net/http"

	sheetsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets/domain"
)

// GetSpreadsheet obtém o inventário de abas do documento.
func (c *SheetsClient) GetSpreadsheet(spreadsheetID string) (*sheetsdomain.Spreadsheet, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s?fields=spreadsheetId,properties.title,sheets.properties", c.Cfg.Sheets.BaseURL, spreadsheetID)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	var spreadsheet sheetsdomain.Spreadsheet
	if err := c.do(req, &spreadsheet); err != nil {
		return nil, err
	}

	return &spreadsheet, nil
}
