package sheetsclient

import (
	"bytes"
	"fmt"
	"net/http"

	sheetsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets/domain"
)

// BatchUpdate aplica mutações estruturais (abas, gráficos, reordenação) em
// uma única chamada.
func (c *SheetsClient) BatchUpdate(spreadsheetID string, requests []sheetsdomain.Request) (*sheetsdomain.BatchUpdateResponse, error) {
	if len(requests) == 0 {
		return &sheetsdomain.BatchUpdateResponse{}, nil
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s:batchUpdate", c.Cfg.Sheets.BaseURL, spreadsheetID)

	body, err := json.Marshal(sheetsdomain.BatchUpdateRequest{Requests: requests})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisições: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	var response sheetsdomain.BatchUpdateResponse
	if err := c.do(req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
