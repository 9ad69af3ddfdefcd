package sheetsclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	sheetsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleauth"
	"github.com/vfg2006/search-brand-reporter/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetSpreadsheet(spreadsheetID string) (*sheetsdomain.Spreadsheet, error)
	UpdateValues(spreadsheetID, rangeA1 string, values [][]any) error
	ClearValues(spreadsheetID, rangeA1 string) error
	BatchUpdate(spreadsheetID string, requests []sheetsdomain.Request) (*sheetsdomain.BatchUpdateResponse, error)
}

type SheetsClient struct {
	Cfg          *config.Config
	TokenManager *googleauth.TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *googleauth.TokenManager) Client {
	return &SheetsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// do executa uma requisição autenticada e decodifica a resposta em out
// quando out não é nulo.
func (c *SheetsClient) do(req *http.Request, out any) error {
	token, err := c.TokenManager.AccessToken()
	if err != nil {
		return fmt.Errorf("erro ao obter token de acesso: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp sheetsdomain.ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
			return fmt.Errorf("erro na resposta da API do Sheets: %s (%d): %s",
				errorResp.Error.Status, errorResp.Error.Code, errorResp.Error.Message)
		}

		return fmt.Errorf("erro na resposta da API do Sheets. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return nil
}
