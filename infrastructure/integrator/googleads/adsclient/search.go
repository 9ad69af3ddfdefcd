package adsclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// search executa uma consulta GAQL contra a conta configurada, seguindo
// nextPageToken até esgotar as páginas.
func (c *GoogleAdsClient) search(query string) ([]adsdomain.Result, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, c.Cfg.GoogleAds.CustomerID)

	var results []adsdomain.Result
	pageToken := ""

	for {
		page, err := c.searchPage(endpoint, query, pageToken)
		if err != nil {
			return nil, err
		}

		results = append(results, page.Results...)

		if page.NextPageToken == "" {
			return results, nil
		}

		pageToken = page.NextPageToken
	}
}

func (c *GoogleAdsClient) searchPage(endpoint, query, pageToken string) (*adsdomain.SearchResponse, error) {
	token, err := c.TokenManager.AccessToken()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de acesso: %w", err)
	}

	body, err := json.Marshal(adsdomain.SearchRequest{
		Query:     query,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if c.Cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp.StatusCode, respBody)
	}

	var response adsdomain.SearchResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}

func (c *GoogleAdsClient) handleErrorResponse(statusCode int, body []byte) error {
	var errorResp adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
		if errorResp.IsAuthError() {
			logrus.Warn("Token recusado pela API do Google Ads; forçando renovação")
			if refreshErr := c.TokenManager.RefreshToken(); refreshErr != nil {
				return fmt.Errorf("erro ao renovar token recusado: %w", refreshErr)
			}
		}

		return fmt.Errorf("erro na resposta da API do Google Ads: %s", errorResp.String())
	}

	return fmt.Errorf("erro na resposta da API do Google Ads. Status: %d, Corpo: %s", statusCode, string(body))
}
