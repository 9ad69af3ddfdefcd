package adsclient

import (
	"errors"

	adsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/domain"
)

// GetAccountInfo obtém a identidade da conta anunciante (nome, moeda, fuso)
// para o bloco de metadados do relatório.
func (c *GoogleAdsClient) GetAccountInfo() (*adsdomain.Customer, error) {
	query := `
		SELECT
			customer.id,
			customer.descriptive_name,
			customer.currency_code,
			customer.time_zone
		FROM customer`

	results, err := c.search(query)
	if err != nil {
		return nil, err
	}

	for _, result := range results {
		if result.Customer != nil {
			return result.Customer, nil
		}
	}

	return nil, errors.New("no data found")
}
