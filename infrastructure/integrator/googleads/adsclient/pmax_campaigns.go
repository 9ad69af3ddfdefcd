package adsclient

import (
	adsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/domain"
)

// GetPMaxCampaigns lista as campanhas Performance Max não removidas da
// conta. A fonte de insights de categoria exige uma consulta por campanha,
// então esta listagem acontece antes.
func (c *GoogleAdsClient) GetPMaxCampaigns() ([]adsdomain.Campaign, error) {
	query := `
		SELECT
			campaign.id,
			campaign.name,
			campaign.status
		FROM campaign
		WHERE campaign.advertising_channel_type = 'PERFORMANCE_MAX'
			AND campaign.status != 'REMOVED'`

	results, err := c.search(query)
	if err != nil {
		return nil, err
	}

	campaigns := make([]adsdomain.Campaign, 0, len(results))
	for _, result := range results {
		if result.Campaign == nil {
			continue
		}

		campaigns = append(campaigns, *result.Campaign)
	}

	return campaigns, nil
}
