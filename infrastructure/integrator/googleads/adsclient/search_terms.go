package adsclient

import (
	"fmt"

	adsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/domain"
)

// GetSearchTermRows consulta os termos de pesquisa de um tipo de campanha
// (SEARCH ou SHOPPING), segmentados pela coluna de período da granularidade
// da execução.
func (c *GoogleAdsClient) GetSearchTermRows(channelType, segmentColumn, startDate, endDate string) ([]adsdomain.Result, error) {
	query := fmt.Sprintf(`
		SELECT
			search_term_view.search_term,
			segments.%s,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros,
			metrics.conversions,
			metrics.conversions_value
		FROM search_term_view
		WHERE campaign.advertising_channel_type = '%s'
			AND segments.date BETWEEN '%s' AND '%s'`,
		segmentColumn, channelType, startDate, endDate,
	)

	return c.search(query)
}
