package adsclient

import (
	"fmt"

	adsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/domain"
)

// GetPMaxSearchTermRows consulta os termos de pesquisa das campanhas
// Performance Max, incluindo o status de segmentação de cada termo para o
// filtro de exclusão feito na classificação.
func (c *GoogleAdsClient) GetPMaxSearchTermRows(segmentColumn, startDate, endDate string) ([]adsdomain.Result, error) {
	query := fmt.Sprintf(`
		SELECT
			search_term_view.search_term,
			search_term_view.status,
			segments.%s,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros,
			metrics.conversions,
			metrics.conversions_value
		FROM search_term_view
		WHERE campaign.advertising_channel_type = 'PERFORMANCE_MAX'
			AND segments.date BETWEEN '%s' AND '%s'`,
		segmentColumn, startDate, endDate,
	)

	return c.search(query)
}
