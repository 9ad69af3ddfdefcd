package adsclient

import (
	"fmt"

	adsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/domain"
)

// GetCategoryInsights consulta os insights de categoria de uma campanha
// Performance Max dentro de uma janela de datas. A fonte não expõe coluna
// de segmento selecionável nem custo; o período da linha é o da janela da
// consulta que a produziu.
func (c *GoogleAdsClient) GetCategoryInsights(campaignID, startDate, endDate string) ([]adsdomain.Result, error) {
	query := fmt.Sprintf(`
		SELECT
			campaign_search_term_insight.category_label,
			metrics.impressions,
			metrics.clicks,
			metrics.conversions,
			metrics.conversions_value
		FROM campaign_search_term_insight
		WHERE campaign_search_term_insight.campaign_id = %s
			AND segments.date BETWEEN '%s' AND '%s'`,
		campaignID, startDate, endDate,
	)

	return c.search(query)
}
