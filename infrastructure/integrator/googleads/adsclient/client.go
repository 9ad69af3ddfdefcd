package adsclient

import (
	"net/http"
	"time"

	adsdomain "github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/search-brand-reporter/infrastructure/integrator/googleauth"
	"github.com/vfg2006/search-brand-reporter/internal/config"
)

// Client expõe os formatos de consulta usados pelo relatório, um método por
// formato. Todos paginam internamente e devolvem as linhas cruas do fio.
type Client interface {
	GetAccountInfo() (*adsdomain.Customer, error)
	GetSearchTermRows(channelType, segmentColumn, startDate, endDate string) ([]adsdomain.Result, error)
	GetPMaxSearchTermRows(segmentColumn, startDate, endDate string) ([]adsdomain.Result, error)
	GetPMaxCampaigns() ([]adsdomain.Campaign, error)
	GetCategoryInsights(campaignID, startDate, endDate string) ([]adsdomain.Result, error)
}

type GoogleAdsClient struct {
	Cfg          *config.Config
	TokenManager *googleauth.TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *googleauth.TokenManager) Client {
	return &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}
