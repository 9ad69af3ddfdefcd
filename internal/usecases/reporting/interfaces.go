package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/search-brand-reporter/internal/domain"
)

// AdsSource define a fonte de linhas de desempenho de anúncios. Cada método
// corresponde a um formato de consulta; a implementação decide quantas
// requisições são necessárias para produzir o stream decodificado.
type AdsSource interface {
	// GetAccountInfo obtém a identidade da conta para o bloco de metadados
	GetAccountInfo() (*domain.AccountInfo, error)

	// GetSearchTermRows obtém termos de pesquisa de um canal filtrável por
	// tipo de campanha e intervalo de datas
	GetSearchTermRows(channel domain.Channel, granularity domain.Granularity, startDate, endDate time.Time) ([]domain.SearchTermRow, error)

	// GetPMaxSearchTermRows obtém termos de Performance Max com o status de
	// segmentação de cada termo
	GetPMaxSearchTermRows(granularity domain.Granularity, startDate, endDate time.Time) ([]domain.PMaxSearchTermRow, error)

	// GetPMaxCampaigns lista as campanhas Performance Max não removidas
	GetPMaxCampaigns() ([]domain.Campaign, error)

	// GetCategoryRows obtém insights de categoria de uma campanha dentro de
	// uma janela discreta de período
	GetCategoryRows(campaignID string, window domain.PeriodWindow) ([]domain.CategoryRow, error)
}

// Publisher grava o relatório montado no destino tabular.
type Publisher interface {
	Publish(ctx context.Context, report *domain.BrandReport) error
}

// Runner dispara uma execução completa do relatório.
type Runner interface {
	Run(ctx context.Context, trigger domain.RunTrigger) (*domain.ReportRun, error)
}
