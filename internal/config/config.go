package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	GoogleAds  GoogleAds  `mapstructure:",squash"`
	GoogleAuth GoogleAuth `mapstructure:",squash"`
	Sheets     Sheets     `mapstructure:",squash"`
	API        API        `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	RunMode  string `mapstructure:"run_mode"`
}

const (
	RunModeOnce  = "once"
	RunModeServe = "serve"
)

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Report reúne os parâmetros funcionais de uma execução do relatório.
type Report struct {
	StartDate          string   `mapstructure:"report_start_date"`
	EndDate            string   `mapstructure:"report_end_date"`
	LookbackDays       int      `mapstructure:"report_lookback_days"`
	Granularity        string   `mapstructure:"report_granularity"`
	BrandTerms         []string `mapstructure:"report_brand_terms"`
	SearchEnabled      bool     `mapstructure:"report_search_enabled"`
	PMaxEnabled        bool     `mapstructure:"report_pmax_enabled"`
	ShoppingEnabled    bool     `mapstructure:"report_shopping_enabled"`
	ChannelTabsEnabled bool     `mapstructure:"report_channel_tabs_enabled"`
	CategoryTabEnabled bool     `mapstructure:"report_category_tab_enabled"`
	PMaxAllNonBranded  bool     `mapstructure:"report_pmax_all_non_branded"`
}

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	Version         string `mapstructure:"google_ads_version"`
	URL             string `mapstructure:"-"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	CustomerID      string `mapstructure:"google_ads_customer_id"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
}

type GoogleAuth struct {
	ClientEmail    string `mapstructure:"google_auth_client_email"`
	PrivateKey     string `mapstructure:"google_auth_private_key"`
	PrivateKeyFile string `mapstructure:"google_auth_private_key_file"`
	TokenURL       string `mapstructure:"google_auth_token_url"`
	Scopes         string `mapstructure:"google_auth_scopes"`
}

type Sheets struct {
	BaseURL string `mapstructure:"sheets_base_url"`
	// SpreadsheetID aceita o ID cru ou a URL completa do documento; a
	// extração do ID acontece na inicialização e falha antes de qualquer
	// consulta à fonte de dados.
	SpreadsheetID string `mapstructure:"sheets_spreadsheet_id"`
}

type API struct {
	AuthToken string `mapstructure:"api_auth_token"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
	PruneDays    int    `mapstructure:"report_sync_prune_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REPORT_START_DATE", "")
	viper.SetDefault("REPORT_END_DATE", "")
	viper.SetDefault("REPORT_LOOKBACK_DAYS", 90) // 90 dias quando não há datas explícitas
	viper.SetDefault("REPORT_GRANULARITY", "month")
	viper.SetDefault("REPORT_BRAND_TERMS", "")
	viper.SetDefault("REPORT_SEARCH_ENABLED", true)
	viper.SetDefault("REPORT_PMAX_ENABLED", true)
	viper.SetDefault("REPORT_SHOPPING_ENABLED", true)
	viper.SetDefault("REPORT_CHANNEL_TABS_ENABLED", true)
	viper.SetDefault("REPORT_CATEGORY_TAB_ENABLED", true)
	viper.SetDefault("REPORT_PMAX_ALL_NON_BRANDED", false)

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v18")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("GOOGLE_AUTH_CLIENT_EMAIL", "")
	viper.SetDefault("GOOGLE_AUTH_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_AUTH_PRIVATE_KEY_FILE", "")
	viper.SetDefault("GOOGLE_AUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_AUTH_SCOPES", "https://www.googleapis.com/auth/adwords,https://www.googleapis.com/auth/spreadsheets")

	viper.SetDefault("SHEETS_BASE_URL", "https://sheets.googleapis.com")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")

	viper.SetDefault("API_AUTH_TOKEN", "")

	viper.SetDefault("REPORT_SYNC_CRON", "0 6 * * 1") // Toda segunda-feira às 6h da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
	viper.SetDefault("REPORT_SYNC_PRUNE_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("RUN_MODE", RunModeOnce)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	if config.Database.URL != "" {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	return config, nil
}

// BrandTermList retorna os termos de marca sem entradas vazias nem espaços
// nas pontas. A lista pode legitimamente ficar vazia: o matcher resultante
// não casa com nada.
func (r Report) BrandTermList() []string {
	terms := make([]string, 0, len(r.BrandTerms))
	for _, term := range r.BrandTerms {
		term = strings.TrimSpace(term)
		if term != "" {
			terms = append(terms, term)
		}
	}

	return terms
}

// ResolveDateRange calcula o intervalo da execução: datas explícitas quando
// configuradas, senão lookback de dias terminando ontem.
func (r Report) ResolveDateRange(now time.Time) (time.Time, time.Time, error) {
	if r.StartDate != "" || r.EndDate != "" {
		start, err := time.Parse(time.DateOnly, r.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("data inicial inválida %q: %w", r.StartDate, err)
		}

		end, err := time.Parse(time.DateOnly, r.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("data final inválida %q: %w", r.EndDate, err)
		}

		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("data final %s anterior à inicial %s", r.EndDate, r.StartDate)
		}

		return start, end, nil
	}

	if r.LookbackDays <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("lookback de dias inválido: %d", r.LookbackDays)
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(r.LookbackDays - 1))

	return start, end, nil
}

// ScopeList separa os escopos OAuth configurados por vírgula.
func (g GoogleAuth) ScopeList() []string {
	scopes := make([]string, 0)
	for _, scope := range strings.Split(g.Scopes, ",") {
		scope = strings.TrimSpace(scope)
		if scope != "" {
			scopes = append(scopes, scope)
		}
	}

	return scopes
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
