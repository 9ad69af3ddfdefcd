package googleauth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-brand-reporter/internal/config"
)

const (
	jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionLifetime  = time.Hour
	// Renovar antes da expiração real para nunca usar um token no limite
	refreshSafetyMargin = 5 * time.Minute
)

// TokenManager gerencia o token de acesso OAuth2 da conta de serviço usado
// nas APIs do Google Ads e do Sheets. O token é obtido pelo grant JWT-bearer
// assinado com a chave privada da conta de serviço e mantido em cache até
// perto da expiração.
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
	httpClient        *http.Client

	accessToken    string
	tokenExpiresAt time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		stopRefresh: make(chan struct{}),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// AccessToken retorna um token válido, renovando se necessário.
func (tm *TokenManager) AccessToken() (string, error) {
	if err := tm.EnsureValidToken(); err != nil {
		return "", err
	}

	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	return tm.accessToken, nil
}

// EnsureValidToken verifica se o token atual é válido e o renova se necessário
func (tm *TokenManager) EnsureValidToken() error {
	tm.TokenRefreshMutex.Lock()
	valid := tm.accessToken != "" && time.Until(tm.tokenExpiresAt) > refreshSafetyMargin
	tm.TokenRefreshMutex.Unlock()

	if valid {
		return nil
	}

	return tm.RefreshToken()
}

// RefreshToken troca uma assinatura JWT por um novo token de acesso
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Outra goroutine pode ter renovado enquanto esperávamos o mutex
	if tm.accessToken != "" && time.Until(tm.tokenExpiresAt) > refreshSafetyMargin {
		return nil
	}

	assertion, err := tm.buildAssertion()
	if err != nil {
		return fmt.Errorf("erro ao montar assinatura JWT: %w", err)
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrantType)
	form.Set("assertion", assertion)

	resp, err := tm.httpClient.PostForm(tm.cfg.GoogleAuth.TokenURL, form)
	if err != nil {
		return fmt.Errorf("erro ao trocar assinatura por token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta do token: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("erro na resposta do token. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do token: %w", err)
	}

	if tokenResponse.AccessToken == "" {
		return fmt.Errorf("resposta do token sem access_token")
	}

	tm.accessToken = tokenResponse.AccessToken
	tm.tokenExpiresAt = time.Now().Add(time.Duration(tokenResponse.ExpiresIn) * time.Second)

	logrus.WithFields(logrus.Fields{
		"expires_at": tm.tokenExpiresAt.Format(time.RFC3339),
	}).Info("Token de acesso do Google renovado com sucesso")

	return nil
}

// StartAutoRefresh mantém o token renovado em background.
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.RefreshToken(); err != nil {
		logrus.WithError(err).Error("Erro na renovação inicial do token do Google")
	}

	ticker := time.NewTicker(45 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token do Google")
			if err := tm.RefreshToken(); err != nil {
				logrus.WithError(err).Error("Erro na renovação periódica do token do Google")

				// Se falhar, tentar novamente em um intervalo mais curto
				ticker.Reset(5 * time.Minute)
			} else {
				ticker.Reset(45 * time.Minute)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token do Google")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// buildAssertion monta e assina o JWT RS256 da conta de serviço.
func (tm *TokenManager) buildAssertion() (string, error) {
	keyPEM, err := tm.privateKeyPEM()
	if err != nil {
		return "", err
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(keyPEM)
	if err != nil {
		return "", fmt.Errorf("erro ao parsear chave privada da conta de serviço: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   tm.cfg.GoogleAuth.ClientEmail,
		"scope": strings.Join(tm.cfg.GoogleAuth.ScopeList(), " "),
		"aud":   tm.cfg.GoogleAuth.TokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}

// privateKeyPEM obtém a chave privada da configuração: inline (com \n
// escapados, como chega de variável de ambiente) ou de um arquivo.
func (tm *TokenManager) privateKeyPEM() ([]byte, error) {
	if tm.cfg.GoogleAuth.PrivateKey != "" {
		return []byte(strings.ReplaceAll(tm.cfg.GoogleAuth.PrivateKey, `\n`, "\n")), nil
	}

	if tm.cfg.GoogleAuth.PrivateKeyFile != "" {
		keyPEM, err := os.ReadFile(tm.cfg.GoogleAuth.PrivateKeyFile)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo de chave privada: %w", err)
		}

		return keyPEM, nil
	}

	return nil, fmt.Errorf("nenhuma chave privada de conta de serviço configurada")
}
