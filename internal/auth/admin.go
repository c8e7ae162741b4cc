package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/magerest/magento-go/internal/constants"
	"github.com/magerest/magento-go/pkg/magento"
)

var _ TokenManager = (*AdminTokenManager)(nil)

// AdminConfig configures an AdminTokenManager.
type AdminConfig struct {
	// TokenURL is the full URL of the admin token grant endpoint.
	TokenURL string
	// ValidationURL is the full URL of a stable read endpoint used to
	// prove a freshly obtained token is usable.
	ValidationURL string

	Username string
	Password string
	// APIKey, when set, is used directly as the bearer token; the
	// password grant is skipped but validation still runs.
	APIKey string

	UserAgent  string
	Logger     magento.Logger
	HTTPClient *http.Client
}

// AdminTokenManager obtains admin tokens via the password grant and
// validates every obtained token before handing it out. Authentication
// attempts are bounded over the manager lifetime; the counter resets on
// each success, so only consecutive failures exhaust it.
type AdminTokenManager struct {
	config     AdminConfig
	store      *TokenStore
	httpClient *http.Client
	logger     magento.Logger

	mu       sync.Mutex
	attempts int
}

// NewAdminTokenManager creates a token manager for the admin token grant.
func NewAdminTokenManager(config AdminConfig) *AdminTokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}
	logger := config.Logger
	if logger == nil {
		logger = magento.NopLogger{}
	}
	return &AdminTokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
		logger:     logger,
	}
}

// GetToken returns the held token, authenticating first if none is held.
func (m *AdminTokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token != "" {
		return token, nil
	}
	if err := m.Authenticate(ctx); err != nil {
		return "", err
	}
	return m.store.Get(), nil
}

// RefreshToken discards the held token and authenticates again.
func (m *AdminTokenManager) RefreshToken(ctx context.Context) (string, error) {
	m.store.Clear()
	if err := m.Authenticate(ctx); err != nil {
		return "", err
	}
	return m.store.Get(), nil
}

// SetToken seeds the manager with an externally obtained token. The token
// is trusted as-is; the next 401 triggers a normal refresh.
func (m *AdminTokenManager) SetToken(token string) {
	m.store.Set(token)
}

// Attempts reports the consecutive failed authentication count.
func (m *AdminTokenManager) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

// Authenticate obtains a token and validates it against the validation
// endpoint. After the attempt bound is reached, further calls fail
// immediately without touching the network.
func (m *AdminTokenManager) Authenticate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.attempts >= constants.AuthAttemptMax {
		return magento.ErrAuthAttemptsExceeded
	}
	m.attempts++

	token, err := m.obtainToken(ctx)
	if err != nil {
		return err
	}

	if err := m.validateToken(ctx, token); err != nil {
		m.store.Clear()
		return err
	}

	m.store.Set(token)
	m.attempts = 0
	m.logger.Debug("authenticated", map[string]interface{}{
		"username": m.config.Username,
	})
	return nil
}

func (m *AdminTokenManager) obtainToken(ctx context.Context) (string, error) {
	if m.config.APIKey != "" {
		return m.config.APIKey, nil
	}
	if m.config.Username == "" || m.config.Password == "" {
		return "", magento.ErrMissingCredentials
	}

	payload, err := json.Marshal(map[string]string{
		"username": m.config.Username,
		"password": m.config.Password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.config.UserAgent != "" {
		req.Header.Set("User-Agent", m.config.UserAgent)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		m.logger.Error("token request rejected", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return "", &magento.AuthenticationError{
			Message:    magento.ParseError(body),
			StatusCode: resp.StatusCode,
			Response:   string(body),
		}
	}

	// The token endpoint returns a bare JSON string.
	var token string
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	return token, nil
}

func (m *AdminTokenManager) validateToken(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.config.ValidationURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create validation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if m.config.UserAgent != "" {
		req.Header.Set("User-Agent", m.config.UserAgent)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("token validation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read validation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		m.logger.Error("token validation failed", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return &magento.AuthenticationError{
			Message:    magento.ParseError(body),
			StatusCode: resp.StatusCode,
			Response:   string(body),
		}
	}
	return nil
}
