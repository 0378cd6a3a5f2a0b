package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// expiryMargin is subtracted from the server-declared token lifetime so the
// token is refreshed before it can expire under clock skew or while a
// request using it is still in flight.
const expiryMargin = 60 * time.Second

// TokenManager owns a client credentials access token and refreshes it on
// demand.
//
// Token is the single entry point: it returns the held token while it is
// valid and performs the refresh POST against the accounts service
// otherwise. Field access is guarded internally, but the refresh itself is
// not mutually exclusive: concurrent Token calls that all observe an
// expired token will each issue their own refresh request. That wastes
// auth traffic but never correctness, since whichever refresh finishes
// last wins and every caller still receives a valid token. Callers that
// want at most one in-flight refresh can hold their own lock across the
// full Token call, as Client does, or construct the manager with
// WithRefreshSingleFlight.
type TokenManager struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	tokenURL     string
	metrics      *Metrics
	group        *singleflight.Group

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time

	now func() time.Time // stubbed in tests
}

// TokenOption configures a TokenManager.
type TokenOption func(*TokenManager)

// WithTokenHTTPClient sets the HTTP client used for refresh requests.
func WithTokenHTTPClient(httpClient *http.Client) TokenOption {
	return func(m *TokenManager) {
		if httpClient != nil {
			m.httpClient = httpClient
		}
	}
}

// WithTokenURL overrides the token endpoint, primarily for testing.
func WithTokenURL(tokenURL string) TokenOption {
	return func(m *TokenManager) {
		if tokenURL != "" {
			m.tokenURL = tokenURL
		}
	}
}

// WithRefreshSingleFlight collapses concurrent refreshes into a single
// request whose result is shared by every waiting caller.
func WithRefreshSingleFlight() TokenOption {
	return func(m *TokenManager) {
		m.group = &singleflight.Group{}
	}
}

// withTokenMetrics wires the owning client's metrics collector into the
// manager.
func withTokenMetrics(metrics *Metrics) TokenOption {
	return func(m *TokenManager) {
		m.metrics = metrics
	}
}

// NewTokenManager creates a manager for the given application credentials.
// No token is fetched until the first Token call.
func NewTokenManager(clientID, clientSecret string, opts ...TokenOption) *TokenManager {
	m := &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   http.DefaultClient,
		tokenURL:     DefaultAccountsURL + "/api/token",
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Token returns a currently valid access token, refreshing first when the
// held one is missing or past its adjusted expiry.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	if m.validLocked() {
		token := m.accessToken
		m.mu.Unlock()
		return token, nil
	}
	m.mu.Unlock()

	if m.group != nil {
		v, err, _ := m.group.Do("refresh", func() (interface{}, error) {
			return m.refresh(ctx)
		})
		if err != nil {
			return "", err
		}
		return v.(string), nil
	}

	return m.refresh(ctx)
}

// validLocked reports whether the held token exists and has not reached its
// adjusted expiry. Callers must hold mu.
func (m *TokenManager) validLocked() bool {
	return m.accessToken != "" && m.now().Before(m.expiresAt)
}

// tokenResponse is the accounts service's reply to a client credentials
// grant.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// refresh exchanges the client credentials for a fresh access token and
// stores it with its expiry pulled expiryMargin early.
func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.clientID)
	form.Set("client_secret", m.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", networkError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", networkError(err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "token request rejected"
		if readErr == nil && len(body) > 0 {
			message = fmt.Sprintf("token request rejected: %s", strings.TrimSpace(string(body)))
		}
		return "", &Error{
			Kind:       KindTokenAuthentication,
			Message:    message,
			StatusCode: resp.StatusCode,
		}
	}
	if readErr != nil {
		return "", networkError(readErr)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", parseError(err)
	}

	expiresAt := m.now().Add(time.Duration(tr.ExpiresIn)*time.Second - expiryMargin)

	m.mu.Lock()
	m.accessToken = tr.AccessToken
	m.expiresAt = expiresAt
	m.mu.Unlock()

	m.metrics.recordTokenRefresh()

	return tr.AccessToken, nil
}
