package spotify

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	verifierLength   = 128
	verifierAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Authenticator runs the authorization code flow with PKCE, the flow for
// obtaining a token that acts on behalf of a user rather than of the
// application. It generates one code verifier per instance, so the URL
// and Exchange calls of a single login attempt must share the same
// Authenticator.
//
// The catalog Client does not use user tokens; this flow exists for
// callers that need user-scoped endpoints.
type Authenticator struct {
	clientID    string
	redirectURI string
	scope       string
	verifier    string
	httpClient  *http.Client
	accountsURL string
}

// AuthOption configures an Authenticator.
type AuthOption func(*Authenticator)

// WithAuthHTTPClient sets the HTTP client used for the code exchange.
func WithAuthHTTPClient(httpClient *http.Client) AuthOption {
	return func(a *Authenticator) {
		if httpClient != nil {
			a.httpClient = httpClient
		}
	}
}

// WithAccountsURL overrides the accounts service base URL, primarily for
// testing.
func WithAccountsURL(accountsURL string) AuthOption {
	return func(a *Authenticator) {
		if accountsURL != "" {
			a.accountsURL = strings.TrimSuffix(accountsURL, "/")
		}
	}
}

// NewAuthenticator creates an authenticator for the given application.
// The redirect URI must exactly match one registered for the application.
// Scopes may be empty for flows that only need the user's identity.
func NewAuthenticator(clientID, redirectURI string, scopes []string, opts ...AuthOption) (*Authenticator, error) {
	if clientID == "" {
		return nil, fmt.Errorf("spotify: client id is required")
	}
	if redirectURI == "" {
		return nil, fmt.Errorf("spotify: redirect URI is required")
	}

	verifier, err := randomVerifier()
	if err != nil {
		return nil, err
	}

	a := &Authenticator{
		clientID:    clientID,
		redirectURI: redirectURI,
		scope:       strings.Join(scopes, " "),
		verifier:    verifier,
		httpClient:  http.DefaultClient,
		accountsURL: DefaultAccountsURL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// randomVerifier draws a PKCE code verifier from crypto/rand.
func randomVerifier() (string, error) {
	buf := make([]byte, verifierLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("spotify: failed to generate code verifier: %w", err)
	}
	for i, b := range buf {
		buf[i] = verifierAlphabet[int(b)%len(verifierAlphabet)]
	}
	return string(buf), nil
}

// challenge derives the S256 code challenge from the verifier.
func (a *Authenticator) challenge() string {
	sum := sha256.Sum256([]byte(a.verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// URL returns the authorization URL to open in the user's browser. After
// the user approves access, the accounts service redirects to the
// configured redirect URI with a code query parameter to pass to Exchange.
func (a *Authenticator) URL() string {
	q := url.Values{}
	q.Set("client_id", a.clientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", a.redirectURI)
	if a.scope != "" {
		q.Set("scope", a.scope)
	}
	q.Set("code_challenge_method", "S256")
	q.Set("code_challenge", a.challenge())
	return a.accountsURL + "/authorize?" + q.Encode()
}

// UserToken is a user-scoped access token obtained through the
// authorization code flow.
type UserToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// Exchange redeems the authorization code for a user token, proving
// possession of the code verifier generated for URL.
func (a *Authenticator) Exchange(ctx context.Context, code string) (*UserToken, error) {
	if code == "" {
		return nil, invalidInput("authorization code is required")
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", a.redirectURI)
	form.Set("client_id", a.clientID)
	form.Set("code_verifier", a.verifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.accountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, networkError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "code exchange rejected"
		if readErr == nil && len(body) > 0 {
			message = fmt.Sprintf("code exchange rejected: %s", strings.TrimSpace(string(body)))
		}
		return nil, &Error{
			Kind:       KindTokenAuthentication,
			Message:    message,
			StatusCode: resp.StatusCode,
		}
	}
	if readErr != nil {
		return nil, networkError(readErr)
	}

	var token UserToken
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, parseError(err)
	}
	return &token, nil
}
