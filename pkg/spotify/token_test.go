package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// newTokenServer returns a stub accounts service that counts refreshes and
// hands out a distinct token per refresh.
func newTokenServer(t *testing.T, count *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(count, 1)

		if r.Method != "POST" {
			t.Errorf("expected POST request, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("expected form content type, got %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if grant := r.FormValue("grant_type"); grant != "client_credentials" {
			t.Errorf("expected grant_type client_credentials, got %s", grant)
		}
		if id := r.FormValue("client_id"); id != "test-client-id" {
			t.Errorf("expected client_id test-client-id, got %s", id)
		}
		if secret := r.FormValue("client_secret"); secret != "test-client-secret" {
			t.Errorf("expected client_secret test-client-secret, got %s", secret)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","token_type":"Bearer","expires_in":3600}`, n)
	}))
	t.Cleanup(server.Close)
	return server
}

// TestTokenManager_RefreshAndReuse tests that the first call fetches a
// token, later calls reuse it, and expiry forces a new fetch.
func TestTokenManager_RefreshAndReuse(t *testing.T) {
	var refreshes int32
	server := newTokenServer(t, &refreshes)

	current := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	m := NewTokenManager("test-client-id", "test-client-secret", WithTokenURL(server.URL))
	m.now = func() time.Time { return current }

	ctx := context.Background()

	token, err := m.Token(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token-1" {
		t.Errorf("expected token-1, got %s", token)
	}

	// Still valid, no new refresh.
	token, err = m.Token(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token-1" {
		t.Errorf("expected token-1 again, got %s", token)
	}
	if refreshes != 1 {
		t.Errorf("expected 1 refresh, got %d", refreshes)
	}

	// Past the adjusted expiry a new token is fetched.
	current = current.Add(time.Hour)
	token, err = m.Token(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token-2" {
		t.Errorf("expected token-2 after expiry, got %s", token)
	}
	if refreshes != 2 {
		t.Errorf("expected 2 refreshes, got %d", refreshes)
	}
}

// TestTokenManager_ExpiryMargin tests that tokens are treated as expired
// one minute before their declared lifetime ends.
func TestTokenManager_ExpiryMargin(t *testing.T) {
	var refreshes int32
	server := newTokenServer(t, &refreshes)

	current := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	m := NewTokenManager("test-client-id", "test-client-secret", WithTokenURL(server.URL))
	m.now = func() time.Time { return current }

	ctx := context.Background()
	if _, err := m.Token(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One second inside the margin-adjusted lifetime: still valid.
	current = current.Add(3600*time.Second - expiryMargin - time.Second)
	if _, err := m.Token(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshes != 1 {
		t.Errorf("expected no refresh inside adjusted lifetime, got %d refreshes", refreshes)
	}

	// At the adjusted expiry: refreshed even though the declared hour has
	// a minute left.
	current = current.Add(time.Second)
	if _, err := m.Token(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshes != 2 {
		t.Errorf("expected refresh at adjusted expiry, got %d refreshes", refreshes)
	}
}

// TestTokenManager_AuthenticationError tests that rejections carry the
// response body and status.
func TestTokenManager_AuthenticationError(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		errContains string
	}{
		{
			name:        "invalid credentials with body",
			statusCode:  http.StatusBadRequest,
			body:        `{"error":"invalid_client","error_description":"Invalid client secret"}`,
			errContains: "invalid_client",
		},
		{
			name:        "rejection without body",
			statusCode:  http.StatusUnauthorized,
			body:        "",
			errContains: "token request rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if _, err := w.Write([]byte(tt.body)); err != nil {
					t.Fatalf("failed to write response body: %v", err)
				}
			}))
			defer server.Close()

			m := NewTokenManager("test-client-id", "test-client-secret", WithTokenURL(server.URL))

			_, err := m.Token(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrTokenAuthentication) {
				t.Errorf("expected ErrTokenAuthentication, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error to contain %q, got %v", tt.errContains, err)
			}

			var spotifyErr *Error
			if !errors.As(err, &spotifyErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if spotifyErr.StatusCode != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, spotifyErr.StatusCode)
			}
		})
	}
}

// TestTokenManager_MalformedSuccessBody tests that an OK response with an
// undecodable body is a parse failure.
func TestTokenManager_MalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"access_token":`)); err != nil {
			t.Fatalf("failed to write response body: %v", err)
		}
	}))
	defer server.Close()

	m := NewTokenManager("test-client-id", "test-client-secret", WithTokenURL(server.URL))

	_, err := m.Token(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

// TestTokenManager_NetworkError tests that an unreachable accounts service
// surfaces as a network failure.
func TestTokenManager_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	m := NewTokenManager("test-client-id", "test-client-secret", WithTokenURL(server.URL))

	_, err := m.Token(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}

// TestTokenManager_ConcurrentRefreshes tests that racing callers each get
// a usable token even when their refreshes overlap.
func TestTokenManager_ConcurrentRefreshes(t *testing.T) {
	var refreshes int32
	server := newTokenServer(t, &refreshes)

	m := NewTokenManager("test-client-id", "test-client-secret", WithTokenURL(server.URL))

	var wg sync.WaitGroup
	tokens := make([]string, 10)
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = m.Token(context.Background())
		}(i)
	}
	wg.Wait()

	for i := range tokens {
		if errs[i] != nil {
			t.Fatalf("caller %d: unexpected error: %v", i, errs[i])
		}
		if !strings.HasPrefix(tokens[i], "token-") {
			t.Errorf("caller %d: expected a served token, got %q", i, tokens[i])
		}
	}
	if refreshes < 1 {
		t.Errorf("expected at least 1 refresh, got %d", refreshes)
	}
}

// TestTokenManager_SingleFlight tests that the single-flight option
// collapses concurrent refreshes into one request.
func TestTokenManager_SingleFlight(t *testing.T) {
	var refreshes int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshes, 1)
		time.Sleep(20 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"shared-token","token_type":"Bearer","expires_in":3600}`)
	}))
	defer server.Close()

	m := NewTokenManager("test-client-id", "test-client-secret",
		WithTokenURL(server.URL),
		WithRefreshSingleFlight(),
	)

	var wg sync.WaitGroup
	tokens := make([]string, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := m.Token(context.Background())
			if err != nil {
				t.Errorf("caller %d: unexpected error: %v", i, err)
				return
			}
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	for i, token := range tokens {
		if token != "shared-token" {
			t.Errorf("caller %d: expected shared-token, got %q", i, token)
		}
	}
	if got := atomic.LoadInt32(&refreshes); got != 1 {
		t.Errorf("expected exactly 1 refresh, got %d", got)
	}
}
