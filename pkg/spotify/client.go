// Package spotify provides a client for the Spotify Web API.
//
// This package implements the client credentials flow, an in-memory
// response cache, and typed access to the track, album, artist, playlist,
// and recommendation catalogs. It is designed to be used as a standalone
// SDK.
//
// Example usage:
//
//	import "github.com/blu3eee/gospoty/pkg/spotify"
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	track, err := client.Tracks().Get(ctx, "11dFghVXANMlKmJXsNCbNl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(track.Name)
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Config holds client configuration.
type Config struct {
	ClientID     string        // Required: Spotify application client ID
	ClientSecret string        // Required: Spotify application client secret
	HTTPClient   *http.Client  // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL      string        // Optional: Base URL for the Web API (defaults to api.spotify.com, used for testing)
	AccountsURL  string        // Optional: Base URL for the accounts service (defaults to accounts.spotify.com, used for testing)
	CacheTTL     time.Duration // Optional: How long responses stay cached (defaults to DefaultCacheTTL)
	DisableCache bool          // Optional: Skip response caching entirely
	Logger       Logger        // Optional: Logger interface for debug logging
	Metrics      *Metrics      // Optional: Prometheus metrics collector
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Spotify Web API operations.
//
// Catalog reads go through a shared response cache and a client
// credentials token manager. A Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *Cache[json.RawMessage]
	tokens     *TokenManager
	logger     Logger
	metrics    *Metrics

	// tokenMu is held across the full TokenManager.Token call, trading
	// throughput on token checks for never issuing duplicate refresh
	// requests. See the TokenManager docs for the single-flight
	// alternative.
	tokenMu sync.Mutex

	albums          *AlbumsService
	artists         *ArtistsService
	tracks          *TracksService
	playlists       *PlaylistsService
	recommendations *RecommendationsService
}

const (
	// DefaultBaseURL is the default Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com/v1"

	// DefaultAccountsURL is the default Spotify accounts service endpoint.
	DefaultAccountsURL = "https://accounts.spotify.com"

	// DefaultCacheTTL is how long responses stay cached unless
	// Config.CacheTTL overrides it.
	DefaultCacheTTL = 10 * time.Minute
)

// NewClient creates a new Spotify Web API client.
//
// Returns an error if required configuration (ClientID, ClientSecret) is
// missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("spotify: ClientID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("spotify: ClientSecret is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	accountsURL := cfg.AccountsURL
	if accountsURL == "" {
		accountsURL = DefaultAccountsURL
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}

	if !cfg.DisableCache {
		c.cache = NewCache[json.RawMessage](cfg.CacheTTL)
	}

	c.tokens = NewTokenManager(cfg.ClientID, cfg.ClientSecret,
		WithTokenHTTPClient(httpClient),
		WithTokenURL(accountsURL+"/api/token"),
		withTokenMetrics(cfg.Metrics),
	)

	c.albums = &AlbumsService{client: c}
	c.artists = &ArtistsService{client: c}
	c.tracks = &TracksService{client: c}
	c.playlists = &PlaylistsService{client: c}
	c.recommendations = &RecommendationsService{client: c}

	return c, nil
}

// Albums returns the album catalog service.
func (c *Client) Albums() *AlbumsService {
	return c.albums
}

// Artists returns the artist catalog service.
func (c *Client) Artists() *ArtistsService {
	return c.artists
}

// Tracks returns the track catalog service.
func (c *Client) Tracks() *TracksService {
	return c.tracks
}

// Playlists returns the playlist service.
func (c *Client) Playlists() *PlaylistsService {
	return c.playlists
}

// Recommendations returns the recommendation service.
func (c *Client) Recommendations() *RecommendationsService {
	return c.recommendations
}

// token returns a valid access token, serializing all lookups behind one
// lock so concurrent callers never race an expired-token refresh.
func (c *Client) token(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	return c.tokens.Token(ctx)
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
