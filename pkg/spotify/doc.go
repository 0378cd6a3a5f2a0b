// Package spotify provides a client library for the Spotify Web API.
//
// # Overview
//
// This package implements a Go client for the catalog side of the Web API:
// albums, artists, tracks, playlists, new releases, and recommendations.
// Authentication against the accounts service and response caching are
// handled inside the client, so callers work only with catalog lookups.
//
// # Installation
//
//	go get github.com/blu3eee/gospoty/pkg/spotify
//
// # Quick Start
//
// First, create a client with your application credentials:
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
// Then fetch catalog entities through the service accessors:
//
//	track, err := client.Tracks().Get(ctx, "11dFghVXANMlKmJXsNCbNl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s - %s\n", track.Artists[0].Name, track.Name)
//
// # Authentication
//
// The client uses the client credentials grant. Tokens are fetched from
// the accounts service on first use, reused while valid, and refreshed a
// minute before their declared expiry. Callers never handle tokens
// directly.
//
// For user-scoped access, Authenticator runs the authorization code flow
// with PKCE:
//
//	auth, err := spotify.NewAuthenticator(clientID, redirectURI, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Please visit:", auth.URL())
//	// ... user approves, redirect delivers ?code=...
//	token, err := auth.Exchange(ctx, code)
//
// # Caching
//
// Successful responses are cached in memory by request path and query for
// a configurable TTL (default ten minutes). Repeated lookups inside the
// TTL return the cached response without touching the network or the
// token. Batched lookups check the cache per ID and fetch only the
// missing ones:
//
//	// One network call for the three tracks.
//	tracks, err := client.Tracks().GetSeveral(ctx, ids, "")
//
//	// Served entirely from cache, no token or network activity.
//	tracks, err = client.Tracks().GetSeveral(ctx, ids, "")
//
// # Error Handling
//
// All failures are *Error values classified by kind, matchable with
// errors.Is against the exported sentinels:
//
//	_, err := client.Albums().Get(ctx, id)
//	if errors.Is(err, spotify.ErrRateLimited) {
//	    wait, _ := spotify.RetryAfter(err)
//	    time.Sleep(wait)
//	}
//
// The client never retries on its own; rate limits and transient network
// failures are reported to the caller with enough information to retry.
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and timeouts:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	album, err := client.Albums().Get(ctx, id)
//
// # Configuration
//
// The client can be configured with custom HTTP clients, base URLs (for
// testing), cache TTL, structured logging, and Prometheus metrics:
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	    HTTPClient:   &http.Client{Timeout: 30 * time.Second},
//	    CacheTTL:     5 * time.Minute,
//	    Logger:       myLogger, // Implements spotify.Logger interface
//	    Metrics:      spotify.NewMetrics(),
//	})
//
// # API Coverage
//
// Currently implemented:
//   - Albums (single, batched, tracks, new releases)
//   - Artists (single, batched, albums, top tracks, related artists)
//   - Tracks (single, batched with market relinking)
//   - Playlists (single)
//   - Recommendations (seeded, tunable attributes, genre seeds)
//   - Authorization code flow with PKCE for user tokens
//
// # Spotify Web API Documentation
//
// For more information about the Web API:
// https://developer.spotify.com/documentation/web-api
package spotify
