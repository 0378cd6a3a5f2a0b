package spotify

import (
	"context"
	"net/http"
	"regexp"
)

// linkPattern matches open.spotify.com entity URLs. Share URLs append
// tracking query parameters after the ID, so the ID match stops at the
// first non-alphanumeric character.
var linkPattern = regexp.MustCompile(`spotify\.com/(playlist|track|album|artist)/([a-zA-Z0-9]+)`)

// ParseLink extracts the entity kind and ID from a Spotify URL. It
// understands playlist, track, album, and artist links. The reported kind
// matches the path segment, for example "track".
func ParseLink(link string) (kind, id string, ok bool) {
	m := linkPattern.FindStringSubmatch(link)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ResolveShareURL follows redirects from a spotify.link share URL to the
// underlying open.spotify.com URL and returns it. The mobile apps hand
// out these shortened URLs, which carry no entity information themselves.
//
// The returned URL still needs ParseLink; resolution and parsing are
// separate because a short link can redirect to a URL this package does
// not recognize.
func ResolveShareURL(ctx context.Context, httpClient *http.Client, shareURL string) (string, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shareURL, nil)
	if err != nil {
		return "", invalidInput("invalid share URL %q: %v", shareURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", networkError(err)
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}
