package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestParseLink tests entity extraction from the URL shapes users paste.
func TestParseLink(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		wantKind string
		wantID   string
		wantOK   bool
	}{
		{
			name:     "track with tracking query",
			link:     "https://open.spotify.com/track/11dFghVXANMlKmJXsNCbNl?si=abc123def",
			wantKind: "track",
			wantID:   "11dFghVXANMlKmJXsNCbNl",
			wantOK:   true,
		},
		{
			name:     "playlist",
			link:     "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M",
			wantKind: "playlist",
			wantID:   "37i9dQZF1DXcBWIGoYBM5M",
			wantOK:   true,
		},
		{
			name:     "album",
			link:     "https://open.spotify.com/album/4aawyAB9vmqN3uQ7FjRGTy",
			wantKind: "album",
			wantID:   "4aawyAB9vmqN3uQ7FjRGTy",
			wantOK:   true,
		},
		{
			name:     "artist",
			link:     "https://open.spotify.com/artist/0TnOYISbd1XYRBk9myaseg",
			wantKind: "artist",
			wantID:   "0TnOYISbd1XYRBk9myaseg",
			wantOK:   true,
		},
		{
			name:   "unresolved share link",
			link:   "https://spotify.link/AbCdEfG",
			wantOK: false,
		},
		{
			name:   "unsupported entity",
			link:   "https://open.spotify.com/episode/0Q86acNRm6V9GYx55SXKwf",
			wantOK: false,
		},
		{
			name:   "not a spotify URL",
			link:   "https://example.com/track/xyz",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, id, ok := ParseLink(tt.link)

			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !tt.wantOK {
				return
			}
			if kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, kind)
			}
			if id != tt.wantID {
				t.Errorf("expected id %s, got %s", tt.wantID, id)
			}
		})
	}
}

// TestResolveShareURL tests that redirects are followed to the final URL.
func TestResolveShareURL(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/s/short", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/hop", http.StatusFound)
	})
	mux.HandleFunc("/hop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/track/11dFghVXANMlKmJXsNCbNl", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/track/11dFghVXANMlKmJXsNCbNl", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})

	resolved, err := ResolveShareURL(context.Background(), server.Client(), server.URL+"/s/short")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := server.URL + "/track/11dFghVXANMlKmJXsNCbNl"
	if resolved != want {
		t.Errorf("expected %s, got %s", want, resolved)
	}
}

// TestResolveShareURL_NetworkError tests the failure mode for an
// unreachable link host.
func TestResolveShareURL_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := ResolveShareURL(context.Background(), nil, server.URL+"/s/short")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
