package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

// TestRecommendationsService_Get_SeedBounds tests the combined seed count
// limits.
func TestRecommendationsService_Get_SeedBounds(t *testing.T) {
	tests := []struct {
		name        string
		req         *RecommendationsRequest
		errContains string
	}{
		{
			name:        "nil request",
			req:         nil,
			errContains: "request is required",
		},
		{
			name:        "no seeds",
			req:         &RecommendationsRequest{Limit: 10},
			errContains: "at least one seed",
		},
		{
			name: "six seeds across lists",
			req: &RecommendationsRequest{
				SeedArtists: []string{"a1", "a2"},
				SeedGenres:  []string{"g1", "g2"},
				SeedTracks:  []string{"t1", "t2"},
			},
			errContains: "at most 5 seeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, Config{})

			_, err := env.client.Recommendations().Get(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error to contain %q, got %v", tt.errContains, err)
			}
			if env.authCalls != 0 || env.catalogCalls != 0 {
				t.Errorf("expected no requests, got %d auth and %d catalog", env.authCalls, env.catalogCalls)
			}
		})
	}
}

// TestRecommendationsService_Get tests the query construction and response
// decoding of a recommendation lookup.
func TestRecommendationsService_Get(t *testing.T) {
	env := newTestEnv(t, Config{})
	env.mux.HandleFunc("/recommendations", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("seed_artists"); got != "artist-1" {
			t.Errorf("expected seed_artists artist-1, got %q", got)
		}
		if got := q.Get("seed_genres"); got != "ambient,chill" {
			t.Errorf("expected seed_genres ambient,chill, got %q", got)
		}
		if got := q.Get("limit"); got != "10" {
			t.Errorf("expected limit 10, got %q", got)
		}
		if got := q.Get("market"); got != "DE" {
			t.Errorf("expected market DE, got %q", got)
		}
		if got := q.Get("min_energy"); got != "0.3" {
			t.Errorf("expected min_energy 0.3, got %q", got)
		}
		if got := q.Get("target_tempo"); got != "120" {
			t.Errorf("expected target_tempo 120, got %q", got)
		}
		if got := q.Get("max_duration_ms"); got != "300000" {
			t.Errorf("expected max_duration_ms 300000, got %q", got)
		}
		if q.Has("min_valence") {
			t.Errorf("expected min_valence to be omitted, got %q", q.Get("min_valence"))
		}

		fmt.Fprint(w, `{
			"seeds": [{"id": "artist-1", "type": "ARTIST", "initialPoolSize": 500, "afterFilteringSize": 380, "afterRelinkingSize": 365}],
			"tracks": [{"id": "track-1", "name": "Weightless"}]
		}`)
	})

	minEnergy := 0.3
	targetTempo := 120.0
	maxDuration := 300000

	recs, err := env.client.Recommendations().Get(context.Background(), &RecommendationsRequest{
		SeedArtists:   []string{"artist-1"},
		SeedGenres:    []string{"ambient", "chill"},
		Limit:         10,
		Market:        "DE",
		MinEnergy:     &minEnergy,
		TargetTempo:   &targetTempo,
		MaxDurationMS: &maxDuration,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recs.Tracks) != 1 || recs.Tracks[0].Name != "Weightless" {
		t.Errorf("unexpected tracks: %+v", recs.Tracks)
	}
	if len(recs.Seeds) != 1 {
		t.Fatalf("expected 1 seed, got %d", len(recs.Seeds))
	}
	if recs.Seeds[0].AfterFilteringSize != 380 {
		t.Errorf("expected afterFilteringSize 380, got %d", recs.Seeds[0].AfterFilteringSize)
	}
}

// TestRecommendationsRequest_Values tests attribute encoding directly.
func TestRecommendationsRequest_Values(t *testing.T) {
	acousticness := 0.35
	loudness := -14.5
	key := 7
	popularity := 100

	req := &RecommendationsRequest{
		SeedTracks:       []string{"t1", "t2"},
		MinAcousticness:  &acousticness,
		TargetLoudness:   &loudness,
		MaxKey:           &key,
		TargetPopularity: &popularity,
	}

	q := req.values()

	if got := q.Get("seed_tracks"); got != "t1,t2" {
		t.Errorf("expected seed_tracks t1,t2, got %q", got)
	}
	if got := q.Get("min_acousticness"); got != "0.35" {
		t.Errorf("expected min_acousticness 0.35, got %q", got)
	}
	if got := q.Get("target_loudness"); got != "-14.5" {
		t.Errorf("expected target_loudness -14.5, got %q", got)
	}
	if got := q.Get("max_key"); got != "7" {
		t.Errorf("expected max_key 7, got %q", got)
	}
	if got := q.Get("target_popularity"); got != "100" {
		t.Errorf("expected target_popularity 100, got %q", got)
	}
	if q.Has("limit") {
		t.Errorf("expected limit omitted when zero, got %q", q.Get("limit"))
	}
	if q.Has("min_tempo") {
		t.Errorf("expected unset attributes omitted, got min_tempo %q", q.Get("min_tempo"))
	}
}

// TestRecommendationsService_GetGenreSeeds tests the genre seed listing.
func TestRecommendationsService_GetGenreSeeds(t *testing.T) {
	env := newTestEnv(t, Config{})
	env.handle("/recommendations/available-genre-seeds", `{"genres": ["acoustic", "ambient", "blues"]}`)

	genres, err := env.client.Recommendations().GetGenreSeeds(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(genres) != 3 || genres[1] != "ambient" {
		t.Errorf("unexpected genres: %+v", genres)
	}
}
