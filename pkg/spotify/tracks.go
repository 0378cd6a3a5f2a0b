package spotify

import (
	"context"
	"strings"
)

// TracksService provides track lookups from the Spotify catalog.
type TracksService struct {
	client *Client
}

const (
	// MaxSeveralTracks is the maximum number of track IDs accepted by a
	// single GetSeveral call.
	MaxSeveralTracks = 50
)

// Get fetches a single track by its Spotify ID.
//
// Example:
//
//	track, err := client.Tracks().Get(ctx, "11dFghVXANMlKmJXsNCbNl")
//	if err != nil {
//	    log.Fatalf("Failed to get track: %v", err)
//	}
//	fmt.Printf("%s - %s\n", track.Artists[0].Name, track.Name)
func (s *TracksService) Get(ctx context.Context, id string) (*Track, error) {
	if id == "" {
		return nil, invalidInput("track id is required")
	}

	var track Track
	if err := s.client.Get(ctx, "/tracks/"+id, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// GetSeveral fetches up to MaxSeveralTracks tracks in a single batched
// request. An optional market relinks tracks to the playable entry for
// that country; it becomes part of the cache identity, so lookups for
// different markets never serve each other's entries. IDs already cached
// are served locally and only the remainder is fetched; cached tracks are
// returned first, followed by fetched ones.
func (s *TracksService) GetSeveral(ctx context.Context, ids []string, market string) ([]Track, error) {
	if len(ids) == 0 {
		return nil, invalidInput("at least one track id is required")
	}
	if len(ids) > MaxSeveralTracks {
		return nil, invalidInput("at most %d track ids may be requested at once, got %d", MaxSeveralTracks, len(ids))
	}

	keyFor := func(id string) string {
		if market == "" {
			return "/tracks/" + id
		}
		return "/tracks/" + id + "?market=" + market
	}

	return fetchSeveral(ctx, s.client, ids, keyFor,
		func(ctx context.Context, missing []string) ([]Track, error) {
			path := "/tracks?ids=" + strings.Join(missing, ",")
			if market != "" {
				path += "&market=" + market
			}
			var batch Tracks
			if err := s.client.fetch(ctx, path, &batch); err != nil {
				return nil, err
			}
			return batch.Tracks, nil
		},
		func(track Track) string { return track.ID },
	)
}
