package spotify

import (
	"context"
	"strings"
)

// ArtistsService provides artist lookups from the Spotify catalog.
type ArtistsService struct {
	client *Client
}

const (
	// MaxSeveralArtists is the maximum number of artist IDs accepted by a
	// single GetSeveral call.
	MaxSeveralArtists = 50
)

// Get fetches a single artist by its Spotify ID.
//
// Example:
//
//	artist, err := client.Artists().Get(ctx, "0TnOYISbd1XYRBk9myaseg")
//	if err != nil {
//	    log.Fatalf("Failed to get artist: %v", err)
//	}
//	fmt.Printf("%s (%d followers)\n", artist.Name, artist.Followers.Total)
func (s *ArtistsService) Get(ctx context.Context, id string) (*Artist, error) {
	if id == "" {
		return nil, invalidInput("artist id is required")
	}

	var artist Artist
	if err := s.client.Get(ctx, "/artists/"+id, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetSeveral fetches up to MaxSeveralArtists artists in a single batched
// request. IDs already cached are served locally and only the remainder
// is fetched; cached artists are returned first, followed by fetched ones.
func (s *ArtistsService) GetSeveral(ctx context.Context, ids []string) ([]Artist, error) {
	if len(ids) == 0 {
		return nil, invalidInput("at least one artist id is required")
	}
	if len(ids) > MaxSeveralArtists {
		return nil, invalidInput("at most %d artist ids may be requested at once, got %d", MaxSeveralArtists, len(ids))
	}

	return fetchSeveral(ctx, s.client, ids,
		func(id string) string { return "/artists/" + id },
		func(ctx context.Context, missing []string) ([]Artist, error) {
			var batch Artists
			if err := s.client.fetch(ctx, "/artists?ids="+strings.Join(missing, ","), &batch); err != nil {
				return nil, err
			}
			return batch.Artists, nil
		},
		func(artist Artist) string { return artist.ID },
	)
}

// GetAlbums fetches one page of an artist's albums, singles, and
// compilations.
func (s *ArtistsService) GetAlbums(ctx context.Context, id string) (*Page[SimplifiedAlbum], error) {
	if id == "" {
		return nil, invalidInput("artist id is required")
	}

	var page Page[SimplifiedAlbum]
	if err := s.client.Get(ctx, "/artists/"+id+"/albums", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTopTracks fetches an artist's most popular tracks. The Web API
// requires a market for this endpoint; when market is empty the API's
// default applies.
func (s *ArtistsService) GetTopTracks(ctx context.Context, id, market string) ([]Track, error) {
	if id == "" {
		return nil, invalidInput("artist id is required")
	}

	path := "/artists/" + id + "/top-tracks"
	if market != "" {
		path += "?market=" + market
	}

	var tracks Tracks
	if err := s.client.Get(ctx, path, &tracks); err != nil {
		return nil, err
	}
	return tracks.Tracks, nil
}

// GetRelated fetches artists similar to the given artist.
func (s *ArtistsService) GetRelated(ctx context.Context, id string) ([]Artist, error) {
	if id == "" {
		return nil, invalidInput("artist id is required")
	}

	var artists Artists
	if err := s.client.Get(ctx, "/artists/"+id+"/related-artists", &artists); err != nil {
		return nil, err
	}
	return artists.Artists, nil
}
