package spotify

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// AlbumsService provides album lookups from the Spotify catalog.
type AlbumsService struct {
	client *Client
}

const (
	// MaxSeveralAlbums is the maximum number of album IDs accepted by a
	// single GetSeveral call.
	MaxSeveralAlbums = 20

	// DefaultPageLimit is the page size used when a listing call is given
	// a limit of zero.
	DefaultPageLimit = 20

	// MaxPageLimit is the largest page size the Web API accepts.
	MaxPageLimit = 50
)

// Get fetches a single album by its Spotify ID, including the first page
// of its tracks.
//
// Example:
//
//	album, err := client.Albums().Get(ctx, "4aawyAB9vmqN3uQ7FjRGTy")
//	if err != nil {
//	    log.Fatalf("Failed to get album: %v", err)
//	}
//	fmt.Printf("%s (%d tracks)\n", album.Name, album.TotalTracks)
func (s *AlbumsService) Get(ctx context.Context, id string) (*Album, error) {
	if id == "" {
		return nil, invalidInput("album id is required")
	}

	var album Album
	if err := s.client.Get(ctx, "/albums/"+id, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// GetSeveral fetches up to MaxSeveralAlbums albums in a single batched
// request. IDs already cached are served locally and only the remainder
// is fetched; cached albums are returned first, followed by fetched ones.
//
// Example:
//
//	albums, err := client.Albums().GetSeveral(ctx, []string{
//	    "4aawyAB9vmqN3uQ7FjRGTy",
//	    "1A2GTWGtFfWp7KSQTwWOyo",
//	})
//	if err != nil {
//	    log.Fatalf("Failed to get albums: %v", err)
//	}
func (s *AlbumsService) GetSeveral(ctx context.Context, ids []string) ([]Album, error) {
	if len(ids) == 0 {
		return nil, invalidInput("at least one album id is required")
	}
	if len(ids) > MaxSeveralAlbums {
		return nil, invalidInput("at most %d album ids may be requested at once, got %d", MaxSeveralAlbums, len(ids))
	}

	return fetchSeveral(ctx, s.client, ids,
		func(id string) string { return "/albums/" + id },
		func(ctx context.Context, missing []string) ([]Album, error) {
			var batch Albums
			if err := s.client.fetch(ctx, "/albums?ids="+strings.Join(missing, ","), &batch); err != nil {
				return nil, err
			}
			return batch.Albums, nil
		},
		func(album Album) string { return album.ID },
	)
}

// GetTracks fetches one page of an album's tracks.
func (s *AlbumsService) GetTracks(ctx context.Context, id string) (*Page[SimplifiedTrack], error) {
	if id == "" {
		return nil, invalidInput("album id is required")
	}

	var page Page[SimplifiedTrack]
	if err := s.client.Get(ctx, "/albums/"+id+"/tracks", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetNewReleases fetches a page of recently released albums. A limit of
// zero selects DefaultPageLimit; out-of-range limits and negative offsets
// are clamped rather than rejected.
func (s *AlbumsService) GetNewReleases(ctx context.Context, limit, offset int) (*NewReleases, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(clampLimit(limit)))
	q.Set("offset", strconv.Itoa(max(offset, 0)))

	var releases NewReleases
	if err := s.client.Get(ctx, "/browse/new-releases?"+q.Encode(), &releases); err != nil {
		return nil, err
	}
	return &releases, nil
}

func clampLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultPageLimit
	case limit < 1:
		return 1
	case limit > MaxPageLimit:
		return MaxPageLimit
	default:
		return limit
	}
}
