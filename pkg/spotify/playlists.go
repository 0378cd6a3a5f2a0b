package spotify

import "context"

// PlaylistsService provides playlist lookups from the Spotify catalog.
type PlaylistsService struct {
	client *Client
}

// Get fetches a playlist by its Spotify ID, including the first page of
// its tracks.
func (s *PlaylistsService) Get(ctx context.Context, id string) (*Playlist, error) {
	if id == "" {
		return nil, invalidInput("playlist id is required")
	}

	var playlist Playlist
	if err := s.client.Get(ctx, "/playlists/"+id, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}
