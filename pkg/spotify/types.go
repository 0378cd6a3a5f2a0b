package spotify

// Image is artwork at one resolution. Height and Width are null for some
// catalog entries.
type Image struct {
	URL    string `json:"url"`
	Height *int   `json:"height"`
	Width  *int   `json:"width"`
}

// Followers is a follower count. Href is always null in the current API.
type Followers struct {
	Href  *string `json:"href"`
	Total int     `json:"total"`
}

// ExternalURLs holds known external links for an entity.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// ExternalIDs holds known external identifiers for a track.
type ExternalIDs struct {
	ISRC string `json:"isrc,omitempty"`
	EAN  string `json:"ean,omitempty"`
	UPC  string `json:"upc,omitempty"`
}

// Copyright is one copyright statement for an album. Type is "C" for the
// copyright and "P" for the sound recording (performance) copyright.
type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Page is one page of a paged collection.
type Page[T any] struct {
	Href     string  `json:"href"`
	Items    []T     `json:"items"`
	Limit    int     `json:"limit"`
	Next     *string `json:"next"`
	Offset   int     `json:"offset"`
	Previous *string `json:"previous"`
	Total    int     `json:"total"`
}

// Artist is a full artist object.
type Artist struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Followers    Followers    `json:"followers"`
	Genres       []string     `json:"genres"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Images       []Image      `json:"images"`
	Name         string       `json:"name"`
	Popularity   int          `json:"popularity"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// SimplifiedArtist is the artist reference embedded in albums and tracks.
type SimplifiedArtist struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// Album is a full album object, including the first page of its tracks.
type Album struct {
	AlbumType            string                `json:"album_type"`
	TotalTracks          int                   `json:"total_tracks"`
	AvailableMarkets     []string              `json:"available_markets"`
	ExternalURLs         ExternalURLs          `json:"external_urls"`
	Href                 string                `json:"href"`
	ID                   string                `json:"id"`
	Images               []Image               `json:"images"`
	Name                 string                `json:"name"`
	ReleaseDate          string                `json:"release_date"`
	ReleaseDatePrecision string                `json:"release_date_precision"`
	Type                 string                `json:"type"`
	URI                  string                `json:"uri"`
	Artists              []SimplifiedArtist    `json:"artists"`
	Tracks               Page[SimplifiedTrack] `json:"tracks"`
	Copyrights           []Copyright           `json:"copyrights"`
	Genres               []string              `json:"genres"`
	Label                string                `json:"label"`
	Popularity           int                   `json:"popularity"`
}

// SimplifiedAlbum is the album shape returned by listings and embedded in
// tracks. AlbumGroup is only present on artist album listings.
type SimplifiedAlbum struct {
	AlbumType            string             `json:"album_type"`
	TotalTracks          int                `json:"total_tracks"`
	AvailableMarkets     []string           `json:"available_markets"`
	ExternalURLs         ExternalURLs       `json:"external_urls"`
	Href                 string             `json:"href"`
	ID                   string             `json:"id"`
	Images               []Image            `json:"images"`
	Name                 string             `json:"name"`
	ReleaseDate          string             `json:"release_date"`
	ReleaseDatePrecision string             `json:"release_date_precision"`
	Type                 string             `json:"type"`
	URI                  string             `json:"uri"`
	Artists              []SimplifiedArtist `json:"artists"`
	AlbumGroup           string             `json:"album_group,omitempty"`
}

// Track is a full track object.
type Track struct {
	Album            SimplifiedAlbum    `json:"album"`
	Artists          []SimplifiedArtist `json:"artists"`
	AvailableMarkets []string           `json:"available_markets"`
	DiscNumber       int                `json:"disc_number"`
	DurationMS       int                `json:"duration_ms"`
	Explicit         bool               `json:"explicit"`
	ExternalIDs      ExternalIDs        `json:"external_ids"`
	ExternalURLs     ExternalURLs       `json:"external_urls"`
	Href             string             `json:"href"`
	ID               string             `json:"id"`
	IsPlayable       *bool              `json:"is_playable,omitempty"`
	Name             string             `json:"name"`
	Popularity       int                `json:"popularity"`
	PreviewURL       *string            `json:"preview_url"`
	TrackNumber      int                `json:"track_number"`
	Type             string             `json:"type"`
	URI              string             `json:"uri"`
	IsLocal          bool               `json:"is_local"`
}

// SimplifiedTrack is the track shape embedded in album listings.
type SimplifiedTrack struct {
	Artists          []SimplifiedArtist `json:"artists"`
	AvailableMarkets []string           `json:"available_markets"`
	DiscNumber       int                `json:"disc_number"`
	DurationMS       int                `json:"duration_ms"`
	Explicit         bool               `json:"explicit"`
	ExternalURLs     ExternalURLs       `json:"external_urls"`
	Href             string             `json:"href"`
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	PreviewURL       *string            `json:"preview_url"`
	TrackNumber      int                `json:"track_number"`
	Type             string             `json:"type"`
	URI              string             `json:"uri"`
	IsLocal          bool               `json:"is_local"`
}

// Albums wraps the batched albums response.
type Albums struct {
	Albums []Album `json:"albums"`
}

// Artists wraps the batched artists response.
type Artists struct {
	Artists []Artist `json:"artists"`
}

// Tracks wraps the batched tracks response.
type Tracks struct {
	Tracks []Track `json:"tracks"`
}

// NewReleases is the browse listing of recently released albums.
type NewReleases struct {
	Albums Page[SimplifiedAlbum] `json:"albums"`
}

// User is the public profile of a playlist owner.
type User struct {
	DisplayName  *string      `json:"display_name"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Followers    *Followers   `json:"followers,omitempty"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// PlaylistItem is one playlist entry, a track plus its added-at metadata.
type PlaylistItem struct {
	AddedAt string `json:"added_at"`
	AddedBy *User  `json:"added_by"`
	IsLocal bool   `json:"is_local"`
	Track   Track  `json:"track"`
}

// Playlist is a full playlist object.
type Playlist struct {
	Collaborative bool               `json:"collaborative"`
	Description   *string            `json:"description"`
	ExternalURLs  ExternalURLs       `json:"external_urls"`
	Followers     Followers          `json:"followers"`
	Href          string             `json:"href"`
	ID            string             `json:"id"`
	Images        []Image            `json:"images"`
	Name          string             `json:"name"`
	Owner         User               `json:"owner"`
	Public        *bool              `json:"public"`
	SnapshotID    string             `json:"snapshot_id"`
	Tracks        Page[PlaylistItem] `json:"tracks"`
	Type          string             `json:"type"`
	URI           string             `json:"uri"`
}

// GenreSeeds lists the genres accepted as recommendation seeds.
type GenreSeeds struct {
	Genres []string `json:"genres"`
}

// RecommendationSeed echoes one seed the recommendation engine used,
// with the pool sizes remaining after each filtering step.
type RecommendationSeed struct {
	AfterFilteringSize int    `json:"afterFilteringSize"`
	AfterRelinkingSize int    `json:"afterRelinkingSize"`
	Href               string `json:"href"`
	ID                 string `json:"id"`
	InitialPoolSize    int    `json:"initialPoolSize"`
	Type               string `json:"type"`
}

// Recommendations is the recommendation engine's response.
type Recommendations struct {
	Seeds  []RecommendationSeed `json:"seeds"`
	Tracks []Track              `json:"tracks"`
}
