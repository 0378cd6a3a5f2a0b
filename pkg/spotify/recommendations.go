package spotify

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// RecommendationsService provides track recommendations from Spotify's
// recommendation engine.
type RecommendationsService struct {
	client *Client
}

const (
	// MaxRecommendationSeeds is the maximum number of seeds accepted
	// across artists, genres, and tracks combined.
	MaxRecommendationSeeds = 5
)

// RecommendationsRequest describes a recommendation query. Between one
// and MaxRecommendationSeeds seeds are required across the three seed
// lists combined. Every tunable attribute is optional; nil fields are
// omitted from the query.
type RecommendationsRequest struct {
	// Required: between one and five seeds across the three lists.
	SeedArtists []string
	SeedGenres  []string
	SeedTracks  []string

	// Optional: number of tracks to return. Zero selects the API default
	// of 20.
	Limit int

	// Optional: ISO 3166-1 alpha-2 country code for track relinking.
	Market string

	// Min and Max bound the candidate pool, Target biases ranking toward
	// the given value. Acousticness through Valence range 0.0 to 1.0,
	// Loudness is in dB, Tempo in BPM, Key uses pitch class notation
	// (0 to 11), Mode is 0 (minor) or 1 (major), Popularity 0 to 100.
	MinAcousticness    *float64
	MaxAcousticness    *float64
	TargetAcousticness *float64

	MinDanceability    *float64
	MaxDanceability    *float64
	TargetDanceability *float64

	MinDurationMS    *int
	MaxDurationMS    *int
	TargetDurationMS *int

	MinEnergy    *float64
	MaxEnergy    *float64
	TargetEnergy *float64

	MinInstrumentalness    *float64
	MaxInstrumentalness    *float64
	TargetInstrumentalness *float64

	MinKey    *int
	MaxKey    *int
	TargetKey *int

	MinLiveness    *float64
	MaxLiveness    *float64
	TargetLiveness *float64

	MinLoudness    *float64
	MaxLoudness    *float64
	TargetLoudness *float64

	MinMode    *int
	MaxMode    *int
	TargetMode *int

	MinPopularity    *int
	MaxPopularity    *int
	TargetPopularity *int

	MinSpeechiness    *float64
	MaxSpeechiness    *float64
	TargetSpeechiness *float64

	MinTempo    *float64
	MaxTempo    *float64
	TargetTempo *float64

	MinTimeSignature    *int
	MaxTimeSignature    *int
	TargetTimeSignature *int

	MinValence    *float64
	MaxValence    *float64
	TargetValence *float64
}

func (r *RecommendationsRequest) seedCount() int {
	return len(r.SeedArtists) + len(r.SeedGenres) + len(r.SeedTracks)
}

func (r *RecommendationsRequest) values() url.Values {
	q := url.Values{}
	if len(r.SeedArtists) > 0 {
		q.Set("seed_artists", strings.Join(r.SeedArtists, ","))
	}
	if len(r.SeedGenres) > 0 {
		q.Set("seed_genres", strings.Join(r.SeedGenres, ","))
	}
	if len(r.SeedTracks) > 0 {
		q.Set("seed_tracks", strings.Join(r.SeedTracks, ","))
	}
	if r.Limit > 0 {
		q.Set("limit", strconv.Itoa(r.Limit))
	}
	if r.Market != "" {
		q.Set("market", r.Market)
	}

	setFloat(q, "min_acousticness", r.MinAcousticness)
	setFloat(q, "max_acousticness", r.MaxAcousticness)
	setFloat(q, "target_acousticness", r.TargetAcousticness)
	setFloat(q, "min_danceability", r.MinDanceability)
	setFloat(q, "max_danceability", r.MaxDanceability)
	setFloat(q, "target_danceability", r.TargetDanceability)
	setInt(q, "min_duration_ms", r.MinDurationMS)
	setInt(q, "max_duration_ms", r.MaxDurationMS)
	setInt(q, "target_duration_ms", r.TargetDurationMS)
	setFloat(q, "min_energy", r.MinEnergy)
	setFloat(q, "max_energy", r.MaxEnergy)
	setFloat(q, "target_energy", r.TargetEnergy)
	setFloat(q, "min_instrumentalness", r.MinInstrumentalness)
	setFloat(q, "max_instrumentalness", r.MaxInstrumentalness)
	setFloat(q, "target_instrumentalness", r.TargetInstrumentalness)
	setInt(q, "min_key", r.MinKey)
	setInt(q, "max_key", r.MaxKey)
	setInt(q, "target_key", r.TargetKey)
	setFloat(q, "min_liveness", r.MinLiveness)
	setFloat(q, "max_liveness", r.MaxLiveness)
	setFloat(q, "target_liveness", r.TargetLiveness)
	setFloat(q, "min_loudness", r.MinLoudness)
	setFloat(q, "max_loudness", r.MaxLoudness)
	setFloat(q, "target_loudness", r.TargetLoudness)
	setInt(q, "min_mode", r.MinMode)
	setInt(q, "max_mode", r.MaxMode)
	setInt(q, "target_mode", r.TargetMode)
	setInt(q, "min_popularity", r.MinPopularity)
	setInt(q, "max_popularity", r.MaxPopularity)
	setInt(q, "target_popularity", r.TargetPopularity)
	setFloat(q, "min_speechiness", r.MinSpeechiness)
	setFloat(q, "max_speechiness", r.MaxSpeechiness)
	setFloat(q, "target_speechiness", r.TargetSpeechiness)
	setFloat(q, "min_tempo", r.MinTempo)
	setFloat(q, "max_tempo", r.MaxTempo)
	setFloat(q, "target_tempo", r.TargetTempo)
	setInt(q, "min_time_signature", r.MinTimeSignature)
	setInt(q, "max_time_signature", r.MaxTimeSignature)
	setInt(q, "target_time_signature", r.TargetTimeSignature)
	setFloat(q, "min_valence", r.MinValence)
	setFloat(q, "max_valence", r.MaxValence)
	setFloat(q, "target_valence", r.TargetValence)

	return q
}

func setFloat(q url.Values, key string, v *float64) {
	if v != nil {
		q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

// Get fetches recommendations for the given seeds and tunable attributes.
//
// Example:
//
//	target := 0.8
//	recs, err := client.Recommendations().Get(ctx, &spotify.RecommendationsRequest{
//	    SeedGenres:   []string{"ambient"},
//	    TargetEnergy: &target,
//	    Limit:        10,
//	})
//	if err != nil {
//	    log.Fatalf("Failed to get recommendations: %v", err)
//	}
func (s *RecommendationsService) Get(ctx context.Context, req *RecommendationsRequest) (*Recommendations, error) {
	if req == nil {
		return nil, invalidInput("recommendations request is required")
	}
	seeds := req.seedCount()
	if seeds == 0 {
		return nil, invalidInput("at least one seed artist, genre, or track is required")
	}
	if seeds > MaxRecommendationSeeds {
		return nil, invalidInput("at most %d seeds may be combined, got %d", MaxRecommendationSeeds, seeds)
	}

	var recs Recommendations
	if err := s.client.Get(ctx, "/recommendations?"+req.values().Encode(), &recs); err != nil {
		return nil, err
	}
	return &recs, nil
}

// GetGenreSeeds fetches the genres accepted in SeedGenres.
func (s *RecommendationsService) GetGenreSeeds(ctx context.Context) ([]string, error) {
	var seeds GenreSeeds
	if err := s.client.Get(ctx, "/recommendations/available-genre-seeds", &seeds); err != nil {
		return nil, err
	}
	return seeds.Genres, nil
}
