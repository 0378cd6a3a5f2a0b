package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blu3eee/gospoty/pkg/spotify"
)

var (
	recommendArtists []string
	recommendGenres  []string
	recommendTracks  []string
	recommendLimit   int
	recommendMarket  string
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get track recommendations from seeds",
	Long: `Get track recommendations from seed artists, genres, and tracks.

At least one seed is required and at most five may be combined across
all three kinds. Artist and track seeds accept IDs or
open.spotify.com URLs; genre seeds come from 'gospoty genres'.

Examples:
  gospoty recommend -a 0TnOYISbd1XYRBk9myaseg -g pop
  gospoty recommend -t 11dFghVXANMlKmJXsNCbNl --limit 5`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringSliceVarP(&recommendArtists, "seed-artist", "a", nil, "Seed artist ID or URL (repeatable)")
	recommendCmd.Flags().StringSliceVarP(&recommendGenres, "seed-genre", "g", nil, "Seed genre (repeatable)")
	recommendCmd.Flags().StringSliceVarP(&recommendTracks, "seed-track", "t", nil, "Seed track ID or URL (repeatable)")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Number of tracks to return (default 20)")
	recommendCmd.Flags().StringVarP(&recommendMarket, "market", "m", "", "Market code for track relinking (e.g. US)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cfg, err := newClientFromConfig()
	if err != nil {
		return err
	}

	seedArtists, err := idsFromArgs(recommendArtists, "artist")
	if err != nil {
		return err
	}
	seedTracks, err := idsFromArgs(recommendTracks, "track")
	if err != nil {
		return err
	}

	market := recommendMarket
	if market == "" {
		market = cfg.Market
	}

	recs, err := client.Recommendations().Get(ctx, &spotify.RecommendationsRequest{
		SeedArtists: seedArtists,
		SeedGenres:  recommendGenres,
		SeedTracks:  seedTracks,
		Limit:       recommendLimit,
		Market:      market,
	})
	if err != nil {
		return fmt.Errorf("failed to get recommendations: %w", err)
	}
	printTrackTable(recs.Tracks)
	return nil
}
