package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var trackMarket string

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track <id-or-url> [id-or-url...]",
	Short: "Look up tracks by ID or URL",
	Long: `Look up one or more tracks by Spotify ID or open.spotify.com URL.

A single argument prints the full track. Multiple arguments are batched
into one API request (up to 50 tracks), with already-cached tracks
served locally.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)

	trackCmd.Flags().StringVarP(&trackMarket, "market", "m", "", "Market code for track relinking (e.g. US)")
}

func runTrack(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cfg, err := newClientFromConfig()
	if err != nil {
		return err
	}

	ids, err := idsFromArgs(args, "track")
	if err != nil {
		return err
	}

	if len(ids) == 1 {
		track, err := client.Tracks().Get(ctx, ids[0])
		if err != nil {
			return fmt.Errorf("failed to get track: %w", err)
		}
		printTrack(track)
		return nil
	}

	market := trackMarket
	if market == "" {
		market = cfg.Market
	}

	tracks, err := client.Tracks().GetSeveral(ctx, ids, market)
	if err != nil {
		return fmt.Errorf("failed to get tracks: %w", err)
	}
	printTrackTable(tracks)
	return nil
}
