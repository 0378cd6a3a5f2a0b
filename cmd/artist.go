package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	artistShowAlbums  bool
	artistShowTop     bool
	artistShowRelated bool
	artistMarket      string
)

// artistCmd represents the artist command
var artistCmd = &cobra.Command{
	Use:   "artist <id-or-url> [id-or-url...]",
	Short: "Look up artists by ID or URL",
	Long: `Look up one or more artists by Spotify ID or open.spotify.com URL.

A single argument prints the full artist profile. The --albums,
--top-tracks, and --related flags append the artist's album listing,
top tracks, and related artists. Multiple arguments are batched into
one API request (up to 50 artists).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArtist,
}

func init() {
	rootCmd.AddCommand(artistCmd)

	artistCmd.Flags().BoolVar(&artistShowAlbums, "albums", false, "List the artist's albums")
	artistCmd.Flags().BoolVar(&artistShowTop, "top-tracks", false, "List the artist's top tracks")
	artistCmd.Flags().BoolVar(&artistShowRelated, "related", false, "List related artists")
	artistCmd.Flags().StringVarP(&artistMarket, "market", "m", "", "Market code for top tracks (e.g. US)")
}

func runArtist(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cfg, err := newClientFromConfig()
	if err != nil {
		return err
	}

	ids, err := idsFromArgs(args, "artist")
	if err != nil {
		return err
	}

	if len(ids) > 1 {
		artists, err := client.Artists().GetSeveral(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to get artists: %w", err)
		}
		printArtistTable(artists)
		return nil
	}

	id := ids[0]
	artist, err := client.Artists().Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get artist: %w", err)
	}
	printArtist(artist)

	if artistShowAlbums {
		page, err := client.Artists().GetAlbums(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get artist albums: %w", err)
		}
		fmt.Println("\nAlbums")
		printSimplifiedAlbumTable(page.Items)
	}

	if artistShowTop {
		market := artistMarket
		if market == "" {
			market = cfg.Market
		}
		tracks, err := client.Artists().GetTopTracks(ctx, id, market)
		if err != nil {
			return fmt.Errorf("failed to get top tracks: %w", err)
		}
		fmt.Println("\nTop tracks")
		printTrackTable(tracks)
	}

	if artistShowRelated {
		related, err := client.Artists().GetRelated(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get related artists: %w", err)
		}
		fmt.Println("\nRelated artists")
		printArtistTable(related)
	}

	return nil
}
