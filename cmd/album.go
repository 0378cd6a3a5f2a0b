package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var albumShowTracks bool

// albumCmd represents the album command
var albumCmd = &cobra.Command{
	Use:   "album <id-or-url> [id-or-url...]",
	Short: "Look up albums by ID or URL",
	Long: `Look up one or more albums by Spotify ID or open.spotify.com URL.

A single argument prints the full album; pass --tracks to list its
track listing as well. Multiple arguments are batched into one API
request (up to 20 albums).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAlbum,
}

func init() {
	rootCmd.AddCommand(albumCmd)

	albumCmd.Flags().BoolVarP(&albumShowTracks, "tracks", "t", false, "List the album's tracks")
}

func runAlbum(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, _, err := newClientFromConfig()
	if err != nil {
		return err
	}

	ids, err := idsFromArgs(args, "album")
	if err != nil {
		return err
	}

	if len(ids) == 1 {
		album, err := client.Albums().Get(ctx, ids[0])
		if err != nil {
			return fmt.Errorf("failed to get album: %w", err)
		}
		printAlbum(album)

		if albumShowTracks {
			page, err := client.Albums().GetTracks(ctx, ids[0])
			if err != nil {
				return fmt.Errorf("failed to get album tracks: %w", err)
			}
			fmt.Println()
			printSimplifiedTrackTable(page.Items)
		}
		return nil
	}

	albums, err := client.Albums().GetSeveral(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to get albums: %w", err)
	}
	printAlbumTable(albums)
	return nil
}
