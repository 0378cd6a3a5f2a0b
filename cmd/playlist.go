package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// playlistCmd represents the playlist command
var playlistCmd = &cobra.Command{
	Use:   "playlist <id-or-url>",
	Short: "Look up a playlist by ID or URL",
	Long: `Look up a playlist by Spotify ID or open.spotify.com URL.

Prints the playlist header followed by the first page of its tracks.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlaylist,
}

func init() {
	rootCmd.AddCommand(playlistCmd)
}

func runPlaylist(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, _, err := newClientFromConfig()
	if err != nil {
		return err
	}

	id, err := idFromArg(args[0], "playlist")
	if err != nil {
		return err
	}

	playlist, err := client.Playlists().Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get playlist: %w", err)
	}
	printPlaylist(playlist)
	return nil
}
