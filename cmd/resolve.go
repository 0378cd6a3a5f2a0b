package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blu3eee/gospoty/pkg/spotify"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Resolve a Spotify share link and look it up",
	Long: `Resolve a Spotify share link to its catalog entry.

Accepts open.spotify.com URLs as well as spotify.link short URLs, the
kind the mobile apps put on the clipboard. Short URLs are expanded by
following their redirect chain, then the target track, album, artist,
or playlist is fetched and printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, _, err := newClientFromConfig()
	if err != nil {
		return err
	}

	link := args[0]
	kind, id, ok := spotify.ParseLink(link)
	if !ok {
		resolved, err := spotify.ResolveShareURL(ctx, nil, link)
		if err != nil {
			return fmt.Errorf("failed to resolve share link: %w", err)
		}
		kind, id, ok = spotify.ParseLink(resolved)
		if !ok {
			return fmt.Errorf("no Spotify entity found at %s", resolved)
		}
	}

	switch kind {
	case "track":
		track, err := client.Tracks().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get track: %w", err)
		}
		printTrack(track)
	case "album":
		album, err := client.Albums().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get album: %w", err)
		}
		printAlbum(album)
	case "artist":
		artist, err := client.Artists().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get artist: %w", err)
		}
		printArtist(artist)
	case "playlist":
		playlist, err := client.Playlists().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get playlist: %w", err)
		}
		printPlaylist(playlist)
	}
	return nil
}
