package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	releasesLimit  int
	releasesOffset int
)

// releasesCmd represents the releases command
var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "List new album releases",
	Long: `List albums recently added to the Spotify catalog.

Use --limit and --offset to page through the listing. The limit is
capped at 50 per request.`,
	RunE: runReleases,
}

func init() {
	rootCmd.AddCommand(releasesCmd)

	releasesCmd.Flags().IntVar(&releasesLimit, "limit", 20, "Number of albums to list (1-50)")
	releasesCmd.Flags().IntVar(&releasesOffset, "offset", 0, "Listing offset for paging")
}

func runReleases(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, _, err := newClientFromConfig()
	if err != nil {
		return err
	}

	releases, err := client.Albums().GetNewReleases(ctx, releasesLimit, releasesOffset)
	if err != nil {
		return fmt.Errorf("failed to get new releases: %w", err)
	}
	printSimplifiedAlbumTable(releases.Albums.Items)
	return nil
}
