package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List available recommendation genre seeds",
	Long: `List the genres accepted as seeds by 'gospoty recommend'.

One genre per line, suitable for grep.`,
	RunE: runGenres,
}

func init() {
	rootCmd.AddCommand(genresCmd)
}

func runGenres(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, _, err := newClientFromConfig()
	if err != nil {
		return err
	}

	genres, err := client.Recommendations().GetGenreSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get genre seeds: %w", err)
	}
	for _, genre := range genres {
		fmt.Println(genre)
	}
	return nil
}
