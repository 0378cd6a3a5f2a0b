/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blu3eee/gospoty/internal/config"
	"github.com/blu3eee/gospoty/internal/logging"
	"github.com/blu3eee/gospoty/pkg/spotify"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gospoty",
	Short: "Spotify catalog browser for the terminal",
	Long: `gospoty is a Spotify catalog browser for the terminal.

It looks up tracks, albums, artists, and playlists through the Spotify
Web API using application credentials, caches responses so repeated
lookups stay off the network, and prints results as plain text suitable
for piping.

Run 'gospoty login' once to store your API credentials, or set
SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET in the environment.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newClientFromConfig loads the configuration and builds a Spotify client
// from it. Shared by every catalog command.
func newClientFromConfig() (*spotify.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if !cfg.HasCredentials() {
		return nil, nil, fmt.Errorf("Spotify credentials not configured. Run 'gospoty login' or set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET")
	}

	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	logger := logging.Setup("", logLevel)

	client, err := spotify.NewClient(spotify.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		CacheTTL:     cfg.CacheTTLDuration(),
		Logger:       logging.NewClientLogger(logger),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Spotify client: %w", err)
	}

	return client, cfg, nil
}

// idFromArg returns the Spotify ID for a command argument, accepting
// either a bare ID or an open.spotify.com URL of the expected kind.
func idFromArg(arg, kind string) (string, error) {
	if k, id, ok := spotify.ParseLink(arg); ok {
		if k != kind {
			return "", fmt.Errorf("expected a %s link, got a %s link", kind, k)
		}
		return id, nil
	}
	return arg, nil
}

// idsFromArgs maps every argument through idFromArg.
func idsFromArgs(args []string, kind string) ([]string, error) {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		id, err := idFromArg(arg, kind)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
