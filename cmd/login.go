package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blu3eee/gospoty/internal/config"
	"github.com/blu3eee/gospoty/pkg/spotify"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store API credentials and authorize with Spotify",
	Long: `Store your Spotify API credentials and walk through user authorization.

This command will guide you through the Spotify setup process:
1. You'll be prompted to enter your Spotify client ID and secret
2. A browser URL will be provided for you to authorize the application
3. After authorizing, paste the code from the redirect URL to receive a token

Catalog commands only need the client ID and secret, which are saved to
your config file. The user token is printed for use with user-scoped
tools and is never stored.

You can create an application at: https://developer.spotify.com/dashboard`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Spotify Authorization")
	fmt.Println("=====================")
	fmt.Println()
	fmt.Println("You can create an application at: https://developer.spotify.com/dashboard")
	fmt.Println()

	// Check if we already have credentials
	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		fmt.Printf("Found existing API credentials.\n")
		fmt.Printf("Client ID: %s\n", cfg.ClientID)
		fmt.Print("\nUse existing credentials? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			// User wants to enter new credentials
			cfg.ClientID = ""
			cfg.ClientSecret = ""
		}
	}

	// Prompt for client ID if not set
	if cfg.ClientID == "" {
		fmt.Print("Enter your Spotify Client ID: ")
		clientID, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
		cfg.ClientID = strings.TrimSpace(clientID)
	}

	// Prompt for client secret if not set
	if cfg.ClientSecret == "" {
		fmt.Print("Enter your Spotify Client Secret: ")
		clientSecret, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
		cfg.ClientSecret = strings.TrimSpace(clientSecret)
	}

	// Validate inputs
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return fmt.Errorf("client ID and secret are required")
	}

	// Save credentials before the browser round trip so catalog commands
	// work even if authorization is abandoned
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath := config.GetConfigDir()
	fmt.Printf("\n✓ Credentials saved to %s/config.yaml\n", configPath)

	// User authorization is optional from here on
	auth, err := spotify.NewAuthenticator(cfg.ClientID, cfg.RedirectURI, []string{"user-read-private"})
	if err != nil {
		return fmt.Errorf("failed to create authenticator: %w", err)
	}

	fmt.Println("\nPlease visit this URL to authorize gospoty:")
	fmt.Printf("\n  %s\n\n", auth.URL())
	fmt.Printf("After authorizing you will be redirected to %s.\n", cfg.RedirectURI)
	fmt.Print("Paste the 'code' parameter from that URL here (or press Enter to skip): ")

	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		fmt.Println("\nSkipping user authorization. Catalog commands are ready to use.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, err := auth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	fmt.Printf("\n✓ Authorization successful!\n\n")
	fmt.Printf("Access token:  %s\n", token.AccessToken)
	if token.RefreshToken != "" {
		fmt.Printf("Refresh token: %s\n", token.RefreshToken)
	}
	fmt.Printf("Scope:         %s\n", token.Scope)
	fmt.Printf("Expires in:    %ds\n", token.ExpiresIn)
	fmt.Println("\nTokens are printed once and never written to disk.")

	return nil
}
