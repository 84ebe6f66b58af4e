package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/edustack-labs/coursectl/internal/core/ports/driven"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage content API credentials",
}

var authLoginURL string

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the content API token",
	Long: `Stores the bearer token used for content API calls.

The token is read from the terminal without echo and written to the
coursectl config file with restricted permissions. Use --url to set the
API base URL at the same time.`,
	RunE: runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show credential status",
	RunE:  runAuthStatus,
}

func init() {
	authLoginCmd.Flags().StringVar(&authLoginURL, "url", "", "content API base URL")
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if authLoginURL != "" {
		if err := configStore.Set(driven.ConfigKeyAPIBaseURL, strings.TrimRight(authLoginURL, "/")); err != nil {
			return fmt.Errorf("store base URL: %w", err)
		}
	}

	cmd.Print("API token: ")
	tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return errors.New("empty token")
	}

	if err := configStore.Set(driven.ConfigKeyAPIToken, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	cmd.Println("Token saved.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	baseURL := configStore.GetString(driven.ConfigKeyAPIBaseURL)
	if baseURL == "" {
		baseURL = "(not set)"
	}
	cmd.Printf("API base URL: %s\n", baseURL)

	if configStore.GetString(driven.ConfigKeyAPIToken) != "" {
		cmd.Println("Token: configured")
	} else {
		cmd.Println("Token: not configured (run `coursectl auth login`)")
	}

	if path := configStore.Path(); path != "" {
		cmd.Printf("Config: %s\n", path)
	}
	return nil
}
