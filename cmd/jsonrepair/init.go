package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsonrepair-go/jsonrepair/internal/api"
)

const configTemplate = `max_iterations: %d
mode: %s
auto_flow: %s
cache:
  enabled: %t
  backend: lru
  lru_entries: 512
history:
  enabled: %t
  dsn: file:jsonrepair_history.db
api:
  port: 8089
  host: localhost
  require_auth: %t
  jwt_secret: %q
  api_key_hash: %q
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively scaffold a jsonrepair.yml config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			successColor := color.New(color.FgGreen, color.Bold)
			infoColor := color.New(color.FgCyan)
			warnColor := color.New(color.FgYellow, color.Bold)

			if _, err := os.Stat("jsonrepair.yml"); err == nil {
				return fmt.Errorf("jsonrepair.yml already exists")
			}

			var mode string
			if err := survey.AskOne(&survey.Select{
				Message: "Fallback mode when strict parsing still fails after every rule runs:",
				Options: []string{"lax", "strict"},
				Default: "lax",
			}, &mode); err != nil {
				return err
			}

			var autoFlow string
			if err := survey.AskOne(&survey.Select{
				Message: "Default flow:",
				Options: []string{"minimal", "standard", "aggressive"},
				Default: "standard",
			}, &autoFlow); err != nil {
				return err
			}

			var enableCache, enableHistory, requireAuth bool
			if err := survey.AskOne(&survey.Confirm{
				Message: "Enable an in-process result cache?",
				Default: true,
			}, &enableCache); err != nil {
				return err
			}
			if err := survey.AskOne(&survey.Confirm{
				Message: "Enable repair history persistence (sqlite3)?",
				Default: false,
			}, &enableHistory); err != nil {
				return err
			}
			if err := survey.AskOne(&survey.Confirm{
				Message: "Require authentication (bearer JWT or X-API-Key) on the HTTP API?",
				Default: false,
			}, &requireAuth); err != nil {
				return err
			}

			var jwtSecret, apiKeyHash, rawAPIKey string
			if requireAuth {
				var err error
				jwtSecret, err = randomSecret(32)
				if err != nil {
					return fmt.Errorf("generating jwt secret: %w", err)
				}
				rawAPIKey, err = randomSecret(20)
				if err != nil {
					return fmt.Errorf("generating api key: %w", err)
				}
				apiKeyHash, err = api.HashAPIKey(rawAPIKey)
				if err != nil {
					return fmt.Errorf("hashing api key: %w", err)
				}
			}

			content := fmt.Sprintf(configTemplate, 10, mode, autoFlow, enableCache, enableHistory,
				requireAuth, jwtSecret, apiKeyHash)
			if err := os.WriteFile("jsonrepair.yml", []byte(content), 0644); err != nil {
				return fmt.Errorf("writing jsonrepair.yml: %w", err)
			}

			infoColor.Println("\nWrote jsonrepair.yml")
			if requireAuth {
				warnColor.Println("✓ API key (shown once, not stored in plaintext):")
				fmt.Println("  " + rawAPIKey)
			}
			successColor.Println("✓ Ready. Try: jsonrepair repair --format=pretty <file>")
			return nil
		},
	}
}

// randomSecret returns a hex-encoded secret with n random bytes of entropy.
func randomSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
