// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the so4t-csv-connector CLI. It
// exports questions, answers and articles from a Stack Overflow for Teams
// instance to a CSV file that Microsoft Graph connectors can index.
//
// Exit codes:
//   - 0: success
//   - 1: general error
//   - 2: missing or rejected URL/credentials
//   - 3: connection failure
package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/so4t-csv-connector/internal/secrets"
	"github.com/pdiddy/so4t-csv-connector/internal/stackapi"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd runs the export; subcommands cover housekeeping.
var rootCmd = &cobra.Command{
	Use:   "so4t-csv-connector",
	Short: "Export Stack Overflow for Teams content to a CSV file for Microsoft Graph",
	Long: `so4t-csv-connector uses the Stack Overflow for Teams API v2.3 to fetch every
question, answer and article, flattens them into one row each, and writes a
CSV file ready to import into Microsoft Graph.

Example for Stack Overflow Business:
  so4t-csv-connector --url "https://stackoverflowteams.com/c/TEAM-NAME" --token "YOUR_TOKEN"

Example for Stack Overflow Enterprise:
  so4t-csv-connector --url "https://SUBDOMAIN.stackenterprise.co" --key "YOUR_KEY"`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secrets.DefaultDir, os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", s.Names())
		}
		return nil
	},
	RunE: runExport,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./so4t-csv-connector.yaml or ~/.config/so4t-csv-connector/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("so4t-csv-connector")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "so4t-csv-connector"))
		}
	}

	viper.SetEnvPrefix("SO4T")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCode maps an error returned by the command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, stackapi.ErrMissingURL),
		errors.Is(err, stackapi.ErrMissingToken),
		errors.Is(err, stackapi.ErrMissingKey),
		errors.Is(err, stackapi.ErrMissingTeam),
		errors.Is(err, stackapi.ErrUnauthorized):
		return 2
	case errors.Is(err, stackapi.ErrConnection):
		return 3
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return 3
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var apiErr *stackapi.APIError
		if errors.As(err, &apiErr) && apiErr.Body != "" {
			fmt.Fprintf(os.Stderr, "Response body: %s\n", strings.TrimSpace(apiErr.Body))
			fmt.Fprintf(os.Stderr, "Failed request URL: %s\n", apiErr.URL)
		}
		if errors.Is(err, stackapi.ErrMissingURL) ||
			errors.Is(err, stackapi.ErrMissingToken) ||
			errors.Is(err, stackapi.ErrMissingKey) {
			fmt.Fprintln(os.Stderr, "See --help for more information")
		}
		os.Exit(exitCode(err))
	}
}
