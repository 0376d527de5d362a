package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/so4t-csv-connector/internal/csvout"
	"github.com/pdiddy/so4t-csv-connector/internal/export"
	"github.com/pdiddy/so4t-csv-connector/internal/secrets"
	"github.com/pdiddy/so4t-csv-connector/pkg/types"
)

const defaultTimeout = 60 * time.Second

func init() {
	rootCmd.Flags().String("url", "", "base URL for your Stack Overflow for Teams instance")
	rootCmd.Flags().String("token", "", "API token value; required for Basic or Business instances")
	rootCmd.Flags().String("key", "", "API key value; required for Enterprise instances")
	rootCmd.Flags().String("output", csvout.DefaultFileName, "CSV file to write")
	rootCmd.Flags().String("manifest", "", "also write a YAML run manifest to this path")
	rootCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")

	bindFlags()
}

func bindFlags() {
	for _, name := range []string{"url", "token", "key", "output", "manifest", "timeout"} {
		viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

// exportConfig resolves settings from flags, SO4T_* env vars, the config
// file and finally the secrets directory.
func exportConfig() types.ExportConfig {
	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return types.ExportConfig{
		Client: types.ClientConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: "so4t-csv-connector/" + version,
			},
			URL:   viper.GetString("url"),
			Token: loadedSecrets.Or(viper.GetString("token"), secrets.APIToken),
			Key:   loadedSecrets.Or(viper.GetString("key"), secrets.APIKey),
		},
		OutputPath:   viper.GetString("output"),
		ManifestPath: viper.GetString("manifest"),
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := exportConfig()
	client := &http.Client{Timeout: cfg.Client.Timeout}

	res, err := export.Run(ctx, client, cfg, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported %d rows (%d questions, %d answers, %d articles)\n",
		res.Counts.Rows, res.Counts.Questions, res.Counts.Answers, res.Counts.Articles)
	return nil
}
