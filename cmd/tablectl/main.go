package main

import (
	"fmt"
	"os"

	"github.com/plastinin/projectgrid/internal/client"
	"github.com/plastinin/projectgrid/internal/config"
	"github.com/plastinin/projectgrid/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	baseURL    string
	jsonOutput bool
	logLevel   string

	cfg           *config.Config
	projectClient *client.HTTPClient
	log           *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "tablectl <command>",
	Short:         "Terminal client for the projects table API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.NewWithOutput(logLevel, "console", zapcore.Lock(os.Stderr))
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		log = l

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if baseURL == "" {
			baseURL = cfg.Client.BaseURL
		}

		projectClient = client.NewHTTPClient(baseURL, cfg.Client.Timeout)
		log.Debug("Client configured", zap.String("base_url", baseURL))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// pageSizeFlag размер страницы из флага, без флага берётся QUERY_DEFAULT_PAGE_SIZE
func pageSizeFlag(cmd *cobra.Command) int {
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if !cmd.Flags().Changed("page-size") {
		return cfg.Query.DefaultPageSize
	}
	return pageSize
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "", "projects API base URL (default $CLIENT_BASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
