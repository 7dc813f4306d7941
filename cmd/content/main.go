package main

import (
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/pharmacie-tassigny/site/backend/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	contentDir string
)

var rootCmd = &cobra.Command{
	Use:           "content",
	Short:         "Manage the pharmacy site content files",
	Long:          `Populates, checks and derives artifacts from the JSON documents the site is built from.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		if contentDir == "" {
			contentDir = cfg.Site.ContentDir
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentDir, "dir", "", "content directory (default $SITE_CONTENT_DIR or ./content)")
	rootCmd.AddCommand(syncCmd, validateCmd, sitemapCmd)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
