package main

import (
	"os"
	"time"

	"github.com/pharmacie-tassigny/site/backend/internal/content"
	"github.com/pharmacie-tassigny/site/backend/internal/sitemap"
	"github.com/spf13/cobra"
)

var (
	sitemapBaseURL string
	sitemapOutput  string
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write sitemap.xml for the static site",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sitemapBaseURL == "" {
			sitemapBaseURL = cfg.Site.BaseURL
		}

		loader, err := content.NewLoader(contentDir, cfg.Site.Locale)
		if err != nil {
			return err
		}
		services, err := loader.LoadServices()
		if err != nil {
			return err
		}
		urls := sitemap.Build(sitemapBaseURL, services, time.Now())

		if sitemapOutput == "" || sitemapOutput == "-" {
			return sitemap.Encode(cmd.OutOrStdout(), urls)
		}

		f, err := os.Create(sitemapOutput)
		if err != nil {
			return err
		}
		if err := sitemap.Encode(f, urls); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	sitemapCmd.Flags().StringVar(&sitemapBaseURL, "base-url", "", "public site URL (default $SITE_BASE_URL)")
	sitemapCmd.Flags().StringVarP(&sitemapOutput, "output", "o", "", "output file (default stdout)")
}
