package main

import (
	"fmt"

	"github.com/pharmacie-tassigny/site/backend/internal/content"
	"github.com/pharmacie-tassigny/site/backend/internal/seed"
	"github.com/spf13/cobra"
)

var syncSource string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy the content documents from the authoring directory",
	Long: `Copies pharmacy.json, services.json, team.json, faq.json, legal.json and
localbusiness_jsonld.json from the authoring directory into the content
directory, then checks the result.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncSource, "from", "", "authoring directory (default $SITE_SOURCE_DIR or ../init)")
}

func runSync(cmd *cobra.Command, args []string) error {
	if syncSource == "" {
		syncSource = cfg.Site.SourceDir
	}

	result, err := seed.SeedContent(syncSource, contentDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range result.Copied {
		fmt.Fprintf(out, "copied   %s\n", name)
	}
	for _, name := range result.Skipped {
		fmt.Fprintf(out, "skipped  %s (not found in %s)\n", name, syncSource)
	}
	fmt.Fprintf(out, "%d copied, %d skipped\n", len(result.Copied), len(result.Skipped))

	loader, err := content.NewLoader(contentDir, cfg.Site.Locale)
	if err != nil {
		return err
	}
	return loader.CheckAll()
}
