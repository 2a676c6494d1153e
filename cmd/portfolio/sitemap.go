package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dixanta.dev/internal/content"
	"dixanta.dev/internal/sitemap"
)

func newSitemapCmd(a *app) *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "sitemap <output-dir>",
		Short: "Write sitemap.xml for static hosting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("base-url") {
				a.cfg.BaseURL = baseURL
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}

			snap, err := content.Load(a.cfg.DataPath)
			if err != nil {
				return err
			}

			outputDir := args[0]
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			slugs := make([]string, len(snap.Projects))
			for i := range snap.Projects {
				slugs[i] = snap.Projects[i].Slug()
			}

			path := filepath.Join(outputDir, "sitemap.xml")
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer f.Close()

			set := sitemap.Build(a.cfg.BaseURL, slugs, snap.LoadedAt)
			if err := sitemap.Write(f, set); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%d urls)\n", path, len(set.URLs))
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Public site URL (env PORTFOLIO_BASE_URL)")
	return cmd
}
