package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"dixanta.dev/internal/content"
	"dixanta.dev/internal/slug"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate data files and report project slug collisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := content.Load(a.cfg.DataPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%d projects, %d technical skill categories, %d soft skill categories\n",
				len(snap.Projects), len(snap.Skills.Technical), len(snap.Skills.Soft))

			titles := snap.Projects.Titles()
			problems := 0
			for i, t := range titles {
				if slug.Derive(t) == "" {
					fmt.Fprintf(out, "  project %d %q has an empty slug\n", i, t)
					problems++
				}
			}

			collisions := slug.Collisions(titles)
			keys := make([]string, 0, len(collisions))
			for s := range collisions {
				keys = append(keys, s)
			}
			sort.Strings(keys)
			for _, s := range keys {
				fmt.Fprintf(out, "  slug %q is shared by:\n", s)
				for n, i := range collisions[s] {
					note := "unreachable"
					if n == 0 {
						note = "served"
					}
					fmt.Fprintf(out, "    [%d] %q (%s)\n", i, titles[i], note)
				}
				problems++
			}

			if problems > 0 {
				return fmt.Errorf("%d slug problem(s) found", problems)
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}
