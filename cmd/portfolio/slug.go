package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dixanta.dev/internal/slug"
)

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <title...>",
		Short: "Print the URL slug for a project title",
		Long: `Print the URL slug for a project title. Multiple arguments are joined
with single spaces, so quoting is optional.`,
		Args: cobra.MinimumNArgs(1),
		// no config or logger needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), slug.Derive(strings.Join(args, " ")))
			return nil
		},
	}
}
