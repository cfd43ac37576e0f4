package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"moneytracker/internal/preset"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in work schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPERIODS\tHOURS\tDESCRIPTION")
			for _, p := range preset.All() {
				fmt.Fprintf(tw, "%s\t%s\t%g\t%s\n", p.Name, p.Schedule, p.Schedule.Hours(), p.Description)
			}
			return tw.Flush()
		},
	}
}
