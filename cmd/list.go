package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the bank (optionally filtered by --level or --tag)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		plan, err := rt.cfg.Plan()
		if err != nil {
			return err
		}
		items := plan.Filter.Apply(rt.bank.Items())

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%4s  %-14s  %-40s  %s\n", "ID", "Level", "Title", "Tags")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, it := range items {
			fmt.Fprintf(out, "%4d  %-14s  %-40s  %s\n",
				it.ID, it.Level.DisplayName(), truncateTitle(it.Title, 40), strings.Join(it.Tags, ", "))
		}

		fmt.Fprintf(out, "\n%d of %d questions\n", len(items), rt.bank.Len())
		return nil
	},
}

// truncateTitle shortens s to at most limit runes, ending in "..." when cut.
func truncateTitle(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
