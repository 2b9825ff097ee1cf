package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustquiz/rustquiz/internal/quiz"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one question with its answer and explanation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: must be a number", args[0])
		}

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		it, err := rt.bank.Get(id)
		if errors.Is(err, quiz.ErrItemNotFound) {
			return fmt.Errorf("no question with id %d (see rustquiz list)", id)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "── #%d %s (%s) ──\n", it.ID, it.Title, it.Level.DisplayName())
		fmt.Fprintln(out, it.Question)
		if it.HasCode() {
			fmt.Fprintln(out)
			for _, line := range strings.Split(it.Code, "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
		fmt.Fprintln(out)
		for i, c := range it.Choices {
			marker := " "
			if it.IsCorrect(i) {
				marker = "✓"
			}
			fmt.Fprintf(out, "  %s %d) %s\n", marker, i+1, c)
		}
		fmt.Fprintf(out, "\nExplanation: %s\n", it.Explanation)
		if len(it.Tags) > 0 {
			fmt.Fprintf(out, "Tags: %s\n", strings.Join(it.Tags, ", "))
		}
		return nil
	},
}
