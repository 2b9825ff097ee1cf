package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustquiz/rustquiz/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a question bank file against the schema and integrity rules",
	Long: `Load a question bank and report problems.

With no file, the bank selected by --bank or RUSTQUIZ_BANK is checked, or the
built-in bank when neither is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			bank   *quiz.Bank
			source string
			err    error
		)
		if len(args) == 1 {
			source = args[0]
			bank, err = quiz.LoadFile(source)
		} else {
			cfg, cerr := loadConfig(cmd)
			if cerr != nil {
				return cerr
			}
			source = cfg.BankPath
			if source == "" {
				source = "built-in bank"
			}
			bank, err = cfg.LoadBank()
		}

		out := cmd.OutOrStdout()
		if err != nil {
			var verr *quiz.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "%s: %d problem(s)\n", source, len(verr.Problems))
				for _, p := range verr.Problems {
					fmt.Fprintf(out, "  - %s\n", p)
				}
			}
			return fmt.Errorf("%s is not a valid question bank: %w", source, err)
		}

		levels := 0
		for _, l := range quiz.AllLevels() {
			if len(bank.ByLevel(l)) > 0 {
				levels++
			}
		}
		fmt.Fprintf(out, "%s: ok (%d questions, %d levels, %d tags)\n",
			source, bank.Len(), levels, len(bank.Tags()))
		return nil
	},
}
