package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustquiz/rustquiz/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round in plain line-by-line mode",
	Long: `Play a round without the full-screen interface.

Questions are printed one at a time; answer with the choice number. When no
mode is given by --mode or RUSTQUIZ_MODE you are asked to pick one.`,
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
		askMode := !cmd.Flags().Changed("mode") && os.Getenv("RUSTQUIZ_MODE") == ""

		runner := console.NewRunner(cmd.InOrStdin(), cmd.OutOrStdout(), rt.bank, rt.planner, rt.log)
		return runner.Run(plan, askMode)
	},
}

func init() {
	playCmd.Flags().String("mode", "ordered", "Round type: ordered (every question) or random")
}
