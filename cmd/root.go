package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustquiz/rustquiz/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "rustquiz",
	Short: "Terminal quiz on the Rust language",
	Long: `rustquiz asks multiple-choice questions about Rust in your terminal.

Run without a subcommand for the full-screen interface, or use "play" for a
plain line-by-line quiz. Settings can also come from RUSTQUIZ_* environment
variables; flags take precedence.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("bank", "", "Path to a JSON question bank (overrides RUSTQUIZ_BANK; default: built-in bank)")
	pf.String("log", "", "Write JSON logs to this file (overrides RUSTQUIZ_LOG)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (overrides RUSTQUIZ_LOG_LEVEL)")
	pf.StringSlice("level", nil, "Only questions at this level (repeatable): intro, beginner, beginner-plus, intermediate")
	pf.StringSlice("tag", nil, "Only questions with this tag (repeatable)")
	pf.Int("count", 0, "Questions in a random round (overrides RUSTQUIZ_COUNT)")
	pf.Uint64("seed", 0, "Seed for random rounds; 0 picks one at random (overrides RUSTQUIZ_SEED)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	defaults, err := rt.cfg.Plan()
	if err != nil {
		return err
	}

	rt.log.Info("starting tui", "bank_items", rt.bank.Len())
	return app.Run(app.Options{
		Bank:     rt.bank,
		Planner:  rt.planner,
		Logger:   rt.log,
		Defaults: defaults,
	})
}
