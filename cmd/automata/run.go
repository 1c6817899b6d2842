package main

import (
	"github.com/spf13/cobra"

	"github.com/fsmlab/automata/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [input]",
	Short: "Simulate an input string against a machine",
	Long: `Feeds the input through the selected automaton one symbol at a time and
prints each transition plus the final verdict. Use --delay to animate the
steps; the pacing never changes the outcome.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("machine")
		defPath, _ := cmd.Flags().GetString("definition")
		verbose, _ := cmd.Flags().GetBool("verbose")
		delay, _ := cmd.Flags().GetDuration("delay")
		headless, _ := cmd.Flags().GetBool("headless")
		redisAddr, _ := cmd.Flags().GetString("redis")
		runID, _ := cmd.Flags().GetString("run-id")
		showGrammar, _ := cmd.Flags().GetBool("grammar")

		return cli.RunSimulation(cmd.Context(), cli.RunOptions{
			Kind:           kind,
			DefinitionPath: defPath,
			Input:          args[0],
			Delay:          delay,
			Headless:       headless,
			RedisAddr:      redisAddr,
			RunID:          runID,
			ShowGrammar:    showGrammar,
			Verbose:        verbose,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration("delay", 0, "Pause between steps for animated output (e.g. 200ms)")
	runCmd.Flags().Bool("headless", false, "Plain output without colors or banner")
	runCmd.Flags().String("redis", "", "Redis address for run persistence (e.g. localhost:6379)")
	runCmd.Flags().String("run-id", "", "Run ID used when persisting (defaults to a generated one)")
	runCmd.Flags().Bool("grammar", false, "Print the machine grammar before the run")
}
