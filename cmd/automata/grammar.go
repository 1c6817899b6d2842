package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsmlab/automata/internal/presentation/tui"
)

// grammarCmd represents the grammar command
var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Show the production rules of a machine",
	Run: func(cmd *cobra.Command, args []string) {
		kind, _ := cmd.Flags().GetString("machine")
		defPath, _ := cmd.Flags().GetString("definition")
		plain, _ := cmd.Flags().GetBool("plain")

		def, err := resolveDefinition(kind, defPath)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		grammar := def.Grammar
		if !plain {
			render := tui.NewRenderer()
			if out, rerr := render(grammar); rerr == nil {
				grammar = out
			}
		}
		fmt.Print(grammar)
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)
	grammarCmd.Flags().Bool("plain", false, "Print raw markdown without terminal rendering")
}
