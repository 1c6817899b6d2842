package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Automata simulates deterministic finite automata step by step",
	Long: `Automata feeds an input string through a deterministic finite automaton
one symbol at a time, reporting each transition and explaining in plain
language why the input was accepted, rejected or left incomplete.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("machine", "email", "Built-in machine kind (see 'automata machines')")
	rootCmd.PersistentFlags().String("definition", "", "Path to a YAML automaton definition (overrides --machine)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
