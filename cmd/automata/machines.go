package main

import (
	"github.com/spf13/cobra"

	"github.com/fsmlab/automata/internal/cli"
)

// machinesCmd represents the machines command
var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List the built-in machine kinds",
	Run: func(cmd *cobra.Command, args []string) {
		cli.ListMachines()
	},
}

func init() {
	rootCmd.AddCommand(machinesCmd)
}
