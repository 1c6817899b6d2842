package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsmlab/automata"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of automata",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("automata version %s\n", automata.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
