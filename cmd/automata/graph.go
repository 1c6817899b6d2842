package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsmlab/automata/internal/presentation/graph"
	"github.com/fsmlab/automata/pkg/adapters/file"
	"github.com/fsmlab/automata/pkg/definitions"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the automaton graph visualization",
	Long:  `Outputs a Mermaid diagram of the selected machine's states and transitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		kind, _ := cmd.Flags().GetString("machine")
		defPath, _ := cmd.Flags().GetString("definition")

		def, err := resolveDefinition(kind, defPath)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(def.States, def.Transitions, nil))
	},
}

func resolveDefinition(kind, path string) (*definitions.Definition, error) {
	if path != "" {
		return file.Load(path)
	}
	return definitions.ForKind(kind)
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
