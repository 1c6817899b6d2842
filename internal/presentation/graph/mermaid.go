// Package graph renders automaton tables as Mermaid diagrams for export and
// the HTTP graph endpoint.
package graph

import (
	"fmt"
	"strings"

	"github.com/fsmlab/automata/pkg/domain"
)

// Overlay contains dynamic run data to visualize on the graph.
type Overlay struct {
	VisitedStates []string
	CurrentState  string
}

// GenerateMermaid produces a Mermaid flowchart from the automaton tables.
// Semantic styling:
//   - Start state: ((double circle opening))
//   - Final state: [[subroutine border]]
//   - Default: [rectangle]
//
// Overlay styles (visited/current) are applied when provided.
func GenerateMermaid(states []domain.State, transitions []domain.Transition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range states {
		safeID := sanitizeMermaidID(s.ID)

		opener, closer := "[", "]"
		switch {
		case s.IsStart:
			opener, closer = "((", "))"
		case s.IsFinal:
			opener, closer = "[[", "]]"
		}

		label := s.Label
		if label == "" {
			label = s.ID
		}
		if s.IsFinal && s.IsStart {
			label += " (start, accepting)"
		} else if s.IsFinal {
			label += " (accepting)"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))
	}

	for _, t := range transitions {
		safeFrom := sanitizeMermaidID(t.From)
		safeTo := sanitizeMermaidID(t.To)
		// Escape double quotes in the rule for the Mermaid edge label.
		safeRule := strings.ReplaceAll(string(t.Rule), "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeFrom, safeRule, safeTo))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	replacer := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_")
	return replacer.Replace(id)
}
