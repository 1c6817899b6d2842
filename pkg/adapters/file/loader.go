// Package file loads automaton definitions from YAML files, so callers can
// ship custom DFAs without writing Go code.
package file

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/fsmlab/automata/pkg/definitions"
	"github.com/fsmlab/automata/pkg/domain"
)

// definitionDoc mirrors the YAML document shape. It uses "mapstructure" tags
// so the generic YAML map can be decoded strictly, independent of the
// underlying markup.
type definitionDoc struct {
	Kind        string          `mapstructure:"kind"`
	Name        string          `mapstructure:"name"`
	Grammar     string          `mapstructure:"grammar"`
	States      []stateDoc      `mapstructure:"states"`
	Transitions []transitionDoc `mapstructure:"transitions"`
}

type stateDoc struct {
	ID    string `mapstructure:"id"`
	Label string `mapstructure:"label"`
	Start bool   `mapstructure:"start"`
	Final bool   `mapstructure:"final"`
}

type transitionDoc struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
	Rule string `mapstructure:"rule"`
}

// Load reads a definition from a YAML file and verifies it.
func Load(path string) (*definitions.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return Parse(data)
}

// Parse decodes and verifies a YAML definition document.
// File-based definitions use the default symbol matcher and a generic
// conclusion keyed by state labels; bespoke diagnostics need a Go
// definition.
func Parse(data []byte) (*definitions.Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}

	var doc definitionDoc
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid definition document: %w", err)
	}
	if doc.Kind == "" {
		return nil, fmt.Errorf("definition is missing a kind")
	}

	def := &definitions.Definition{
		Kind:     doc.Kind,
		Name:     doc.Name,
		Grammar:  doc.Grammar,
		Conclude: genericConclusion,
	}
	if def.Name == "" {
		def.Name = doc.Kind
	}
	for _, s := range doc.States {
		def.States = append(def.States, domain.State{
			ID:      s.ID,
			Label:   s.Label,
			IsStart: s.Start,
			IsFinal: s.Final,
		})
	}
	for _, t := range doc.Transitions {
		def.Transitions = append(def.Transitions, domain.Transition{
			From: t.From,
			To:   t.To,
			Rule: domain.SymbolRule(t.Rule),
		})
	}

	if err := definitions.Verify(def); err != nil {
		return nil, err
	}
	return def, nil
}

// genericConclusion is the label-based fallback diagnostic for definitions
// that carry no bespoke Conclude function.
func genericConclusion(input string, valid bool, final *domain.State) string {
	switch {
	case valid && final != nil && final.IsFinal:
		return fmt.Sprintf("%q was accepted: the run ended in the accepting state %q", input, final.Label)
	case !valid:
		return fmt.Sprintf("%q was rejected: a symbol found no matching transition", input)
	case final != nil:
		return fmt.Sprintf("%q was fully read but the run stopped at %q, which is not an accepting state", input, final.Label)
	default:
		return fmt.Sprintf("%q was not accepted", input)
	}
}
