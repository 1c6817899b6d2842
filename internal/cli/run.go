// Package cli wires the engine, runner, stores and presentation for the
// command-line frontend.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsmlab/automata"
	"github.com/fsmlab/automata/internal/logging"
	"github.com/fsmlab/automata/internal/presentation/tui"
	"github.com/fsmlab/automata/pkg/adapters/file"
	redisstore "github.com/fsmlab/automata/pkg/adapters/redis"
	"github.com/fsmlab/automata/pkg/definitions"
	"github.com/fsmlab/automata/pkg/runner"
)

// RunOptions configures one CLI simulation run.
type RunOptions struct {
	// Kind selects a built-in definition; DefinitionPath loads a YAML one
	// instead.
	Kind           string
	DefinitionPath string

	Input    string
	Delay    time.Duration
	Headless bool

	// RedisAddr enables run persistence when non-empty.
	RedisAddr string
	RunID     string

	ShowGrammar bool
	Verbose     bool
}

// RunSimulation executes one validation run and renders it to stdout.
func RunSimulation(ctx context.Context, opts RunOptions) error {
	logger := newLogger(opts.Verbose)

	def, err := resolveDefinition(opts.Kind, opts.DefinitionPath)
	if err != nil {
		return err
	}

	handler := runner.NewTextHandler(os.Stdout, opts.Headless)
	if !opts.Headless {
		handler.Renderer = tui.NewRenderer()
	}

	runnerOpts := []runner.Option{
		runner.WithHandler(handler),
		runner.WithLogger(logger),
		runner.WithDelay(opts.Delay),
	}
	if opts.RedisAddr != "" {
		runnerOpts = append(runnerOpts, runner.WithStore(redisstore.New(opts.RedisAddr, "", 0)))
	}
	if opts.RunID != "" {
		runnerOpts = append(runnerOpts, runner.WithRunID(opts.RunID))
	}
	drv := runner.NewRunner(runnerOpts...)

	machine, err := automata.New(def,
		automata.WithHooks(drv.Hooks()),
		automata.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if !opts.Headless {
		tui.PrintBanner()
	}
	if opts.ShowGrammar {
		if err := printGrammar(ctx, machine, handler, opts.Headless); err != nil {
			return err
		}
	}

	_, err = drv.Run(ctx, machine, opts.Input)
	return err
}

// resolveDefinition dispatches between built-in kinds and YAML files.
func resolveDefinition(kind, path string) (*definitions.Definition, error) {
	if path != "" {
		return file.Load(path)
	}
	return definitions.ForKind(kind)
}

func printGrammar(ctx context.Context, machine *automata.Automaton, handler *runner.TextHandler, headless bool) error {
	grammar := machine.Grammar()
	if grammar == "" {
		return nil
	}
	if !headless {
		render := tui.NewRenderer()
		if out, err := render(grammar); err == nil {
			grammar = out
		}
	}
	return handler.SystemOutput(ctx, grammar)
}

func newLogger(verbose bool) *slog.Logger {
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

// ListMachines prints the registered definition kinds.
func ListMachines() {
	for _, kind := range definitions.Kinds() {
		def, err := definitions.ForKind(kind)
		if err != nil {
			continue
		}
		fmt.Printf("%-8s %s\n", def.Kind, def.Name)
	}
}
