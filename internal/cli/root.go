package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bfckd/bfckd/internal/bf"
	"github.com/bfckd/bfckd/internal/config"
	"github.com/bfckd/bfckd/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time via ldflags.
var Version = "dev"

// options holds the command-line flags. Zero values mean "not set"; only
// flags the user changed override the config file.
type options struct {
	configPath string
	tapeSize   int
	debug      bool
	debugWidth int
	maxSteps   uint64
	verbose    bool
}

// NewRootCmd builds the bfckd command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bfckd",
		Short: "Brainfuck interpreter reading program and input from stdin",
		Long: `bfckd reads a Brainfuck program from stdin up to the first '!' and runs it.
Everything after the '!' is the program's input, byte for byte.

The tape has 8-bit wrapping cells and wraps around after --tape-size cells.
Reading past the end of input leaves the current cell unchanged.

Example:
  echo ',[.[-],]!Hello World' | bfckd`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterpreter(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.IntVar(&opts.tapeSize, "tape-size", config.DefaultTapeSize, "number of tape cells before wrapping")
	flags.BoolVar(&opts.debug, "debug", false, "enable the '#' instruction, which dumps cells to stderr")
	flags.IntVar(&opts.debugWidth, "debug-width", config.DefaultDiagnosticWidth, "cells shown either side of the pointer by '#'")
	flags.Uint64Var(&opts.maxSteps, "max-steps", 0, "stop after this many instructions (0 means no limit)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log run details to stderr")

	cmd.Version = Version
	cmd.SetVersionTemplate("bfckd version {{.Version}}\n")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// resolveConfig loads the config file and applies changed flags on top.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("tape-size") {
		cfg.TapeSize = opts.tapeSize
	}
	if flags.Changed("debug") {
		cfg.Diagnostics.Enabled = opts.debug
	}
	if flags.Changed("debug-width") {
		cfg.Diagnostics.Width = opts.debugWidth
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = opts.maxSteps
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInterpreter(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := logging.New()
	logger.SetWriter(cmd.ErrOrStderr())
	logger.SetLevel(cfg.Level())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stdin := cmd.InOrStdin()
	if isTerminal(stdin) {
		logger.Info("reading program from terminal, end it with '!'")
	}
	in := bufio.NewReader(stdin)

	prog, err := bf.Load(in, bf.LoadOptions{Diagnostics: cfg.Diagnostics.Enabled})
	if err != nil {
		logger.Error("failed to load program", "error", err)
		return err
	}

	runLog := logger.With("instructions", prog.Len())
	runLog.Debug("program loaded", "tape_size", cfg.TapeSize, "diagnostics", cfg.Diagnostics.Enabled)
	if opens, closes := prog.Unbalanced(); opens > 0 || closes > 0 {
		runLog.Warn("program has unbalanced loops", "unmatched_open", opens, "unmatched_close", closes)
	}

	interpOpts := []bf.Option{
		bf.WithTapeSize(cfg.TapeSize),
		bf.WithMaxSteps(cfg.MaxSteps),
		bf.WithLogger(runLog.With("component", "interpreter")),
	}
	if cfg.Diagnostics.Enabled {
		interpOpts = append(interpOpts, bf.WithDiagnostics(cmd.ErrOrStderr(), cfg.Diagnostics.Width))
	}

	interp := bf.New(prog, in, cmd.OutOrStdout(), interpOpts...)
	if err := interp.Run(ctx); err != nil {
		if errors.Is(err, bf.ErrStepLimit) {
			runLog.Warn("run stopped", "steps", interp.Steps(), "pc", interp.PC())
		} else {
			runLog.Error("run failed", "error", err, "steps", interp.Steps())
		}
		return fmt.Errorf("run: %w", err)
	}

	runLog.Debug("run finished", "steps", interp.Steps())
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
