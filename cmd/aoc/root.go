package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/toatesONS/advent-of-code/internal/puzzle"
	"github.com/toatesONS/advent-of-code/internal/setup"
)

type rootOptions struct {
	inputFile string
	logLevel  string
	dir       string

	deps *setup.Dependencies
}

// newRootCmd builds the aoc command tree. Answers go to out, logs to logOut
// (stderr console output when nil).
func newRootCmd(out io.Writer, logOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2022 solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, envLoaded, err := setup.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if opts.inputFile != "" {
				cfg.InputFile = opts.inputFile
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
			}

			opts.deps = setup.Wire(cfg, logOut)
			if !envLoaded {
				opts.deps.Logger.Debug().Msg("No .env file found, using environment variables")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.inputFile, "input", "", "Relative path to the input file (default input.txt)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	runCmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Solve a single day",
		Long: `Solve both parts of a single day against the configured input file.

Available days:
  day02 - rock paper scissors scoring
  day05 - crate rearrangement
  day06 - start-of-packet and start-of-message markers`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solver, err := opts.deps.Registry.Get(args[0])
			if err != nil {
				return err
			}
			return puzzle.Run(solver, opts.deps.Config.InputFile, out, opts.deps.Logger)
		},
	}

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day, reading <dir>/<day>.txt",
		Long: `Solve every registered day, reading <dir>/<day>.txt for each one.

Nothing is printed unless every day succeeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days := opts.deps.Registry.Days()
			answers := make([]puzzle.Answer, 0, len(days))
			for _, day := range days {
				solver, err := opts.deps.Registry.Get(day)
				if err != nil {
					return err
				}
				answer, err := puzzle.Solve(solver, filepath.Join(opts.dir, day+".txt"), opts.deps.Logger)
				if err != nil {
					return err
				}
				answers = append(answers, answer)
			}

			for i, day := range days {
				puzzle.Print(out, day, answers[i])
			}
			return nil
		},
	}
	allCmd.Flags().StringVar(&opts.dir, "dir", ".", "Directory holding one <day>.txt input per day")

	daysCmd := &cobra.Command{
		Use:   "days",
		Short: "List the available days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, day := range opts.deps.Registry.Days() {
				fmt.Fprintln(out, day)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, allCmd, daysCmd)
	return rootCmd
}
