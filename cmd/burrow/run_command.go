package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"burrow/internal/run"
	"burrow/internal/services"
)

type runFlags struct {
	root     string
	maxDepth int
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Nest a drive's contents (waits for a drive unless --root is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.maxDepth < 0 {
				return fmt.Errorf("--max-depth must be positive")
			}
			return runFlow(cmd, ctx, flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "Organize this directory instead of waiting for a drive")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0, "Override nest.max_depth for this run")
	return cmd
}

func runFlow(cmd *cobra.Command, ctx *commandContext, flags runFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	summary, err := run.Execute(cmd.Context(), cfg, run.Options{
		Root:     flags.root,
		MaxDepth: flags.maxDepth,
		LogLevel: ctx.logLevel(),
	})

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	if summary.RunID != "" && (err == nil || errors.Is(err, services.ErrInterrupted)) {
		for _, line := range renderSummary(summary, colorize) {
			fmt.Fprintln(out, line)
		}
	}
	if errors.Is(err, services.ErrInterrupted) {
		fmt.Fprintln(out, "Process interrupted by user.")
		return nil
	}
	return err
}
