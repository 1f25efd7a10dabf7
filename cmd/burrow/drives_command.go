package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"burrow/internal/drive"
	"burrow/internal/preflight"
)

func newDrivesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "drives",
		Short: "Show mounted volumes and which ones count as removable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Dependencies", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, res := range preflight.RunAll(cfg) {
				fmt.Fprintln(out, renderStatusLine(res.Name, checkKind(res), res.Detail, colorize))
			}
			fmt.Fprintln(out)

			listCtx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			mounts, err := drive.NewLister().List(listCtx)
			if err != nil {
				return fmt.Errorf("list mounts: %w", err)
			}

			classifier := drive.Classifier{
				Roots:   cfg.Drive.RemovableRoots,
				Windows: runtime.GOOS == "windows",
			}
			for _, line := range renderSectionHeader("Mounts", colorize) {
				fmt.Fprintln(out, line)
			}
			if len(mounts) == 0 {
				fmt.Fprintln(out, "No mounted volumes reported")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Path", "Device", "Label", "Flagged", "Watched"},
				mountRows(mounts, classifier),
				nil,
			))
			return nil
		},
	}
}

func mountRows(mounts []drive.Mount, classifier drive.Classifier) [][]string {
	rows := make([][]string, 0, len(mounts))
	for _, m := range mounts {
		label := m.Label
		if label == "" {
			label = "-"
		}
		rows = append(rows, []string{
			m.Path,
			m.Device,
			label,
			yesNo(m.Removable),
			yesNo(classifier.Removable(m)),
		})
	}
	return rows
}

func checkKind(res preflight.Result) statusKind {
	switch {
	case res.Passed:
		return statusOK
	case res.Optional:
		return statusWarn
	default:
		return statusError
	}
}
