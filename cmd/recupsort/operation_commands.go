package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recupsort/internal/failure"
	"recupsort/internal/preflight"
	"recupsort/internal/sweeper"
	"recupsort/internal/textutil"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool
	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Move recovered media out of recup_dir.* into the destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ok, err := confirmUnlessYes(cmd, assumeYes, fmt.Sprintf("This will move files into %s. Continue?", cfg.Destination()))
			if err != nil || !ok {
				return err
			}
			_, err = runOrganize(cmd.Context(), ctx, cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newSweepCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool
	var dryRun bool
	var maxWidth, maxHeight int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete images smaller than the thumbnail threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			threshold := configThreshold(cfg)
			if cmd.Flags().Changed("max-width") {
				threshold.MaxWidth = maxWidth
			}
			if cmd.Flags().Changed("max-height") {
				threshold.MaxHeight = maxHeight
			}
			if err := threshold.Validate(); err != nil {
				return err
			}
			if !dryRun {
				ok, err := confirmUnlessYes(cmd, assumeYes, fmt.Sprintf("This will DELETE images smaller than %s. Continue?", threshold))
				if err != nil || !ok {
					return err
				}
			}
			_, err = runSweep(cmd.Context(), ctx, cmd.OutOrStdout(), threshold, dryRun)
			return err
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List thumbnails without deleting them")
	cmd.Flags().IntVar(&maxWidth, "max-width", sweeper.DefaultThreshold.MaxWidth, "Delete images narrower than this (overrides config)")
	cmd.Flags().IntVar(&maxHeight, "max-height", sweeper.DefaultThreshold.MaxHeight, "Delete images shorter than this (overrides config)")
	return cmd
}

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Permanently delete every file inside recup_dir.* folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmUnlessYes(cmd, assumeYes, "This will DELETE ALL FILES inside recup_dir.*. Are you sure?")
			if err != nil || !ok {
				return err
			}
			_, err = runClean(cmd.Context(), ctx, cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// confirmUnlessYes prompts on the command's stdin. A declined or unanswered
// prompt prints a notice and returns false without error.
func confirmUnlessYes(cmd *cobra.Command, assumeYes bool, question string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	out := cmd.OutOrStdout()
	ok, err := newPrompter(cmd.InOrStdin(), out).confirm(question)
	if err != nil {
		fmt.Fprintln(out)
		ok = false
	}
	if !ok {
		fmt.Fprintln(out, "Operation cancelled")
	}
	return ok, nil
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify directories and show the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			for _, line := range renderSectionHeader("Settings", colorize) {
				fmt.Fprintln(stdout, line)
			}
			fmt.Fprintln(stdout, renderStatusLine("Base directory", statusInfo, cfg.Paths.BaseDir, colorize))
			fmt.Fprintln(stdout, renderStatusLine("Destination", statusInfo, cfg.Destination(), colorize))
			fmt.Fprintln(stdout, renderStatusLine("Thumbnail size", statusInfo, configThreshold(cfg).String(), colorize))
			fmt.Fprintln(stdout, renderStatusLine("Sweep destination", statusInfo, yesNo(cfg.Thumbnails.IncludeDestination), colorize))
			fmt.Fprintln(stdout, renderStatusLine("Log file", statusInfo, cfg.LogFile(), colorize))
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Checks", colorize) {
				fmt.Fprintln(stdout, line)
			}
			results := preflight.RunAll(cfg)
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				fmt.Fprintln(stdout, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			if n := len(preflight.Failed(results)); n > 0 {
				return failure.Wrap(failure.ErrConfiguration, "check", "preflight", fmt.Sprintf("%d check(s) failed", n), nil)
			}
			return nil
		},
	}
}

func yesNo(value bool) string {
	return textutil.Ternary(value, "yes", "no")
}
