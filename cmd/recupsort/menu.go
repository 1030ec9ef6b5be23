package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"recupsort/internal/sweeper"
)

func newMenuCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu (default when no command is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

type menuSession struct {
	cc        *commandContext
	prompt    *prompter
	out       io.Writer
	threshold sweeper.Threshold
}

// runMenu drives the interactive loop until the user exits or input ends.
// Operation errors are printed and the loop continues; only cancellation
// ends the session early.
func runMenu(ctx context.Context, cc *commandContext, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := cc.ensureConfig()
	if err != nil {
		return err
	}
	m := &menuSession{
		cc:        cc,
		prompt:    newPrompter(in, out),
		out:       out,
		threshold: configThreshold(cfg),
	}

	fmt.Fprint(out, welcomeText)
	for {
		m.printOptions()
		choice, err := m.prompt.ask("Choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}
		done, err := m.handle(ctx, choice)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return err
			}
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		if done {
			return nil
		}
	}
}

func (m *menuSession) printOptions() {
	fmt.Fprintln(m.out, "\nSelect an option:")
	fmt.Fprintln(m.out, "1 - Organize recovery files")
	fmt.Fprintln(m.out, "2 - Delete thumbnail images (small resolution)")
	fmt.Fprintf(m.out, "3 - Change thumbnail size (current: %s)\n", m.threshold)
	fmt.Fprintln(m.out, "4 - Clean all files inside recup_dir.*")
	fmt.Fprintln(m.out, "5 - Help")
	fmt.Fprintln(m.out, "0 - Exit")
}

func (m *menuSession) handle(ctx context.Context, choice string) (bool, error) {
	switch strings.TrimSpace(choice) {
	case "1":
		cfg, _ := m.cc.ensureConfig()
		ok, err := m.prompt.confirm(fmt.Sprintf("This will move files into %s. Continue?", cfg.Destination()))
		if err != nil || !ok {
			m.cancelled(err)
			return false, err
		}
		_, err = runOrganize(ctx, m.cc, m.out)
		return false, err
	case "2":
		ok, err := m.prompt.confirm(fmt.Sprintf("This will DELETE images smaller than %s. Continue?", m.threshold))
		if err != nil || !ok {
			m.cancelled(err)
			return false, err
		}
		_, err = runSweep(ctx, m.cc, m.out, m.threshold, false)
		return false, err
	case "3":
		return false, m.changeThreshold()
	case "4":
		ok, err := m.prompt.confirm("This will DELETE ALL FILES inside recup_dir.*. Are you sure?")
		if err != nil || !ok {
			m.cancelled(err)
			return false, err
		}
		_, err = runClean(ctx, m.cc, m.out)
		return false, err
	case "5":
		fmt.Fprint(m.out, helpText(m.threshold))
		return false, nil
	case "0":
		fmt.Fprintln(m.out, "Goodbye.")
		return true, nil
	default:
		fmt.Fprintln(m.out, "Invalid option")
		return false, nil
	}
}

func (m *menuSession) cancelled(err error) {
	if err == nil {
		fmt.Fprintln(m.out, "Operation cancelled")
	}
}

// changeThreshold keeps the current threshold unless both answers parse as
// positive integers.
func (m *menuSession) changeThreshold() error {
	width, err := m.prompt.ask("Enter new maximum width: ")
	if err != nil {
		return err
	}
	height, err := m.prompt.ask("Enter new maximum height: ")
	if err != nil {
		return err
	}
	threshold, err := sweeper.ParseThreshold(width, height)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid input, please enter positive whole numbers. Threshold stays %s.\n", m.threshold)
		return nil
	}
	m.threshold = threshold
	fmt.Fprintf(m.out, "Thumbnail size updated to %s.\n", m.threshold)
	return nil
}

const welcomeText = `============================================================
 PhotoRec Recovery Organizer & Cleanup Utility
============================================================

Run this after PhotoRec has finished. It sorts the recovered
files out of the recup_dir.* folders, removes small images that
are most likely thumbnails, and can empty the recup_dir.* folders.

Check that you can read and write the recovery directory.
Deletions are permanent.
`

func helpText(threshold sweeper.Threshold) string {
	return fmt.Sprintf(`
========== HELP ==========
1 - Organize recovery files
    Scans recup_dir.* folders and sorts files by type:
    - Large videos (1 GB and up) -> large_videos_1gb_plus/
    - Images with a camera model -> images_with_metadata/<model>/
    - Images without metadata    -> images_without_metadata/
    - Other media                -> <extension>/

2 - Delete thumbnail images
    Removes images smaller than the threshold in both width and height.
    Current threshold: %s

3 - Change thumbnail size
    Sets a new width and height for thumbnail deletion.

4 - Clean recup_dir.* folders
    Permanently deletes ALL files in recup_dir.* folders.
    WARNING: this cannot be undone.
==========================
`, threshold)
}
