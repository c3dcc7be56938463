// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/board-tracker/internal/diff"
)

var captureCmd = &cobra.Command{
	Use:   "capture [file]",
	Short: "Parse a board markup dump and store it as a snapshot",
	Long: `Capture reads a raw board markup dump from a file (or stdin when no
file is given), extracts its typed nodes, and stores the result as a
timestamped snapshot for the selected board.

With --compare the new snapshot is diffed against the previously latest
one and the change report is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCapture,
}

func runCapture(cmd *cobra.Command, args []string) error {
	raw, err := readDump(args)
	if err != nil {
		return err
	}

	t, err := newTracker(cmd)
	if err != nil {
		return err
	}

	// Remember the previous latest before saving so --compare can diff
	// against it.
	previous, err := t.Load("")
	if err != nil {
		return err
	}

	snap := t.Capture(raw)
	locator, err := t.Save(snap)
	if err != nil {
		return err
	}
	fmt.Printf("Captured %d nodes to %s\n", snap.NodeCount, locator)

	compare, _ := cmd.Flags().GetBool("compare")
	if !compare {
		return nil
	}
	if previous == nil {
		fmt.Println("No previous snapshot to compare against.")
		return nil
	}

	report, err := t.Compare(previous.Timestamp, snap.Timestamp, diffOptions(cmd))
	if err != nil {
		return err
	}
	diff.Render(os.Stdout, report)
	return nil
}

// readDump reads the raw markup from the named file, or stdin when the
// argument is absent or "-".
func readDump(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading dump %s: %w", args[0], err)
	}
	return string(data), nil
}

func init() {
	captureCmd.Flags().Bool("compare", false, "diff the new snapshot against the previous latest")
	captureCmd.Flags().Bool("positions", false, "report position-only changes when comparing")

	rootCmd.AddCommand(captureCmd)
}
