// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/board-tracker/internal/diff"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two stored snapshots and report the changes",
	Long: `Compare diffs two stored snapshots of the selected board and classifies
every node as added, removed, or modified. Without --from/--to the two most
recent snapshots are compared. Position-only changes are ignored unless
--positions is given.

With fewer than two stored snapshots the report is empty and the missing
timestamps show as "(none)".`,
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	t, err := newTracker(cmd)
	if err != nil {
		return err
	}

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	report, err := t.Compare(from, to, diffOptions(cmd))
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "":
		diff.Render(os.Stdout, report)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report.Document())
	case "yaml":
		data, err := yaml.Marshal(report.Document())
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		os.Stdout.Write(data)
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
	return nil
}

// diffOptions maps the --positions flag onto diff options. The default
// ignores positional noise.
func diffOptions(cmd *cobra.Command) diff.Options {
	opts := diff.DefaultOptions()
	if positions, _ := cmd.Flags().GetBool("positions"); positions {
		opts.IgnorePositions = false
	}
	return opts
}

func init() {
	compareCmd.Flags().String("from", "", "older snapshot timestamp (default: second-latest)")
	compareCmd.Flags().String("to", "", "newer snapshot timestamp (default: latest)")
	compareCmd.Flags().Bool("positions", false, "report position-only changes")
	compareCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(compareCmd)
}
