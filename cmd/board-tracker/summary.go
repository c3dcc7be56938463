// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [timestamp]",
	Short: "Show per-kind node counts for one snapshot",
	Long: `Summary shows the node breakdown of one stored snapshot: total count
and per-kind counts. Without a timestamp the latest snapshot is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	t, err := newTracker(cmd)
	if err != nil {
		return err
	}

	timestamp := ""
	if len(args) > 0 {
		timestamp = args[0]
	}

	summary, err := t.Summarize(timestamp)
	if err != nil {
		return err
	}
	if summary == nil {
		fmt.Println("No snapshots found")
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	banner := strings.Repeat("=", 60)
	fmt.Println(banner)
	fmt.Println("Snapshot Summary")
	fmt.Println(banner)
	fmt.Printf("  Board: %s\n", summary.BoardName)
	fmt.Printf("  Timestamp: %s\n", summary.Timestamp)
	fmt.Printf("  Section: %s\n", summary.SectionName)
	fmt.Printf("  Total Nodes: %d\n", summary.TotalNodes)
	fmt.Println("  Node Types:")

	kinds := make([]string, 0, len(summary.NodeTypes))
	for kind := range summary.NodeTypes {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("    - %s: %d\n", kind, summary.NodeTypes[kind])
	}
	fmt.Println(banner)
	return nil
}

func init() {
	summaryCmd.Flags().Bool("json", false, "output the summary as JSON")

	rootCmd.AddCommand(summaryCmd)
}
