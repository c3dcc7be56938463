// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest capture state for a board",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	t, err := newTracker(cmd)
	if err != nil {
		return err
	}

	status, err := t.CurrentStatus()
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	banner := strings.Repeat("=", 60)
	fmt.Println(banner)
	fmt.Printf("Snapshot Status: %s\n", status.DisplayName)
	fmt.Println(banner)
	if status.LastSnapshot != "" {
		fmt.Printf("  Last snapshot: %s (%s)\n", status.LastSnapshot, status.LastSnapshotAgo)
		fmt.Printf("  Nodes captured: %d\n", status.LastNodeCount)
	} else {
		fmt.Println("  No snapshots yet - this will be the first!")
	}
	fmt.Printf("  Total snapshots: %d\n", status.TotalSnapshots)
	fmt.Println(banner)
	fmt.Println("Run 'board-tracker capture <dump-file> --compare' to record a new snapshot.")
	return nil
}

func init() {
	statusCmd.Flags().Bool("json", false, "output the status as JSON")

	rootCmd.AddCommand(statusCmd)
}
