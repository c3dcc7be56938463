// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored snapshots for a board, newest first",
	RunE:  runSnapshots,
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	t, err := newTracker(cmd)
	if err != nil {
		return err
	}

	entries, err := t.List()
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Printf("No snapshots found for board: %s\n", t.BoardName)
		return nil
	}

	banner := strings.Repeat("=", 60)
	fmt.Println(banner)
	fmt.Printf("Board Snapshots: %s\n", t.BoardName)
	fmt.Println(banner)
	for _, e := range entries {
		section := e.SectionName
		if section == "" {
			section = "N/A"
		}
		fmt.Printf("  %s | %4d nodes | %s\n", e.Timestamp, e.NodeCount, section)
	}
	fmt.Println(banner)
	fmt.Printf("Total: %d snapshots\n", len(entries))
	return nil
}

func init() {
	snapshotsCmd.Flags().Bool("json", false, "output the snapshot list as JSON")

	rootCmd.AddCommand(snapshotsCmd)
}
