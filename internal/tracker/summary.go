// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracker

import (
	"fmt"
	"time"

	"github.com/pdiddy/board-tracker/pkg/types"
)

// Summary aggregates per-kind node counts for one snapshot.
type Summary struct {
	BoardName   string         `json:"board_name"`
	Timestamp   string         `json:"timestamp"`
	SectionName string         `json:"section_name"`
	TotalNodes  int            `json:"total_nodes"`
	NodeTypes   map[string]int `json:"node_types"`
}

// Summarize builds a Summary for the snapshot at timestamp, or the latest
// when timestamp is empty. Returns nil when no snapshot exists.
func (t *Tracker) Summarize(timestamp string) (*Summary, error) {
	snap, err := t.store.Load(timestamp)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}

	counts := make(map[string]int)
	for _, n := range snap.Nodes {
		counts[n.Type]++
	}

	return &Summary{
		BoardName:   snap.BoardName,
		Timestamp:   snap.Timestamp,
		SectionName: snap.SectionName,
		TotalNodes:  len(snap.Nodes),
		NodeTypes:   counts,
	}, nil
}

// Status reports the board's latest capture state.
type Status struct {
	BoardName       string `json:"board_name"`
	DisplayName     string `json:"display_name"`
	TotalSnapshots  int    `json:"total_snapshots"`
	LastSnapshot    string `json:"last_snapshot,omitempty"`
	LastSnapshotAgo string `json:"last_snapshot_ago,omitempty"`
	LastNodeCount   int    `json:"last_node_count,omitempty"`
}

// CurrentStatus returns the latest snapshot metadata for the board, with a
// human "time ago" rendering of the last capture.
func (t *Tracker) CurrentStatus() (*Status, error) {
	entries, err := t.store.List()
	if err != nil {
		return nil, err
	}

	status := &Status{
		BoardName:      t.BoardName,
		DisplayName:    t.Board.Name,
		TotalSnapshots: len(entries),
	}
	if len(entries) > 0 {
		latest := entries[0]
		status.LastSnapshot = latest.Timestamp
		status.LastSnapshotAgo = timeAgo(latest.Timestamp, t.now())
		status.LastNodeCount = latest.NodeCount
	}
	return status, nil
}

// timeAgo renders how long ago a snapshot timestamp was captured.
func timeAgo(timestamp string, now time.Time) string {
	ts, err := time.ParseInLocation(types.TimestampLayout, timestamp, now.Location())
	if err != nil {
		return "unknown"
	}

	d := now.Sub(ts)
	switch {
	case d >= 24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d >= time.Hour:
		return plural(int(d.Hours()), "hour")
	case d >= time.Minute:
		return plural(int(d.Minutes()), "minute")
	default:
		return "just now"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
