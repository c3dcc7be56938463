// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diff reconciles two board snapshots by node identity and
// classifies every node as added, removed, or modified.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/board-tracker/pkg/types"
)

// detailTextLimit caps the text previews embedded in change details.
const detailTextLimit = 40

// Options control which field differences count as modifications.
type Options struct {
	// IgnorePositions suppresses changes where only x/y moved. Whiteboard
	// elements get rearranged constantly; callers opt in to positional
	// sensitivity explicitly.
	IgnorePositions bool
}

// DefaultOptions ignores position-only changes.
func DefaultOptions() Options {
	return Options{IgnorePositions: true}
}

// Compare classifies every node in oldSnap and newSnap as added, removed,
// or modified; unchanged nodes are never reported. Membership is fully
// determined by the two id-keyed node maps. Each category is emitted in
// sorted id order so output is stable across runs.
func Compare(oldSnap, newSnap *types.Snapshot, opts Options) *types.ChangeReport {
	oldNodes := nodeMap(oldSnap.Nodes)
	newNodes := nodeMap(newSnap.Nodes)

	report := &types.ChangeReport{
		BoardName:    newSnap.BoardName,
		FromSnapshot: oldSnap.Timestamp,
		ToSnapshot:   newSnap.Timestamp,
	}

	for _, id := range sortedIDs(newNodes) {
		if _, ok := oldNodes[id]; ok {
			continue
		}
		node := newNodes[id]
		report.Added = append(report.Added, types.NodeChange{
			ChangeType: types.ChangeAdded,
			NodeID:     id,
			NodeType:   node.Type,
			Name:       node.Name,
			NewText:    node.Text,
		})
	}

	for _, id := range sortedIDs(oldNodes) {
		if _, ok := newNodes[id]; ok {
			continue
		}
		node := oldNodes[id]
		report.Removed = append(report.Removed, types.NodeChange{
			ChangeType: types.ChangeRemoved,
			NodeID:     id,
			NodeType:   node.Type,
			Name:       node.Name,
			OldText:    node.Text,
		})
	}

	for _, id := range sortedIDs(oldNodes) {
		newNode, ok := newNodes[id]
		if !ok {
			continue
		}
		oldNode := oldNodes[id]
		changes := detectChanges(oldNode, newNode, opts)
		if len(changes) == 0 {
			continue
		}
		report.Modified = append(report.Modified, types.NodeChange{
			ChangeType: types.ChangeModified,
			NodeID:     id,
			NodeType:   newNode.Type,
			Name:       newNode.Name,
			OldText:    oldNode.Text,
			NewText:    newNode.Text,
			Details:    formatDetails(oldNode, newNode, changes),
		})
	}

	return report
}

// nodeMap keys a snapshot's nodes by id.
func nodeMap(nodes []types.Node) map[string]types.Node {
	m := make(map[string]types.Node, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n
	}
	return m
}

func sortedIDs(nodes map[string]types.Node) []string {
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// detectChanges compares two versions of a node field by field and returns
// one description per significant difference. All differences are
// accumulated; nothing short-circuits.
func detectChanges(oldNode, newNode types.Node, opts Options) []string {
	var changes []string

	if oldNode.Text != newNode.Text {
		changes = append(changes, "text changed")
	}

	if oldNode.Name != newNode.Name {
		changes = append(changes, fmt.Sprintf("name: '%s' -> '%s'", oldNode.Name, newNode.Name))
	}

	if oldNode.Type == types.NodeConnector {
		if oldNode.ConnectorStart != newNode.ConnectorStart {
			changes = append(changes, fmt.Sprintf("start: %s -> %s", oldNode.ConnectorStart, newNode.ConnectorStart))
		}
		if oldNode.ConnectorEnd != newNode.ConnectorEnd {
			changes = append(changes, fmt.Sprintf("end: %s -> %s", oldNode.ConnectorEnd, newNode.ConnectorEnd))
		}
	}

	if !opts.IgnorePositions {
		if oldNode.X != newNode.X || oldNode.Y != newNode.Y {
			changes = append(changes, fmt.Sprintf("moved from (%g, %g) to (%g, %g)",
				oldNode.X, oldNode.Y, newNode.X, newNode.Y))
		}
	}

	return changes
}

// formatDetails renders the change descriptions for one modified node.
// Text changes show truncated old and new text on -/+ lines; anything else
// joins the triggered descriptions with commas.
func formatDetails(oldNode, newNode types.Node, changes []string) string {
	if oldNode.Text != newNode.Text {
		return fmt.Sprintf("- %q\n    + %q",
			Truncate(oldNode.Text, detailTextLimit),
			Truncate(newNode.Text, detailTextLimit))
	}
	return strings.Join(changes, ", ")
}

// Truncate returns text unchanged when it is at most max characters long,
// otherwise its first max characters followed by "...".
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
