// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tracker orchestrates capture, persistence, and comparison for a
// single board: it resolves the board identity from configuration, parses
// raw markup into snapshots, and diffs stored snapshots into change reports.
package tracker

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/board-tracker/internal/diff"
	"github.com/pdiddy/board-tracker/internal/extract"
	"github.com/pdiddy/board-tracker/internal/snapshot"
	"github.com/pdiddy/board-tracker/pkg/types"
)

// nonePlaceholder fills the report timestamps when a comparison has no
// snapshots to work with.
const nonePlaceholder = "(none)"

// Tracker tracks one configured board.
type Tracker struct {
	BoardName string
	Board     types.BoardConfig
	store     snapshot.Store

	// Now supplies capture timestamps. Nil means time.Now; tests pin it.
	Now func() time.Time
}

// New resolves boardName against cfg and opens the configured store.
// An empty boardName selects the configured default. An unknown board is a
// caller error and fails immediately, naming the identity.
func New(cfg *types.Config, boardName string) (*Tracker, error) {
	if boardName == "" {
		boardName = cfg.DefaultBoard
	}
	board, ok := cfg.Boards[boardName]
	if !ok {
		return nil, fmt.Errorf("unknown board %q (configured boards: %s)",
			boardName, strings.Join(cfg.BoardNames(), ", "))
	}

	store, err := openStore(cfg.Storage, boardName, board)
	if err != nil {
		return nil, err
	}
	return &Tracker{BoardName: boardName, Board: board, store: store}, nil
}

// NewWithStore builds a tracker over an explicit store. Used by tests and
// by callers that manage storage themselves.
func NewWithStore(boardName string, board types.BoardConfig, store snapshot.Store) *Tracker {
	return &Tracker{BoardName: boardName, Board: board, store: store}
}

func openStore(cfg types.StorageConfig, boardName string, board types.BoardConfig) (snapshot.Store, error) {
	switch cfg.Backend {
	case "", types.BackendFile:
		return snapshot.NewFileStore(filepath.Join(cfg.DataDir, boardName), board), nil
	case types.BackendSQLite:
		return snapshot.NewSQLiteStore(filepath.Join(cfg.DataDir, boardName+".db"), board)
	default:
		return nil, fmt.Errorf("unknown storage backend %q: use %s or %s",
			cfg.Backend, types.BackendFile, types.BackendSQLite)
	}
}

// Capture parses raw board markup into a snapshot stamped with the current
// time. Parsing never fails: unknown elements are skipped and malformed
// attributes fall back to zero values.
func (t *Tracker) Capture(raw string) *types.Snapshot {
	snap := &types.Snapshot{
		BoardName:  t.BoardName,
		FileKey:    t.Board.FileKey,
		NodeID:     t.Board.NodeID,
		Timestamp:  t.now().Format(types.TimestampLayout),
		RawContent: raw,
	}
	snap.SectionID, snap.SectionName = extract.Section(raw)
	snap.Nodes = extract.Nodes(raw)
	snap.NodeCount = len(snap.Nodes)
	return snap
}

// Save persists the snapshot and returns its locator.
func (t *Tracker) Save(snap *types.Snapshot) (string, error) {
	return t.store.Save(snap)
}

// Load reads one stored snapshot, or the latest when timestamp is empty.
// Absent snapshots are (nil, nil).
func (t *Tracker) Load(timestamp string) (*types.Snapshot, error) {
	return t.store.Load(timestamp)
}

// List returns the board's snapshot metadata, newest first.
func (t *Tracker) List() ([]types.IndexEntry, error) {
	return t.store.List()
}

// Compare diffs two stored snapshots. Empty timestamps resolve to the two
// most recent snapshots. When fewer than two snapshots exist, or either
// one cannot be found, Compare returns an empty report with "(none)"
// placeholder timestamps rather than an error.
func (t *Tracker) Compare(fromTimestamp, toTimestamp string, opts diff.Options) (*types.ChangeReport, error) {
	fromTimestamp, toTimestamp, err := t.resolveTimestamps(fromTimestamp, toTimestamp)
	if err != nil {
		return nil, err
	}
	if fromTimestamp == "" || toTimestamp == "" {
		return t.emptyReport(fromTimestamp, toTimestamp), nil
	}

	oldSnap, err := t.store.Load(fromTimestamp)
	if err != nil {
		return nil, err
	}
	newSnap, err := t.store.Load(toTimestamp)
	if err != nil {
		return nil, err
	}
	if oldSnap == nil || newSnap == nil {
		return t.emptyReport(fromTimestamp, toTimestamp), nil
	}

	return diff.Compare(oldSnap, newSnap, opts), nil
}

// resolveTimestamps fills unset comparison endpoints from the snapshot
// index: the latest for "to", the second-latest for "from". With fewer
// than two stored snapshots both come back empty.
func (t *Tracker) resolveTimestamps(fromTimestamp, toTimestamp string) (string, string, error) {
	if fromTimestamp != "" && toTimestamp != "" {
		return fromTimestamp, toTimestamp, nil
	}

	entries, err := t.store.List()
	if err != nil {
		return "", "", err
	}
	if len(entries) < 2 {
		return "", "", nil
	}

	if toTimestamp == "" {
		toTimestamp = entries[0].Timestamp
	}
	if fromTimestamp == "" {
		fromTimestamp = entries[1].Timestamp
	}
	return fromTimestamp, toTimestamp, nil
}

func (t *Tracker) emptyReport(fromTimestamp, toTimestamp string) *types.ChangeReport {
	if fromTimestamp == "" {
		fromTimestamp = nonePlaceholder
	}
	if toTimestamp == "" {
		toTimestamp = nonePlaceholder
	}
	return &types.ChangeReport{
		BoardName:    t.BoardName,
		FromSnapshot: fromTimestamp,
		ToSnapshot:   toTimestamp,
	}
}

func (t *Tracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}
