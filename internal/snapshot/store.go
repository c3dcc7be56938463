// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot persists board snapshots. Two backends implement the
// same narrow contract: a JSON file store with an index.json, and a SQLite
// store keyed by timestamp.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pdiddy/board-tracker/pkg/types"
)

// Store is the persistence contract the tracker depends on.
//
// Save persists a snapshot keyed by its timestamp and returns a locator;
// saving the same timestamp again replaces the earlier record. Load
// returns the snapshot for a timestamp, or the most recent one when the
// timestamp is empty; an absent snapshot is (nil, nil), not an error.
// List returns snapshot metadata newest first by timestamp string order.
type Store interface {
	Save(snap *types.Snapshot) (string, error)
	Load(timestamp string) (*types.Snapshot, error)
	List() ([]types.IndexEntry, error)
}

const indexFile = "index.json"

// FileStore keeps one JSON document per snapshot in a board directory,
// alongside an index.json with per-snapshot metadata.
type FileStore struct {
	dir   string
	board types.BoardConfig
	now   func() time.Time
}

// NewFileStore returns a file store rooted at dir. The directory is
// created on first save.
func NewFileStore(dir string, board types.BoardConfig) *FileStore {
	return &FileStore{dir: dir, board: board, now: time.Now}
}

// Save writes the snapshot document and updates the index. It returns the
// path of the snapshot file.
func (s *FileStore) Save(snap *types.Snapshot) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}

	filename := snap.Timestamp + ".json"
	path := filepath.Join(s.dir, filename)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}

	if err := s.updateIndex(snap, filename); err != nil {
		return "", err
	}
	return path, nil
}

// updateIndex appends the snapshot's metadata to index.json, replacing any
// existing entry with the same timestamp so retried saves stay idempotent.
func (s *FileStore) updateIndex(snap *types.Snapshot, filename string) error {
	index, err := s.loadIndex()
	if err != nil {
		return err
	}

	entry := types.IndexEntry{
		Timestamp:   snap.Timestamp,
		Filename:    filename,
		NodeCount:   len(snap.Nodes),
		SectionName: snap.SectionName,
		CreatedAt:   s.now().Format(time.RFC3339),
	}

	replaced := false
	for i, e := range index.Snapshots {
		if e.Timestamp == snap.Timestamp {
			index.Snapshots[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		index.Snapshots = append(index.Snapshots, entry)
	}
	index.TotalSnapshots = len(index.Snapshots)
	index.LastUpdated = s.now().Format(time.RFC3339)

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, indexFile), data, 0o644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// loadIndex reads index.json, or returns a fresh index carrying the board
// identity when none exists yet.
func (s *FileStore) loadIndex() (*types.SnapshotIndex, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, indexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &types.SnapshotIndex{
				BoardName: s.board.Name,
				FileKey:   s.board.FileKey,
				NodeID:    s.board.NodeID,
			}, nil
		}
		return nil, fmt.Errorf("reading index: %w", err)
	}

	var index types.SnapshotIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}
	return &index, nil
}

// Load reads one snapshot by timestamp, or the most recent when timestamp
// is empty. A missing snapshot returns (nil, nil).
func (s *FileStore) Load(timestamp string) (*types.Snapshot, error) {
	if timestamp == "" {
		entries, err := s.List()
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			return nil, nil
		}
		timestamp = entries[0].Timestamp
	}

	data, err := os.ReadFile(filepath.Join(s.dir, timestamp+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot %s: %w", timestamp, err)
	}

	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", timestamp, err)
	}
	return &snap, nil
}

// List returns the indexed snapshot metadata, newest first.
func (s *FileStore) List() ([]types.IndexEntry, error) {
	index, err := s.loadIndex()
	if err != nil {
		return nil, err
	}

	entries := make([]types.IndexEntry, len(index.Snapshots))
	copy(entries, index.Snapshots)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries, nil
}
