// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for board-tracker: nodes,
// snapshots, change reports, and configuration.
package types

// Node type vocabulary. The set is closed but small; adding a kind means
// adding a parser in internal/extract.
const (
	NodeShapeWithText = "shape-with-text"
	NodeConnector     = "connector"
	NodeSticky        = "sticky"
	NodeText          = "text"
)

// Node is one typed element extracted from a board markup dump. ID is the
// reconciliation key and is unique within a snapshot. All other fields are
// optional; a zero value means the source markup did not carry the
// attribute, and zero-valued fields are omitted from the serialized form.
type Node struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"node_type" yaml:"node_type"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`

	// Text is the element's content or label.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Color and Author are carried by note-like kinds.
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Connector endpoints. Empty for every other kind.
	ConnectorStart    string `json:"connector_start,omitempty" yaml:"connector_start,omitempty"`
	ConnectorEnd      string `json:"connector_end,omitempty" yaml:"connector_end,omitempty"`
	ConnectorStartCap string `json:"connector_start_cap,omitempty" yaml:"connector_start_cap,omitempty"`
	ConnectorEndCap   string `json:"connector_end_cap,omitempty" yaml:"connector_end_cap,omitempty"`
}
