// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/pdiddy/board-tracker/pkg/types"
)

// Parsers is the extraction registry. Order is not semantically meaningful
// but is fixed so extraction output is reproducible.
var Parsers = []Parser{
	shapeWithTextParser{},
	connectorParser{},
	stickyParser{},
	textParser{},
}

var (
	shapeWithTextRe = elementPattern(types.NodeShapeWithText)
	connectorRe     = elementPattern(types.NodeConnector)
	stickyRe        = elementPattern(types.NodeSticky)
	textRe          = elementPattern(types.NodeText)
)

// shapeWithTextParser extracts labeled shapes.
type shapeWithTextParser struct{}

func (shapeWithTextParser) NodeType() string { return types.NodeShapeWithText }
func (shapeWithTextParser) Pattern() *regexp.Regexp { return shapeWithTextRe }
func (shapeWithTextParser) Build(m Match) types.Node {
	return types.Node{
		ID:     m.Attrs["id"],
		Type:   types.NodeShapeWithText,
		Name:   m.Attrs["name"],
		X:      safeFloat(m.Attrs["x"], 0),
		Y:      safeFloat(m.Attrs["y"], 0),
		Width:  safeFloat(m.Attrs["width"], 0),
		Height: safeFloat(m.Attrs["height"], 0),
		Text:   m.Text,
	}
}

// connectorParser extracts connectors between elements.
type connectorParser struct{}

func (connectorParser) NodeType() string { return types.NodeConnector }
func (connectorParser) Pattern() *regexp.Regexp { return connectorRe }
func (connectorParser) Build(m Match) types.Node {
	return types.Node{
		ID:                m.Attrs["id"],
		Type:              types.NodeConnector,
		X:                 safeFloat(m.Attrs["x"], 0),
		Y:                 safeFloat(m.Attrs["y"], 0),
		ConnectorStart:    m.Attrs["connectorStart"],
		ConnectorEnd:      m.Attrs["connectorEnd"],
		ConnectorStartCap: m.Attrs["connectorStartCap"],
		ConnectorEndCap:   m.Attrs["connectorEndCap"],
		Text:              m.Text,
	}
}

// stickyParser extracts sticky notes.
type stickyParser struct{}

func (stickyParser) NodeType() string { return types.NodeSticky }
func (stickyParser) Pattern() *regexp.Regexp { return stickyRe }
func (stickyParser) Build(m Match) types.Node {
	return types.Node{
		ID:     m.Attrs["id"],
		Type:   types.NodeSticky,
		X:      safeFloat(m.Attrs["x"], 0),
		Y:      safeFloat(m.Attrs["y"], 0),
		Color:  m.Attrs["color"],
		Author: m.Attrs["author"],
		Width:  safeFloat(m.Attrs["width"], 0),
		Height: safeFloat(m.Attrs["height"], 0),
		Text:   m.Text,
	}
}

// textParser extracts standalone text labels. They usually appear
// self-closing with the content in the name attribute, so the name doubles
// as the node text.
type textParser struct{}

func (textParser) NodeType() string { return types.NodeText }
func (textParser) Pattern() *regexp.Regexp { return textRe }
func (textParser) Build(m Match) types.Node {
	name := m.Attrs["name"]
	return types.Node{
		ID:     m.Attrs["id"],
		Type:   types.NodeText,
		Name:   name,
		X:      safeFloat(m.Attrs["x"], 0),
		Y:      safeFloat(m.Attrs["y"], 0),
		Width:  safeFloat(m.Attrs["width"], 0),
		Height: safeFloat(m.Attrs["height"], 0),
		Text:   name,
	}
}
