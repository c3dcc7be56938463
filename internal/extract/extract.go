// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns raw board markup dumps into typed nodes. The dump
// is not guaranteed to be well-formed XML (self-closing tags, missing
// attributes, free-form inner text), so extraction is a flat pattern match
// per node kind rather than a structural parse: each parser scans the full
// text independently and malformed input degrades to default field values.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/board-tracker/pkg/types"
)

// Match is one element occurrence: its attribute map and inner text.
type Match struct {
	Attrs map[string]string
	Text  string
}

// Parser extracts all nodes of one kind from raw markup. Build never
// fails; fields it cannot populate stay at their zero value.
type Parser interface {
	NodeType() string
	Pattern() *regexp.Regexp
	Build(m Match) types.Node
}

// attrRe matches one key="value" pair inside an element tag.
var attrRe = regexp.MustCompile(`([A-Za-z][A-Za-z0-9_-]*)="([^"]*)"`)

// elementPattern compiles the pattern for one element kind. It captures
// the attribute block and the inner text up to the closing tag, and also
// matches self-closing elements (empty inner text). Attributes are parsed
// from the captured block separately, so their order never matters.
func elementPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`<` + tag + `((?:\s[^>]*?)?)\s*(?:/>|>([^<]*)</` + tag + `>)`)
}

// parseAttrs extracts every key="value" pair from an attribute block.
func parseAttrs(block string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrRe.FindAllStringSubmatch(block, -1) {
		attrs[m[1]] = m[2]
	}
	return attrs
}

// Nodes runs every registered parser over content and concatenates the
// results in registry order. Elements without an id and element kinds with
// no parser are skipped silently; a malformed attribute never aborts
// extraction of its element or its siblings.
func Nodes(content string) []types.Node {
	var nodes []types.Node
	for _, p := range Parsers {
		nodes = append(nodes, parseAll(p, content)...)
	}
	return nodes
}

// parseAll collects all non-overlapping occurrences of p's pattern.
func parseAll(p Parser, content string) []types.Node {
	var nodes []types.Node
	for _, m := range p.Pattern().FindAllStringSubmatch(content, -1) {
		attrs := parseAttrs(m[1])
		if attrs["id"] == "" {
			continue
		}
		nodes = append(nodes, p.Build(Match{Attrs: attrs, Text: strings.TrimSpace(m[2])}))
	}
	return nodes
}

// sectionRe matches the enclosing section element. Only the first
// occurrence counts; a dump describes at most one section.
var sectionRe = regexp.MustCompile(`<section(\s[^>]*?)/?>`)

// Section returns the id and name of the enclosing section, or empty
// strings when the dump has none.
func Section(content string) (id, name string) {
	m := sectionRe.FindStringSubmatch(content)
	if m == nil {
		return "", ""
	}
	attrs := parseAttrs(m[1])
	return attrs["id"], attrs["name"]
}

// safeFloat converts a raw attribute value to a float64, returning def
// when the value is missing, empty, or unparsable. Board dumps are
// best-effort markup; numeric attributes are never trusted.
func safeFloat(value string, def float64) float64 {
	if value == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return def
	}
	return f
}
