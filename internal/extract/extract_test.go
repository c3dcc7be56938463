package extract

import (
	"reflect"
	"testing"

	"github.com/pdiddy/board-tracker/pkg/types"
)

const sampleDump = `<section id="sec-1" name="Sprint Planning">
<shape-with-text id="s1" x="10" y="20" width="100" height="50" name="Start">Begin here</shape-with-text>
<connector id="c1" x="15" y="25" connectorStart="s1" connectorStartCap="none" connectorEnd="s2" connectorEndCap="arrow">depends on</connector>
<sticky id="n1" x="5.5" y="-3" color="yellow" author="Ana" width="200" height="200">Remember the demo</sticky>
<text id="t1" name="Title label" x="0" y="0" width="80" height="20"/>
<widget id="w1">some unsupported kind</widget>
</section>`

func TestNodes_SampleDump(t *testing.T) {
	nodes := Nodes(sampleDump)

	want := []types.Node{
		{ID: "s1", Type: types.NodeShapeWithText, Name: "Start", X: 10, Y: 20, Width: 100, Height: 50, Text: "Begin here"},
		{ID: "c1", Type: types.NodeConnector, X: 15, Y: 25, ConnectorStart: "s1", ConnectorEnd: "s2", ConnectorStartCap: "none", ConnectorEndCap: "arrow", Text: "depends on"},
		{ID: "n1", Type: types.NodeSticky, X: 5.5, Y: -3, Color: "yellow", Author: "Ana", Width: 200, Height: 200, Text: "Remember the demo"},
		{ID: "t1", Type: types.NodeText, Name: "Title label", Width: 80, Height: 20, Text: "Title label"},
	}

	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("Nodes() = %+v, want %+v", nodes, want)
	}
}

func TestNodes_Deterministic(t *testing.T) {
	first := Nodes(sampleDump)
	second := Nodes(sampleDump)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNodes_AttributeOrderTolerant(t *testing.T) {
	a := Nodes(`<sticky id="n1" x="5" y="6" color="pink" author="Bo">note</sticky>`)
	b := Nodes(`<sticky author="Bo" color="pink" y="6" x="5" id="n1">note</sticky>`)

	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("expected one node each, got %d and %d", len(a), len(b))
	}
	if !reflect.DeepEqual(a[0], b[0]) {
		t.Errorf("attribute order changed the result:\na: %+v\nb: %+v", a[0], b[0])
	}
}

func TestNodes_MalformedNumericDefaults(t *testing.T) {
	nodes := Nodes(`<sticky id="n1" x="abc" y="" width="12.5" height="oops">hello</sticky>`)
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}

	n := nodes[0]
	if n.X != 0 || n.Y != 0 || n.Height != 0 {
		t.Errorf("malformed numeric attributes should default to 0, got x=%g y=%g height=%g", n.X, n.Y, n.Height)
	}
	if n.Width != 12.5 {
		t.Errorf("valid width lost: got %g, want 12.5", n.Width)
	}
	if n.Text != "hello" {
		t.Errorf("sibling field lost: got text %q", n.Text)
	}
}

func TestNodes_MissingIDSkipped(t *testing.T) {
	nodes := Nodes(`<sticky x="1" y="2">no identity</sticky><sticky id="n2">kept</sticky>`)
	if len(nodes) != 1 || nodes[0].ID != "n2" {
		t.Errorf("expected only n2, got %+v", nodes)
	}
}

func TestNodes_MultipleOfSameKind(t *testing.T) {
	nodes := Nodes(`<sticky id="a">one</sticky> filler <sticky id="b">two</sticky><sticky id="c">three</sticky>`)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	for i, want := range []string{"a", "b", "c"} {
		if nodes[i].ID != want {
			t.Errorf("node %d: got id %q, want %q", i, nodes[i].ID, want)
		}
	}
}

func TestNodes_UnknownKindIgnored(t *testing.T) {
	nodes := Nodes(`<widget id="w1" x="3">future kind</widget>`)
	if len(nodes) != 0 {
		t.Errorf("unknown element kinds should be ignored, got %+v", nodes)
	}
}

func TestNodes_EmptyInput(t *testing.T) {
	if nodes := Nodes(""); len(nodes) != 0 {
		t.Errorf("empty input should yield no nodes, got %+v", nodes)
	}
}

func TestSection(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantID   string
		wantName string
	}{
		{"present", sampleDump, "sec-1", "Sprint Planning"},
		{"attribute order reversed", `<section name="Main" id="s9">`, "s9", "Main"},
		{"self-closing", `<section id="s2" name="Side"/>`, "s2", "Side"},
		{"absent", `<sticky id="n1">x</sticky>`, "", ""},
		{"first occurrence wins", `<section id="a" name="A"><section id="b" name="B">`, "a", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, name := Section(tt.content)
			if id != tt.wantID || name != tt.wantName {
				t.Errorf("Section() = (%q, %q), want (%q, %q)", id, name, tt.wantID, tt.wantName)
			}
		})
	}
}

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		value string
		def   float64
		want  float64
	}{
		{"42", 0, 42},
		{"-7.25", 0, -7.25},
		{" 3 ", 0, 3},
		{"", 0, 0},
		{"", 9, 9},
		{"abc", 0, 0},
		{"12px", 5, 5},
	}

	for _, tt := range tests {
		if got := safeFloat(tt.value, tt.def); got != tt.want {
			t.Errorf("safeFloat(%q, %g) = %g, want %g", tt.value, tt.def, got, tt.want)
		}
	}
}
