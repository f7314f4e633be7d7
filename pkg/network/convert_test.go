package network

import (
	"testing"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/elbamos/ggally/pkg/errors"
)

func TestNormalizePassthrough(t *testing.T) {
	n := New(false)
	_ = n.AddVertex(NewVertex("a"))

	got, err := Normalize(n)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != n {
		t.Error("Normalize should pass a *Network through unchanged")
	}
}

func TestNormalizeDirectedGonum(t *testing.T) {
	g := simple.NewDirectedGraph()
	for i := int64(0); i < 3; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))
	g.SetEdge(g.NewEdge(simple.Node(1), simple.Node(2)))

	n, err := Normalize(g)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !n.Directed() {
		t.Error("directed gonum graph should produce a directed network")
	}
	if n.VertexCount() != 3 {
		t.Errorf("vertex count = %d, want 3", n.VertexCount())
	}
	if n.EdgeCount() != 2 {
		t.Errorf("edge count = %d, want 2", n.EdgeCount())
	}
	if _, ok := n.Vertex("0"); !ok {
		t.Error("node IDs should be decimal strings")
	}
	// Vertex order follows ascending node ID.
	if pos, _ := n.Index("2"); pos != 2 {
		t.Errorf("Index(2) = %d, want 2", pos)
	}
}

func TestNormalizeUndirectedGonum(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < 3; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))
	g.SetEdge(g.NewEdge(simple.Node(2), simple.Node(1)))

	n, err := Normalize(g)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if n.Directed() {
		t.Error("undirected gonum graph should produce an undirected network")
	}
	// Each undirected edge must appear exactly once.
	if n.EdgeCount() != 2 {
		t.Errorf("edge count = %d, want 2", n.EdgeCount())
	}
}

func TestNormalizeRejectsUnknownTypes(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"String", "not a graph"},
		{"Int", 42},
		{"NilNetwork", (*Network)(nil)},
		{"Nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %s, want INVALID_INPUT", errors.GetCode(err))
			}
		})
	}
}
