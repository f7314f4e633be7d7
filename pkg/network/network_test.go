package network

import (
	"testing"

	"github.com/elbamos/ggally/pkg/errors"
)

// buildTriangle returns an undirected triangle a-b-c plus an isolated d.
func buildTriangle(t *testing.T) *Network {
	t.Helper()
	n := New(false)
	for _, id := range []string{"a", "b", "c", "d"} {
		if err := n.AddVertex(NewVertex(id)); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}
	for _, e := range []Edge{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		if err := n.AddEdge(e.From, e.To); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", e.From, e.To, err)
		}
	}
	return n
}

func TestAddVertex(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		prepare  func(n *Network)
		wantCode errors.Code
	}{
		{"Valid", "a", nil, ""},
		{"EmptyID", "", nil, errors.ErrCodeInvalidInput},
		{
			"Duplicate", "a",
			func(n *Network) { _ = n.AddVertex(NewVertex("a")) },
			errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(false)
			if tt.prepare != nil {
				tt.prepare(n)
			}
			err := n.AddVertex(NewVertex(tt.id))
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("AddVertex: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestAddEdgeValidatesEndpoints(t *testing.T) {
	n := New(true)
	if err := n.AddVertex(NewVertex("a")); err != nil {
		t.Fatal(err)
	}
	if err := n.AddEdge("a", "ghost"); !errors.Is(err, errors.ErrCodeVertexNotFound) {
		t.Errorf("AddEdge to missing vertex: code = %s, want VERTEX_NOT_FOUND", errors.GetCode(err))
	}
	if err := n.AddEdge("ghost", "a"); !errors.Is(err, errors.ErrCodeVertexNotFound) {
		t.Errorf("AddEdge from missing vertex: code = %s, want VERTEX_NOT_FOUND", errors.GetCode(err))
	}
}

func TestDegree(t *testing.T) {
	n := buildTriangle(t)

	tests := []struct {
		id   string
		want int
	}{
		{"a", 2},
		{"b", 2},
		{"c", 2},
		{"d", 0},
	}
	for _, tt := range tests {
		if got := n.Degree(tt.id); got != tt.want {
			t.Errorf("Degree(%s) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestDegreeDirectedCountsBothDirections(t *testing.T) {
	n := New(true)
	_ = n.AddVertex(NewVertex("hub"))
	_ = n.AddVertex(NewVertex("x"))
	_ = n.AddVertex(NewVertex("y"))
	_ = n.AddEdge("x", "hub")
	_ = n.AddEdge("hub", "y")

	if got := n.Degree("hub"); got != 2 {
		t.Errorf("Degree(hub) = %d, want 2", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	n := buildTriangle(t)
	v, _ := n.Vertex("a")
	v.Attrs.SetNumber("w", 1)

	clone := n.Clone()
	clone.RemoveVertex("a")
	cv, _ := clone.Vertex("b")
	cv.Attrs.SetNumber("w", 99)

	if n.VertexCount() != 4 {
		t.Errorf("original vertex count = %d after clone mutation, want 4", n.VertexCount())
	}
	if n.EdgeCount() != 3 {
		t.Errorf("original edge count = %d after clone mutation, want 3", n.EdgeCount())
	}
	ov, _ := n.Vertex("b")
	if ov.Attrs.Has("w") {
		t.Error("attribute written to clone leaked into original")
	}
}

func TestRemoveVertex(t *testing.T) {
	n := buildTriangle(t)
	n.RemoveVertex("b")

	if n.VertexCount() != 3 {
		t.Errorf("vertex count = %d, want 3", n.VertexCount())
	}
	if n.EdgeCount() != 1 {
		t.Errorf("edge count = %d, want 1 (only c-a survives)", n.EdgeCount())
	}
	// Index must be rebuilt for vertices after the removal point.
	if pos, ok := n.Index("c"); !ok || pos != 1 {
		t.Errorf("Index(c) = %d, %v, want 1, true", pos, ok)
	}
	n.RemoveVertex("nope") // no-op
	if n.VertexCount() != 3 {
		t.Error("removing unknown vertex changed the network")
	}
}

func TestSubsetByWeight(t *testing.T) {
	tests := []struct {
		name      string
		attr      string
		threshold float64
		wantIDs   []string
		wantErr   errors.Code
	}{
		{"ZeroThresholdIsNoop", "", 0, []string{"a", "b", "c", "d"}, ""},
		{"DegreeDropsIsolated", "", 1, []string{"a", "b", "c"}, ""},
		{"AboveMaxDropsAll", "", 10, nil, ""},
		{"NamedAttribute", "score", 5, []string{"b"}, ""},
		{"MissingAttribute", "ghost", 1, nil, errors.ErrCodeAttributeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := buildTriangle(t)
			scores := map[string]float64{"a": 1, "b": 9, "c": 2, "d": 3}
			for id, s := range scores {
				v, _ := n.Vertex(id)
				v.Attrs.SetNumber("score", s)
			}

			err := n.SubsetByWeight(tt.attr, tt.threshold)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("code = %s, want %s", errors.GetCode(err), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SubsetByWeight: %v", err)
			}

			if n.VertexCount() != len(tt.wantIDs) {
				t.Fatalf("vertex count = %d, want %d", n.VertexCount(), len(tt.wantIDs))
			}
			for _, id := range tt.wantIDs {
				if _, ok := n.Vertex(id); !ok {
					t.Errorf("vertex %s missing after subset", id)
				}
			}
		})
	}
}

func TestSubsetRemovesIncidentEdges(t *testing.T) {
	n := buildTriangle(t)
	// Drop everything: no vertices, hence no edges.
	if err := n.SubsetByWeight("", 100); err != nil {
		t.Fatal(err)
	}
	if n.VertexCount() != 0 || n.EdgeCount() != 0 {
		t.Errorf("counts = %d vertices, %d edges, want 0, 0", n.VertexCount(), n.EdgeCount())
	}
}

func TestAdjacencyMatrix(t *testing.T) {
	n := buildTriangle(t)
	m := n.AdjacencyMatrix()

	r, c := m.Dims()
	if r != 4 || c != 4 {
		t.Fatalf("dims = %dx%d, want 4x4", r, c)
	}
	// Undirected: symmetric entries for a-b.
	ai, _ := n.Index("a")
	bi, _ := n.Index("b")
	if m.At(ai, bi) != 1 || m.At(bi, ai) != 1 {
		t.Errorf("a-b adjacency = (%v, %v), want (1, 1)", m.At(ai, bi), m.At(bi, ai))
	}
	di, _ := n.Index("d")
	if m.At(di, ai) != 0 {
		t.Errorf("d-a adjacency = %v, want 0", m.At(di, ai))
	}
}

func TestAdjacencyMatrixDirected(t *testing.T) {
	n := New(true)
	_ = n.AddVertex(NewVertex("u"))
	_ = n.AddVertex(NewVertex("v"))
	_ = n.AddEdge("u", "v")

	m := n.AdjacencyMatrix()
	if m.At(0, 1) != 1 {
		t.Errorf("u→v = %v, want 1", m.At(0, 1))
	}
	if m.At(1, 0) != 0 {
		t.Errorf("v→u = %v, want 0 in directed network", m.At(1, 0))
	}
}
