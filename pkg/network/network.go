package network

import (
	"gonum.org/v1/gonum/mat"

	"github.com/elbamos/ggally/pkg/errors"
)

// =============================================================================
// Core Types
// =============================================================================

// Vertex is a node in the network: a string identifier plus a typed
// attribute store.
type Vertex struct {
	ID    string
	Attrs *Attributes
}

// NewVertex creates a vertex with an empty attribute store.
func NewVertex(id string) Vertex {
	return Vertex{ID: id, Attrs: NewAttributes()}
}

// Edge is an ordered pair of vertex identifiers. For undirected networks
// the order carries no meaning beyond insertion.
type Edge struct {
	From string
	To   string
}

// Network is an ordered vertex list plus an edge list.
// Vertex order is insertion order and is stable across Clone, which keeps
// layout and adjacency-matrix indices deterministic.
type Network struct {
	directed bool
	vertices []Vertex
	index    map[string]int
	edges    []Edge
}

// New creates an empty network.
func New(directed bool) *Network {
	return &Network{
		directed: directed,
		index:    make(map[string]int),
	}
}

// Directed reports whether edges carry direction.
func (n *Network) Directed() bool { return n.directed }

// VertexCount returns the number of vertices.
func (n *Network) VertexCount() int { return len(n.vertices) }

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int { return len(n.edges) }

// =============================================================================
// Mutation
// =============================================================================

// AddVertex inserts a vertex. The ID must be non-empty and unique.
func (n *Network) AddVertex(v Vertex) error {
	if v.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "vertex ID cannot be empty")
	}
	if _, exists := n.index[v.ID]; exists {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate vertex %q", v.ID)
	}
	if v.Attrs == nil {
		v.Attrs = NewAttributes()
	}
	n.index[v.ID] = len(n.vertices)
	n.vertices = append(n.vertices, v)
	return nil
}

// AddEdge appends an edge. Both endpoints must already exist.
func (n *Network) AddEdge(from, to string) error {
	if _, ok := n.index[from]; !ok {
		return errors.New(errors.ErrCodeVertexNotFound, "edge endpoint %q not found", from)
	}
	if _, ok := n.index[to]; !ok {
		return errors.New(errors.ErrCodeVertexNotFound, "edge endpoint %q not found", to)
	}
	n.edges = append(n.edges, Edge{From: from, To: to})
	return nil
}

// RemoveVertex deletes a vertex and every edge touching it.
// Removing an unknown ID is a no-op.
func (n *Network) RemoveVertex(id string) {
	pos, ok := n.index[id]
	if !ok {
		return
	}
	n.vertices = append(n.vertices[:pos], n.vertices[pos+1:]...)
	delete(n.index, id)
	for i := pos; i < len(n.vertices); i++ {
		n.index[n.vertices[i].ID] = i
	}

	kept := n.edges[:0]
	for _, e := range n.edges {
		if e.From != id && e.To != id {
			kept = append(kept, e)
		}
	}
	n.edges = kept
}

// =============================================================================
// Queries
// =============================================================================

// Vertex returns the vertex with the given ID.
func (n *Network) Vertex(id string) (Vertex, bool) {
	pos, ok := n.index[id]
	if !ok {
		return Vertex{}, false
	}
	return n.vertices[pos], true
}

// Vertices returns the vertices in insertion order.
// The returned slice is shared; callers must not reorder it.
func (n *Network) Vertices() []Vertex { return n.vertices }

// Edges returns the edge list. The returned slice is shared.
func (n *Network) Edges() []Edge { return n.edges }

// Index returns the position of a vertex in the ordered vertex list.
func (n *Network) Index(id string) (int, bool) {
	pos, ok := n.index[id]
	return pos, ok
}

// Degree returns the total degree of a vertex: for directed networks this
// is in-degree plus out-degree. Self-loops count twice.
func (n *Network) Degree(id string) int {
	d := 0
	for _, e := range n.edges {
		if e.From == id {
			d++
		}
		if e.To == id {
			d++
		}
	}
	return d
}

// Clone returns a deep copy. Attribute stores are copied, so mutating the
// clone never touches the original.
func (n *Network) Clone() *Network {
	out := New(n.directed)
	out.vertices = make([]Vertex, len(n.vertices))
	for i, v := range n.vertices {
		out.vertices[i] = Vertex{ID: v.ID, Attrs: v.Attrs.Clone()}
		out.index[v.ID] = i
	}
	out.edges = append(out.edges, n.edges...)
	return out
}

// =============================================================================
// Subsetting
// =============================================================================

// SubsetByWeight removes every vertex whose weighting value is strictly
// below threshold, together with its incident edges. The weighting value is
// the numeric attribute named by attr when non-empty, otherwise the
// vertex's total degree.
//
// A threshold of 0 with degree weighting retains every vertex. Attribute
// lookups that fail surface the store's error untranslated.
func (n *Network) SubsetByWeight(attr string, threshold float64) error {
	if threshold <= 0 && attr == "" {
		return nil
	}

	var doomed []string
	for _, v := range n.vertices {
		var w float64
		if attr != "" {
			val, err := v.Attrs.Number(attr)
			if err != nil {
				return err
			}
			w = val
		} else {
			w = float64(n.Degree(v.ID))
		}
		if w < threshold {
			doomed = append(doomed, v.ID)
		}
	}

	for _, id := range doomed {
		n.RemoveVertex(id)
	}
	return nil
}

// =============================================================================
// Adjacency
// =============================================================================

// AdjacencyMatrix builds the dense adjacency matrix over the current vertex
// order. Entry (i, j) counts edges from vertex i to vertex j; undirected
// edges contribute symmetrically.
func (n *Network) AdjacencyMatrix() *mat.Dense {
	size := len(n.vertices)
	if size == 0 {
		return mat.NewDense(1, 1, nil)
	}
	m := mat.NewDense(size, size, nil)
	for _, e := range n.edges {
		i, iOK := n.index[e.From]
		j, jOK := n.index[e.To]
		if !iOK || !jOK {
			continue
		}
		m.Set(i, j, m.At(i, j)+1)
		if !n.directed && i != j {
			m.Set(j, i, m.At(j, i)+1)
		}
	}
	return m
}
