package network

import (
	"sort"
	"strconv"

	gograph "gonum.org/v1/gonum/graph"

	"github.com/elbamos/ggally/pkg/errors"
)

// Normalize coerces a caller-supplied graph into a *Network.
//
// Accepted inputs:
//   - *Network: returned as-is (callers that mutate should Clone first)
//   - gonum graph.Directed: converted, direction preserved
//   - gonum graph.Undirected: converted
//
// Anything else fails with ErrCodeInvalidInput. The input is never mutated.
func Normalize(g any) (*Network, error) {
	switch t := g.(type) {
	case *Network:
		if t == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "network is nil")
		}
		return t, nil
	case gograph.Directed:
		return fromGonum(t, true), nil
	case gograph.Undirected:
		return fromGonum(t, false), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported graph type %T", g)
	}
}

// fromGonum converts a gonum graph into a Network. Node IDs become their
// decimal string form. Nodes are visited in ascending ID order so the
// resulting vertex order is deterministic.
func fromGonum(g gograph.Graph, directed bool) *Network {
	var ids []int64
	nodes := g.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := New(directed)
	for _, id := range ids {
		// IDs are unique within a gonum graph, so AddVertex cannot fail.
		_ = out.AddVertex(NewVertex(strconv.FormatInt(id, 10)))
	}

	for _, uid := range ids {
		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if !directed && vid < uid {
				// Undirected neighbors appear from both endpoints; keep one.
				continue
			}
			_ = out.AddEdge(strconv.FormatInt(uid, 10), strconv.FormatInt(vid, 10))
		}
	}
	return out
}
