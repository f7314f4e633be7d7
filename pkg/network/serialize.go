package network

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// JSON Format
// =============================================================================

// networkJSON is the on-disk shape of a network.
type networkJSON struct {
	Directed bool       `json:"directed"`
	Nodes    []nodeJSON `json:"nodes"`
	Edges    []edgeJSON `json:"edges,omitempty"`
}

type nodeJSON struct {
	ID    string      `json:"id"`
	Attrs *Attributes `json:"attrs,omitempty"`
}

type edgeJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MarshalNetwork serializes a network to pretty-printed JSON bytes.
// Vertices appear in insertion order for stable diffs.
func MarshalNetwork(n *Network) ([]byte, error) {
	out := networkJSON{Directed: n.directed}
	for _, v := range n.vertices {
		nj := nodeJSON{ID: v.ID}
		if v.Attrs.Len() > 0 {
			nj.Attrs = v.Attrs
		}
		out.Nodes = append(out.Nodes, nj)
	}
	for _, e := range n.edges {
		out.Edges = append(out.Edges, edgeJSON{From: e.From, To: e.To})
	}
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalNetwork deserializes JSON bytes into a Network.
// Structural problems (duplicate vertices, dangling edge endpoints) surface
// as the same structured errors AddVertex/AddEdge raise.
func UnmarshalNetwork(data []byte) (*Network, error) {
	var in networkJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal network: %w", err)
	}

	out := New(in.Directed)
	for _, nj := range in.Nodes {
		v := Vertex{ID: nj.ID, Attrs: nj.Attrs}
		if v.Attrs == nil {
			v.Attrs = NewAttributes()
		}
		if err := out.AddVertex(v); err != nil {
			return nil, fmt.Errorf("add vertex %s: %w", nj.ID, err)
		}
	}
	for _, ej := range in.Edges {
		if err := out.AddEdge(ej.From, ej.To); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", ej.From, ej.To, err)
		}
	}
	return out, nil
}

// WriteNetworkFile writes a network to a JSON file.
func WriteNetworkFile(n *Network, path string) error {
	data, err := MarshalNetwork(n)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadNetworkFile reads a network from a JSON file.
func ReadNetworkFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalNetwork(data)
}
