package network

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNetworkRoundTrip(t *testing.T) {
	n := New(true)
	v := NewVertex("ORD")
	v.Attrs.SetNumber("lon", -87.9)
	v.Attrs.SetNumber("lat", 41.9)
	v.Attrs.SetString("region", "midwest")
	v.Attrs.SetBool("hub", true)
	_ = n.AddVertex(v)
	_ = n.AddVertex(NewVertex("LHR"))
	_ = n.AddEdge("ORD", "LHR")

	data, err := MarshalNetwork(n)
	if err != nil {
		t.Fatalf("MarshalNetwork: %v", err)
	}

	got, err := UnmarshalNetwork(data)
	if err != nil {
		t.Fatalf("UnmarshalNetwork: %v", err)
	}

	if !got.Directed() {
		t.Error("directed flag lost in round trip")
	}
	if got.VertexCount() != 2 || got.EdgeCount() != 1 {
		t.Errorf("counts = %d vertices, %d edges, want 2, 1", got.VertexCount(), got.EdgeCount())
	}

	ord, ok := got.Vertex("ORD")
	if !ok {
		t.Fatal("ORD missing after round trip")
	}
	if lon, err := ord.Attrs.Number("lon"); err != nil || lon != -87.9 {
		t.Errorf("lon = %v, %v", lon, err)
	}
	if region, err := ord.Attrs.Text("region"); err != nil || region != "midwest" {
		t.Errorf("region = %q, %v", region, err)
	}
	if hub, err := ord.Attrs.Get("hub"); err != nil || hub.Kind() != KindBool {
		t.Errorf("hub kind = %v, %v, want bool", hub.Kind(), err)
	}
}

func TestUnmarshalNetworkRejectsDanglingEdges(t *testing.T) {
	data := `{"directed": false, "nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "ghost"}]}`
	_, err := UnmarshalNetwork([]byte(data))
	if err == nil {
		t.Fatal("expected error for dangling edge endpoint")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the missing endpoint: %v", err)
	}
}

func TestNetworkFileRoundTrip(t *testing.T) {
	n := New(false)
	_ = n.AddVertex(NewVertex("a"))
	_ = n.AddVertex(NewVertex("b"))
	_ = n.AddEdge("a", "b")

	path := filepath.Join(t.TempDir(), "net.json")
	if err := WriteNetworkFile(n, path); err != nil {
		t.Fatalf("WriteNetworkFile: %v", err)
	}

	got, err := ReadNetworkFile(path)
	if err != nil {
		t.Fatalf("ReadNetworkFile: %v", err)
	}
	if got.VertexCount() != 2 || got.EdgeCount() != 1 {
		t.Errorf("counts = %d, %d, want 2, 1", got.VertexCount(), got.EdgeCount())
	}
}

func TestReadNetworkFileMissing(t *testing.T) {
	if _, err := ReadNetworkFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
