// Package manifest loads graph definitions from TOML documents.
//
// A manifest names the graph and lists its vertices and edges:
//
//	name = "G"
//
//	[[vertex]]
//	id = 1
//	value = "1v"
//
//	[[vertex]]
//	id = 6
//	value = "6v"
//
//	[[edge]]
//	tail = 1
//	head = 6
//	weight = 1.6
//	label = "e16"
//
// Vertices must precede the edges that reference them only logically, not
// positionally: all vertices are inserted first, then all edges. Duplicate
// vertex IDs, duplicate edge keys and edges referencing unknown vertices are
// load errors, since a manifest is expected to describe the graph exactly.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lkarlsson/dotgraph/pkg/graph"
)

var (
	// ErrDuplicateVertex is returned when two vertex tables share an ID.
	ErrDuplicateVertex = errors.New("manifest: duplicate vertex id")

	// ErrDuplicateEdge is returned when two edge tables produce the same
	// composite key.
	ErrDuplicateEdge = errors.New("manifest: duplicate edge")
)

// Document is the TOML shape of a graph definition.
type Document struct {
	Name     string      `toml:"name"`
	Vertices []VertexDef `toml:"vertex"`
	Edges    []EdgeDef   `toml:"edge"`
}

// VertexDef defines one vertex table.
type VertexDef struct {
	ID     int64   `toml:"id"`
	Value  any     `toml:"value"`
	Weight float64 `toml:"weight"`
}

// EdgeDef defines one edge table. Directed, weight and label are optional
// and default to false, 0 and "".
type EdgeDef struct {
	Tail     int64   `toml:"tail"`
	Head     int64   `toml:"head"`
	Directed bool    `toml:"directed"`
	Weight   float64 `toml:"weight"`
	Label    string  `toml:"label"`
}

// Load reads and builds the graph defined in the TOML file at path.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a TOML graph definition from r and builds the graph.
func Decode(r io.Reader) (*graph.Graph, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return Build(doc)
}

// Build constructs a graph from an already decoded document.
func Build(doc Document) (*graph.Graph, error) {
	name := doc.Name
	if name == "" {
		name = "G"
	}
	g := graph.New(name)

	for _, v := range doc.Vertices {
		if !g.InsertVertex(&graph.Vertex{ID: v.ID, Value: v.Value, Weight: v.Weight}) {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateVertex, v.ID)
		}
	}

	for _, e := range doc.Edges {
		opts := []graph.EdgeOption{
			graph.WithDirected(e.Directed),
			graph.WithWeight(e.Weight),
			graph.WithLabel(e.Label),
		}
		added, err := g.AddEdge(e.Tail, e.Head, opts...)
		if err != nil {
			return nil, err
		}
		if !added {
			return nil, fmt.Errorf("%w: (%d, %d, directed=%t)", ErrDuplicateEdge, e.Tail, e.Head, e.Directed)
		}
	}

	return g, nil
}
