package graph

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Graph is a named, concurrent container of vertices and edges.
//
// Structural mutations (adding or removing a vertex or an edge) are
// serialized behind a single write lock, so at most one mutation is in
// flight per graph and cascading removals cannot miss or double-process an
// edge. Reads take the shared side of the lock. The sorted snapshots served
// by [Graph.Vertices] and [Graph.Edges] are cached and invalidated on every
// mutation of the respective set; each cache has its own lock, acquired only
// while the structural lock is already held (or read-held), which keeps the
// lock order fixed.
//
// The zero value is not usable; use [New].
type Graph struct {
	name string

	mu        sync.RWMutex
	vertices  map[int64]*Vertex
	edges     map[EdgeID]*Edge
	edgeOrder []*Edge // insertion order, drives rendering

	directed atomic.Int64 // count of stored edges with the directed flag set

	vertIdxMu sync.Mutex
	vertIdx   []*Vertex // sorted by ID, nil when invalidated

	edgeIdxMu sync.Mutex
	edgeIdx   []*Edge // sorted by composite key, nil when invalidated
}

// New creates an empty graph with the given name. The name appears in the
// header of the rendered notation.
func New(name string) *Graph {
	return &Graph{
		name:     name,
		vertices: make(map[int64]*Vertex),
		edges:    make(map[EdgeID]*Edge),
	}
}

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// AddVertex creates a vertex from the given ID and payload and inserts it.
// It returns true when the ID was free and the vertex was stored, false when
// a vertex with that ID already exists; the stored vertex is never
// overwritten.
func (g *Graph) AddVertex(id int64, value any) bool {
	return g.InsertVertex(NewVertex(id, value))
}

// InsertVertex inserts a caller-built vertex under its ID. Semantics match
// [Graph.AddVertex]; a nil vertex is rejected.
func (g *Graph) InsertVertex(v *Vertex) bool {
	if v == nil {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[v.ID]; exists {
		return false
	}
	g.vertices[v.ID] = v
	g.invalidateVertexIndex()
	return true
}

// Vertex returns the vertex with the given ID, or a wrapped
// [ErrVertexNotFound].
func (g *Graph) Vertex(id int64) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.vertexLocked(id)
}

// vertexLocked resolves an ID to its vertex. Callers hold g.mu.
func (g *Graph) vertexLocked(id int64) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	return v, nil
}

// RemoveVertex removes the vertex with the given ID and returns it, or
// (nil, false) when no such vertex exists. Removal cascades: every edge
// whose tail or head is the removed vertex is removed as well, before the
// call returns, under the same mutation lock. The directed-edge counter and
// both index caches are adjusted accordingly.
func (g *Graph) RemoveVertex(id int64) (*Vertex, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	delete(g.vertices, id)
	g.invalidateVertexIndex()

	removed := 0
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, func(e *Edge) bool {
		if e.tail.ID != id && e.head.ID != id {
			return false
		}
		delete(g.edges, e.id)
		if e.directed {
			g.directed.Add(-1)
		}
		removed++
		return true
	})
	if removed > 0 {
		g.invalidateEdgeIndex()
	}

	return v, true
}

// EdgeOption configures an edge at creation time in [Graph.AddEdge].
type EdgeOption func(*edgeParams)

type edgeParams struct {
	directed bool
	weight   float64
	label    string
}

// WithDirected sets the edge's direction flag (edges default to undirected).
func WithDirected(directed bool) EdgeOption {
	return func(p *edgeParams) { p.directed = directed }
}

// WithWeight sets the edge weight (default 0).
func WithWeight(weight float64) EdgeOption {
	return func(p *edgeParams) { p.weight = weight }
}

// WithLabel sets the edge label (default empty).
func WithLabel(label string) EdgeOption {
	return func(p *edgeParams) { p.label = label }
}

// AddEdge resolves both endpoint IDs to stored vertices and inserts a new
// edge between them under its composite key. A missing endpoint fails with
// the lookup's wrapped [ErrVertexNotFound] and nothing is added. A key that
// is already present returns (false, nil) and leaves the stored edge
// untouched. On success the directed-edge counter is bumped when the edge is
// directed and the edge index cache is invalidated.
func (g *Graph) AddEdge(tailID, headID int64, opts ...EdgeOption) (bool, error) {
	var p edgeParams
	for _, opt := range opts {
		opt(&p)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	tail, err := g.vertexLocked(tailID)
	if err != nil {
		return false, fmt.Errorf("add edge: %w", err)
	}
	head, err := g.vertexLocked(headID)
	if err != nil {
		return false, fmt.Errorf("add edge: %w", err)
	}

	e := newEdge(tail, head, p.directed, p.weight, p.label)
	if _, exists := g.edges[e.id]; exists {
		return false, nil
	}
	g.edges[e.id] = e
	g.edgeOrder = append(g.edgeOrder, e)
	if e.directed {
		g.directed.Add(1)
	}
	g.invalidateEdgeIndex()
	return true, nil
}

// Edge returns the edge stored under the given composite key, or a wrapped
// [ErrEdgeNotFound].
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	return e, nil
}

// EdgeByName parses a canonical edge name ("<tail> -> <head>" or
// "<tail> -- <head>") and looks up the edge under the resulting key.
func (g *Graph) EdgeByName(name string) (*Edge, error) {
	id, err := ParseEdgeName(name)
	if err != nil {
		return nil, err
	}
	return g.Edge(id)
}

// RemoveEdge removes the edge stored under the given composite key and
// returns it, or (nil, false) when no such edge exists. On success the edge
// index cache is invalidated and the directed-edge counter decremented when
// the removed edge was directed.
func (g *Graph) RemoveEdge(id EdgeID) (*Edge, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, false
	}
	delete(g.edges, id)
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, func(x *Edge) bool { return x == e })
	if e.directed {
		g.directed.Add(-1)
	}
	g.invalidateEdgeIndex()
	return e, true
}

// SetEdgeDirected changes the direction flag of a stored edge. Because the
// flag is part of the composite key, the edge is re-keyed: it is removed
// from its old key, the flag and cached key are recomputed, and it is
// reinserted under the new one, all atomically under the mutation lock.
// Fails with [ErrEdgeNotFound] when no edge is stored under id, or with
// [ErrEdgeExists] when the re-keyed slot is taken. A no-op flip returns the
// edge unchanged. The edge keeps its position in insertion order.
func (g *Graph) SetEdgeDirected(id EdgeID, directed bool) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	if e.directed == directed {
		return e, nil
	}

	next := edgeKey(e.tail.ID, e.head.ID, directed)
	if _, taken := g.edges[next]; taken {
		return nil, fmt.Errorf("%w: %s", ErrEdgeExists, next)
	}

	delete(g.edges, id)
	e.setDirected(directed)
	g.edges[e.id] = e
	if directed {
		g.directed.Add(1)
	} else {
		g.directed.Add(-1)
	}
	g.invalidateEdgeIndex()
	return e, nil
}

// Vertices returns a snapshot of all vertices sorted by ID ascending. The
// snapshot is cached between mutations, so repeated calls without
// intervening mutation are cheap and return equal content. The returned
// slice is a copy; mutating it does not affect the graph.
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	g.vertIdxMu.Lock()
	defer g.vertIdxMu.Unlock()

	if g.vertIdx == nil {
		idx := make([]*Vertex, 0, len(g.vertices))
		for _, v := range g.vertices {
			idx = append(idx, v)
		}
		slices.SortFunc(idx, (*Vertex).Compare)
		g.vertIdx = idx
	}
	return slices.Clone(g.vertIdx)
}

// Edges returns a snapshot of all edges sorted by composite key ascending
// (tail, then direction flag, then head). Caching behaves as in
// [Graph.Vertices].
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	g.edgeIdxMu.Lock()
	defer g.edgeIdxMu.Unlock()

	if g.edgeIdx == nil {
		idx := make([]*Edge, 0, len(g.edges))
		for _, e := range g.edges {
			idx = append(idx, e)
		}
		slices.SortFunc(idx, (*Edge).Compare)
		g.edgeIdx = idx
	}
	return slices.Clone(g.edgeIdx)
}

// EdgeList returns a snapshot of all edges in insertion order. This is the
// order the rendered notation lists edges in.
func (g *Graph) EdgeList() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.edgeOrder)
}

// Order returns the number of vertices currently stored.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// Size returns the number of edges currently stored.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// DirectedEdgeCount returns the number of stored edges whose directed flag
// is set. The counter is maintained atomically alongside add/remove
// operations, so it is always consistent with completed mutations.
func (g *Graph) DirectedEdgeCount() int {
	return int(g.directed.Load())
}

// invalidateVertexIndex drops the sorted vertex cache. Callers hold g.mu.
func (g *Graph) invalidateVertexIndex() {
	g.vertIdxMu.Lock()
	g.vertIdx = nil
	g.vertIdxMu.Unlock()
}

// invalidateEdgeIndex drops the sorted edge cache. Callers hold g.mu.
func (g *Graph) invalidateEdgeIndex() {
	g.edgeIdxMu.Lock()
	g.edgeIdx = nil
	g.edgeIdxMu.Unlock()
}
