// Package graph provides a concurrent in-memory graph container.
//
// A [Graph] owns a set of vertices and a set of edges between them. Vertices
// are identified by a caller-assigned integer ID; edges are identified by the
// composite key [EdgeID] (tail ID, direction flag, head ID). The container is
// a pure data structure: it indexes, it does not traverse. Search, shortest
// paths and similar algorithms are deliberately out of scope and belong to
// callers, built on top of the read accessors.
//
// # Construction
//
// Vertices are created by callers and handed to the graph:
//
//	g := graph.New("G")
//	g.AddVertex(1, "one")
//	g.AddVertex(2, "two")
//	g.AddEdge(1, 2, graph.WithWeight(1.2), graph.WithLabel("e12"))
//
// Edges can only be created through [Graph.AddEdge]. There is no public edge
// constructor: this guarantees that both endpoints of every stored edge exist
// as vertices of the same graph.
//
// # Failure semantics
//
// Add operations report duplicates through their boolean result and never
// fail on them. Remove operations tolerate absence and report it through a
// boolean. Direct lookups ([Graph.Vertex], [Graph.Edge]) are strict and
// return a wrapped [ErrVertexNotFound] or [ErrEdgeNotFound]. The asymmetry
// is intentional: a failed lookup is a caller bug, a failed removal is not.
//
// # Concurrency
//
// All methods are safe for concurrent use. Structural mutations are
// serialized behind a single write lock per graph; reads take the shared
// side. The sorted snapshots returned by [Graph.Vertices] and [Graph.Edges]
// are cached and rebuilt lazily after mutations, each cache behind its own
// lock so concurrent readers see either the previous snapshot or a fully
// rebuilt one.
//
// # Rendering
//
// The package defines the [Formatter]/[Renderable] pair used to externalize
// graphs as text. The DOT-like notation lives in pkg/dot; provider lookup by
// notation name lives in pkg/notation.
package graph
