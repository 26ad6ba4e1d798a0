package graph

import "errors"

var (
	// ErrVertexNotFound is returned by [Graph.Vertex] when no vertex with the
	// requested ID exists, and propagated by [Graph.AddEdge] when an endpoint
	// is missing.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound is returned by [Graph.Edge] and [Graph.SetEdgeDirected]
	// when no edge with the requested composite key exists.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEdgeExists is returned by [Graph.SetEdgeDirected] when flipping the
	// direction flag would collide with an edge already stored under the
	// re-keyed composite key.
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrInvalidEdgeID is returned by [EdgeID.Name] when the composite key
	// cannot be expressed in canonical text form: tail and head must be
	// positive and the direction flag must be 0 or 1.
	ErrInvalidEdgeID = errors.New("graph: invalid edge id")

	// ErrInvalidEdgeName is returned by [ParseEdgeName] when the text is not
	// exactly a tail, a recognized direction token and a head separated by
	// spaces.
	ErrInvalidEdgeName = errors.New("graph: invalid edge name")

	// ErrNilFormatter is returned by the Format methods when no formatter is
	// supplied.
	ErrNilFormatter = errors.New("graph: nil formatter")
)
