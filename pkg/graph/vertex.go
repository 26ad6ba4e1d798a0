package graph

import (
	"cmp"
	"strconv"
)

// Vertex is a node in a [Graph]. The ID is assigned by the caller and is the
// vertex's identity for its whole lifetime: two vertices are equal exactly
// when their IDs are equal, and vertices sort by ID ascending. Value is an
// opaque payload the container never interprets; Weight defaults to zero.
//
// A Vertex belongs to at most one graph. Mutating the ID of a stored vertex
// is not supported.
type Vertex struct {
	ID     int64
	Value  any
	Weight float64
}

// NewVertex creates a vertex with the given ID and payload and zero weight.
func NewVertex(id int64, value any) *Vertex {
	return &Vertex{ID: id, Value: value}
}

// Equal reports whether both vertices carry the same ID.
// A nil vertex is only equal to another nil vertex.
func (v *Vertex) Equal(other *Vertex) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.ID == other.ID
}

// Compare orders vertices by ID ascending, returning -1, 0 or +1.
func (v *Vertex) Compare(other *Vertex) int {
	return cmp.Compare(v.ID, other.ID)
}

// String returns the decimal form of the vertex ID.
func (v *Vertex) String() string {
	return strconv.FormatInt(v.ID, 10)
}
