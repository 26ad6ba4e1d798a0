package graph

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Direction tokens used in the canonical edge name and in the DOT-like
// rendering. The surrounding spaces are part of the token.
const (
	DirectedToken   = " -> "
	UndirectedToken = " -- "
)

// EdgeID is the composite key identifying an edge: tail vertex ID, direction
// flag and head vertex ID. Flag is 0 for undirected edges and 1 for directed
// ones; it participates in identity, so a directed edge and an undirected
// edge between the same endpoints are distinct. EdgeID is comparable and used
// directly as a map key.
type EdgeID struct {
	Tail int64
	Flag int8
	Head int64
}

// edgeKey builds the composite key for the given endpoints and orientation.
func edgeKey(tail, head int64, directed bool) EdgeID {
	id := EdgeID{Tail: tail, Head: head}
	if directed {
		id.Flag = 1
	}
	return id
}

// Compare orders composite keys by tail, then flag, then head, ascending.
func (id EdgeID) Compare(other EdgeID) int {
	if c := cmp.Compare(id.Tail, other.Tail); c != 0 {
		return c
	}
	if c := cmp.Compare(id.Flag, other.Flag); c != 0 {
		return c
	}
	return cmp.Compare(id.Head, other.Head)
}

// Name produces the canonical text form of the key: "<tail> -> <head>" for
// directed edges, "<tail> -- <head>" for undirected ones. It fails with
// [ErrInvalidEdgeID] when tail or head is not positive or the flag is
// neither 0 nor 1.
func (id EdgeID) Name() (string, error) {
	if id.Tail <= 0 || id.Head <= 0 {
		return "", fmt.Errorf("%w: endpoints must be positive, got (%d, %d)", ErrInvalidEdgeID, id.Tail, id.Head)
	}
	var token string
	switch id.Flag {
	case 0:
		token = UndirectedToken
	case 1:
		token = DirectedToken
	default:
		return "", fmt.Errorf("%w: direction flag must be 0 or 1, got %d", ErrInvalidEdgeID, id.Flag)
	}
	return strconv.FormatInt(id.Tail, 10) + token + strconv.FormatInt(id.Head, 10), nil
}

// String returns the key as a tuple, e.g. "(3,0,5)". Unlike [EdgeID.Name]
// this never fails and is meant for diagnostics, not round-tripping.
func (id EdgeID) String() string {
	return fmt.Sprintf("(%d,%d,%d)", id.Tail, id.Flag, id.Head)
}

// ParseEdgeName parses a canonical edge name back into its composite key.
// The text must consist of exactly three space-separated fields: a tail ID,
// a "->" or "--" token, and a head ID. Anything else fails with a wrapped
// [ErrInvalidEdgeName].
func ParseEdgeName(name string) (EdgeID, error) {
	fields := strings.Fields(name)
	if len(fields) != 3 {
		return EdgeID{}, fmt.Errorf("%w: want %q or %q between two IDs, got %q",
			ErrInvalidEdgeName, strings.TrimSpace(DirectedToken), strings.TrimSpace(UndirectedToken), name)
	}

	var directed bool
	switch fields[1] {
	case strings.TrimSpace(DirectedToken):
		directed = true
	case strings.TrimSpace(UndirectedToken):
		directed = false
	default:
		return EdgeID{}, fmt.Errorf("%w: unrecognized direction token %q", ErrInvalidEdgeName, fields[1])
	}

	tail, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return EdgeID{}, fmt.Errorf("%w: tail %q: %v", ErrInvalidEdgeName, fields[0], err)
	}
	head, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return EdgeID{}, fmt.Errorf("%w: head %q: %v", ErrInvalidEdgeName, fields[2], err)
	}

	return edgeKey(tail, head, directed), nil
}

// Edge is a link between two vertices of the same graph. The edge borrows its
// endpoints, it does not own them; tail and head are fixed for the edge's
// lifetime while the direction flag may be changed through
// [Graph.SetEdgeDirected], which re-keys the edge in its container.
//
// Edges cannot be constructed outside this package. [Graph.AddEdge] is the
// only creation path, which is what guarantees that endpoints always exist.
type Edge struct {
	id       EdgeID
	tail     *Vertex
	head     *Vertex
	directed bool
	weight   float64
	label    string
}

// newEdge builds an edge and computes its composite key. Callers (the Graph)
// must have resolved both endpoints before calling.
func newEdge(tail, head *Vertex, directed bool, weight float64, label string) *Edge {
	return &Edge{
		id:       edgeKey(tail.ID, head.ID, directed),
		tail:     tail,
		head:     head,
		directed: directed,
		weight:   weight,
		label:    label,
	}
}

// ID returns the composite key (tail ID, direction flag, head ID).
func (e *Edge) ID() EdgeID { return e.id }

// Tail returns the tail (source) vertex.
func (e *Edge) Tail() *Vertex { return e.tail }

// Head returns the head (target) vertex.
func (e *Edge) Head() *Vertex { return e.head }

// Directed reports whether the edge is directed.
func (e *Edge) Directed() bool { return e.directed }

// Weight returns the edge weight (zero by default).
func (e *Edge) Weight() float64 { return e.weight }

// Label returns the edge label (empty by default).
func (e *Edge) Label() string { return e.label }

// Name returns the canonical text form of the edge's composite key.
func (e *Edge) Name() (string, error) { return e.id.Name() }

// Equal reports whether both edges carry the same composite key.
func (e *Edge) Equal(other *Edge) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.id == other.id
}

// Compare orders edges by composite key ascending.
func (e *Edge) Compare(other *Edge) int {
	return e.id.Compare(other.id)
}

// setDirected flips the direction flag and recomputes the cached composite
// key. The container is responsible for moving the edge to the new key; this
// must only be called while the edge is not stored under the old one.
func (e *Edge) setDirected(directed bool) {
	if e.directed == directed {
		return
	}
	e.directed = directed
	e.id = edgeKey(e.tail.ID, e.head.ID, directed)
}
