package graph

// Formatter renders graph elements into a textual notation. The verb is a
// notation-specific format specifier (for the DOT-like notation: a
// combination of the letters G, V, L, W and X); formatters must reject verbs
// they do not understand with a descriptive error.
//
// Implementations live outside this package (see pkg/dot) and are resolved
// by name through pkg/notation.
type Formatter interface {
	FormatVertex(verb string, v *Vertex) (string, error)
	FormatEdge(verb string, e *Edge) (string, error)
	FormatGraph(verb string, g *Graph) (string, error)
}

// Renderable is the set of types that can be externalized through a
// [Formatter]: exactly [Vertex], [Edge] and [Graph]. Dispatch is by method,
// one per implementing type, so an unsupported render target is a
// compile-time error rather than a runtime type check.
type Renderable interface {
	Format(verb string, f Formatter) (string, error)
}

// Format renders the vertex through the given formatter.
func (v *Vertex) Format(verb string, f Formatter) (string, error) {
	if f == nil {
		return "", ErrNilFormatter
	}
	return f.FormatVertex(verb, v)
}

// Format renders the edge through the given formatter.
func (e *Edge) Format(verb string, f Formatter) (string, error) {
	if f == nil {
		return "", ErrNilFormatter
	}
	return f.FormatEdge(verb, e)
}

// Format renders the whole graph through the given formatter.
func (g *Graph) Format(verb string, f Formatter) (string, error) {
	if f == nil {
		return "", ErrNilFormatter
	}
	return f.FormatGraph(verb, g)
}
