package dot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lkarlsson/dotgraph/pkg/graph"
)

// ErrInvalidVerb is returned when a format verb contains a letter outside
// G, V, L, W, X.
var ErrInvalidVerb = errors.New("dot: invalid format verb")

// DefaultVerb is the verb applied when none is given.
const DefaultVerb = "G"

// Fixed style lines emitted at the top of every graph block.
const (
	nodeStyleLine = ` node [fontsize = "12"];`
	edgeStyleLine = ` edge [fontsize = "8"];`
)

// Formatter renders vertices, edges and graphs as DOT-like text. It is
// stateless and safe for concurrent use.
type Formatter struct{}

// New creates a DOT formatter.
func New() *Formatter { return &Formatter{} }

// parseVerb validates a verb and returns its letters in order, first
// occurrence wins for duplicates. An empty verb yields [DefaultVerb].
func parseVerb(verb string) ([]rune, error) {
	if verb == "" {
		verb = DefaultVerb
	}
	letters := make([]rune, 0, len(verb))
	for _, r := range verb {
		switch r {
		case 'G', 'V', 'L', 'W', 'X':
			if !strings.ContainsRune(string(letters), r) {
				letters = append(letters, r)
			}
		default:
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidVerb, r, verb)
		}
	}
	return letters, nil
}

// FormatVertex renders a single vertex. G contributes the ID, V (and X,
// which implies value rendering at vertex level) the payload; multiple
// contributions are joined with ":" in letter order. A verb with no vertex
// letters falls back to the ID.
func (f *Formatter) FormatVertex(verb string, v *graph.Vertex) (string, error) {
	letters, err := parseVerb(verb)
	if err != nil {
		return "", err
	}
	return vertexText(letters, v), nil
}

func vertexText(letters []rune, v *graph.Vertex) string {
	var parts []string
	for _, r := range letters {
		switch r {
		case 'G':
			parts = append(parts, strconv.FormatInt(v.ID, 10))
		case 'V', 'X':
			parts = append(parts, fmt.Sprint(v.Value))
		}
	}
	if len(parts) == 0 {
		return strconv.FormatInt(v.ID, 10)
	}
	return strings.Join(parts, ":")
}

// FormatEdge renders an edge as
// "<tail><token><head>" plus an optional attribute block. The token is
// graph.DirectedToken or graph.UndirectedToken depending on the edge's
// direction flag; L and W contribute label and weight attributes in letter
// order.
func (f *Formatter) FormatEdge(verb string, e *graph.Edge) (string, error) {
	letters, err := parseVerb(verb)
	if err != nil {
		return "", err
	}
	return edgeText(letters, e), nil
}

func edgeText(letters []rune, e *graph.Edge) string {
	token := graph.UndirectedToken
	if e.Directed() {
		token = graph.DirectedToken
	}

	// X only adds label declarations at graph level; endpoints inside an
	// edge line render from the G/V letters alone.
	endpoint := make([]rune, 0, len(letters))
	for _, r := range letters {
		if r == 'G' || r == 'V' {
			endpoint = append(endpoint, r)
		}
	}

	var attrs []string
	for _, r := range letters {
		switch r {
		case 'L':
			attrs = append(attrs, fmt.Sprintf("label=%q", e.Label()))
		case 'W':
			attrs = append(attrs, fmt.Sprintf("weight=%q", strconv.FormatFloat(e.Weight(), 'g', -1, 64)))
		}
	}

	text := vertexText(endpoint, e.Tail()) + token + vertexText(endpoint, e.Head())
	if len(attrs) > 0 {
		text += " [" + strings.Join(attrs, " ") + "]"
	}
	return text
}

// FormatGraph renders the whole container as a DOT block. The header uses
// the digraph keyword when the graph holds at least one directed edge and
// graph otherwise, regardless of how the remaining edges are oriented; each
// edge still renders with its own token. Edges appear in insertion order.
// With X in the verb, one label declaration per distinct endpoint vertex
// follows the edge lines, in first-encounter order.
func (f *Formatter) FormatGraph(verb string, g *graph.Graph) (string, error) {
	letters, err := parseVerb(verb)
	if err != nil {
		return "", err
	}

	keyword := "graph"
	if g.DirectedEdgeCount() > 0 {
		keyword = "digraph"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s {\n", keyword, g.Name())
	b.WriteString(nodeStyleLine + "\n")
	b.WriteString(edgeStyleLine + "\n")

	edges := g.EdgeList()
	for _, e := range edges {
		b.WriteString(" " + edgeText(letters, e) + ";\n")
	}

	if strings.ContainsRune(string(letters), 'X') {
		for _, v := range endpointOrder(edges) {
			fmt.Fprintf(&b, " %d [label=%q];\n", v.ID, fmt.Sprint(v.Value))
		}
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// endpointOrder collects the distinct endpoint vertices of the given edges,
// tail before head, in first-encounter order.
func endpointOrder(edges []*graph.Edge) []*graph.Vertex {
	seen := make(map[int64]bool, 2*len(edges))
	var out []*graph.Vertex
	for _, e := range edges {
		for _, v := range []*graph.Vertex{e.Tail(), e.Head()} {
			if !seen[v.ID] {
				seen[v.ID] = true
				out = append(out, v)
			}
		}
	}
	return out
}
