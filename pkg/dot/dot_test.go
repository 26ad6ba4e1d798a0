package dot

import (
	"errors"
	"testing"

	"github.com/lkarlsson/dotgraph/pkg/graph"
)

// buildMixed returns a graph with one undirected and one directed edge,
// carrying values, labels and weights for every format letter to pick up.
func buildMixed(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New("demo")
	g.AddVertex(1, "1v")
	g.AddVertex(6, "6v")
	g.AddVertex(5, "5v")
	if _, err := g.AddEdge(1, 6, graph.WithWeight(1.6), graph.WithLabel("e16")); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge(6, 5, graph.WithDirected(true), graph.WithWeight(6.5), graph.WithLabel("e65")); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFormatVertex(t *testing.T) {
	g := buildMixed(t)
	v, err := g.Vertex(1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		verb string
		want string
	}{
		{name: "ID", verb: "G", want: "1"},
		{name: "Value", verb: "V", want: "1v"},
		{name: "IDThenValue", verb: "GV", want: "1:1v"},
		{name: "ValueThenID", verb: "VG", want: "1v:1"},
		{name: "XActsAsValue", verb: "X", want: "1v"},
		{name: "DuplicatesCollapse", verb: "GGV", want: "1:1v"},
		{name: "EmptyDefaultsToID", verb: "", want: "1"},
		{name: "NoVertexLettersFallsBack", verb: "LW", want: "1"},
	}
	f := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.FormatVertex(tt.verb, v)
			if err != nil {
				t.Fatalf("FormatVertex(%q): %v", tt.verb, err)
			}
			if got != tt.want {
				t.Errorf("FormatVertex(%q) = %q, want %q", tt.verb, got, tt.want)
			}
		})
	}
}

func TestFormatEdge(t *testing.T) {
	g := buildMixed(t)
	undirected, err := g.Edge(graph.EdgeID{Tail: 1, Head: 6})
	if err != nil {
		t.Fatal(err)
	}
	directed, err := g.Edge(graph.EdgeID{Tail: 6, Flag: 1, Head: 5})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		verb string
		edge *graph.Edge
		want string
	}{
		{name: "Undirected", verb: "G", edge: undirected, want: "1 -- 6"},
		{name: "Directed", verb: "G", edge: directed, want: "6 -> 5"},
		{name: "Label", verb: "GL", edge: undirected, want: `1 -- 6 [label="e16"]`},
		{name: "Weight", verb: "GW", edge: undirected, want: `1 -- 6 [weight="1.6"]`},
		{name: "LabelThenWeight", verb: "GLW", edge: directed, want: `6 -> 5 [label="e65" weight="6.5"]`},
		{name: "WeightThenLabel", verb: "GWL", edge: directed, want: `6 -> 5 [weight="6.5" label="e65"]`},
		{name: "ValueEndpoints", verb: "GV", edge: undirected, want: "1:1v -- 6:6v"},
		{name: "XLeavesEndpointsAlone", verb: "GX", edge: undirected, want: "1 -- 6"},
		{name: "Empty", verb: "", edge: undirected, want: "1 -- 6"},
	}
	f := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.FormatEdge(tt.verb, tt.edge)
			if err != nil {
				t.Fatalf("FormatEdge(%q): %v", tt.verb, err)
			}
			if got != tt.want {
				t.Errorf("FormatEdge(%q) = %q, want %q", tt.verb, got, tt.want)
			}
		})
	}
}

func TestFormatGraph(t *testing.T) {
	g := buildMixed(t)
	f := New()

	t.Run("Plain", func(t *testing.T) {
		got, err := f.FormatGraph("G", g)
		if err != nil {
			t.Fatal(err)
		}
		want := `digraph demo {
 node [fontsize = "12"];
 edge [fontsize = "8"];
 1 -- 6;
 6 -> 5;
}
`
		if got != want {
			t.Errorf("FormatGraph(G) =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("FullVerb", func(t *testing.T) {
		got, err := f.FormatGraph("GLWX", g)
		if err != nil {
			t.Fatal(err)
		}
		want := `digraph demo {
 node [fontsize = "12"];
 edge [fontsize = "8"];
 1 -- 6 [label="e16" weight="1.6"];
 6 -> 5 [label="e65" weight="6.5"];
 1 [label="1v"];
 6 [label="6v"];
 5 [label="5v"];
}
`
		if got != want {
			t.Errorf("FormatGraph(GLWX) =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("UndirectedKeyword", func(t *testing.T) {
		u := graph.New("plain")
		u.AddVertex(1, nil)
		u.AddVertex(2, nil)
		u.AddEdge(1, 2)

		got, err := f.FormatGraph("G", u)
		if err != nil {
			t.Fatal(err)
		}
		want := `graph plain {
 node [fontsize = "12"];
 edge [fontsize = "8"];
 1 -- 2;
}
`
		if got != want {
			t.Errorf("FormatGraph(G) =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("KeywordFlipsWithLastDirectedEdge", func(t *testing.T) {
		u := graph.New("flip")
		u.AddVertex(1, nil)
		u.AddVertex(2, nil)
		u.AddEdge(1, 2, graph.WithDirected(true))

		got, err := f.FormatGraph("G", u)
		if err != nil {
			t.Fatal(err)
		}
		if got[:7] != "digraph" {
			t.Fatalf("header = %q, want digraph", got[:7])
		}

		if _, err := u.SetEdgeDirected(graph.EdgeID{Tail: 1, Flag: 1, Head: 2}, false); err != nil {
			t.Fatal(err)
		}
		got, err = f.FormatGraph("G", u)
		if err != nil {
			t.Fatal(err)
		}
		if got[:6] != "graph " {
			t.Fatalf("header = %q, want graph", got[:6])
		}
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := f.FormatGraph("G", graph.New("empty"))
		if err != nil {
			t.Fatal(err)
		}
		want := `graph empty {
 node [fontsize = "12"];
 edge [fontsize = "8"];
}
`
		if got != want {
			t.Errorf("FormatGraph(G) =\n%s\nwant\n%s", got, want)
		}
	})
}

func TestEndpointLabelOrder(t *testing.T) {
	// Labels appear in first-encounter order, tail before head, deduped.
	g := graph.New("order")
	for _, id := range []int64{3, 1, 2} {
		g.AddVertex(id, id*10)
	}
	g.AddEdge(3, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	got, err := New().FormatGraph("GX", g)
	if err != nil {
		t.Fatal(err)
	}
	want := `graph order {
 node [fontsize = "12"];
 edge [fontsize = "8"];
 3 -- 1;
 1 -- 2;
 2 -- 3;
 3 [label="30"];
 1 [label="10"];
 2 [label="20"];
}
`
	if got != want {
		t.Errorf("FormatGraph(GX) =\n%s\nwant\n%s", got, want)
	}
}

func TestInvalidVerb(t *testing.T) {
	g := buildMixed(t)
	v, _ := g.Vertex(1)
	f := New()

	for _, verb := range []string{"Z", "Gz", "G V", "gv"} {
		if _, err := f.FormatVertex(verb, v); !errors.Is(err, ErrInvalidVerb) {
			t.Errorf("FormatVertex(%q) error = %v, want ErrInvalidVerb", verb, err)
		}
		if _, err := f.FormatGraph(verb, g); !errors.Is(err, ErrInvalidVerb) {
			t.Errorf("FormatGraph(%q) error = %v, want ErrInvalidVerb", verb, err)
		}
	}
}
