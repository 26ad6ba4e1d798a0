package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestEdgeIDCompare(t *testing.T) {
	// Expected order: tail, then direction flag, then head, ascending.
	want := []EdgeID{
		{Tail: 1, Flag: 0, Head: 2},
		{Tail: 1, Flag: 0, Head: 9},
		{Tail: 1, Flag: 1, Head: 2},
		{Tail: 2, Flag: 0, Head: 1},
		{Tail: 2, Flag: 1, Head: 1},
		{Tail: 3, Flag: 0, Head: 3},
	}

	got := slices.Clone(want)
	slices.Reverse(got)
	slices.SortFunc(got, EdgeID.Compare)

	if !slices.Equal(got, want) {
		t.Errorf("sorted order = %v, want %v", got, want)
	}
}

func TestEdgeIDName(t *testing.T) {
	tests := []struct {
		name    string
		id      EdgeID
		want    string
		wantErr bool
	}{
		{name: "Undirected", id: EdgeID{Tail: 1, Flag: 0, Head: 6}, want: "1 -- 6"},
		{name: "Directed", id: EdgeID{Tail: 6, Flag: 1, Head: 5}, want: "6 -> 5"},
		{name: "SelfLoop", id: EdgeID{Tail: 3, Flag: 0, Head: 3}, want: "3 -- 3"},
		{name: "ZeroTail", id: EdgeID{Tail: 0, Flag: 0, Head: 6}, wantErr: true},
		{name: "NegativeHead", id: EdgeID{Tail: 1, Flag: 0, Head: -6}, wantErr: true},
		{name: "BadFlag", id: EdgeID{Tail: 1, Flag: 2, Head: 6}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.id.Name()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEdgeID) {
					t.Fatalf("Name() error = %v, want ErrInvalidEdgeID", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Name(): %v", err)
			}
			if got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEdgeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EdgeID
		wantErr bool
	}{
		{name: "Undirected", input: "1 -- 6", want: EdgeID{Tail: 1, Flag: 0, Head: 6}},
		{name: "Directed", input: "6 -> 5", want: EdgeID{Tail: 6, Flag: 1, Head: 5}},
		{name: "ExtraSpacing", input: "  1   --   6  ", want: EdgeID{Tail: 1, Flag: 0, Head: 6}},
		{name: "BadToken", input: "1 ~~ 6", wantErr: true},
		{name: "ReversedToken", input: "1 <- 6", wantErr: true},
		{name: "TooFewFields", input: "1 --", wantErr: true},
		{name: "TooManyFields", input: "1 -- 6 7", wantErr: true},
		{name: "NonNumericTail", input: "a -- 6", wantErr: true},
		{name: "NonNumericHead", input: "1 -- b", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEdgeName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEdgeName) {
					t.Fatalf("ParseEdgeName(%q) error = %v, want ErrInvalidEdgeName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEdgeName(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseEdgeName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEdgeNameRoundTrip(t *testing.T) {
	ids := []EdgeID{
		{Tail: 1, Flag: 0, Head: 6},
		{Tail: 6, Flag: 1, Head: 5},
		{Tail: 3, Flag: 0, Head: 3},
		{Tail: 10, Flag: 1, Head: 7},
	}
	for _, id := range ids {
		name, err := id.Name()
		if err != nil {
			t.Fatalf("Name(%v): %v", id, err)
		}
		back, err := ParseEdgeName(name)
		if err != nil {
			t.Fatalf("ParseEdgeName(%q): %v", name, err)
		}
		if back != id {
			t.Errorf("round trip %v -> %q -> %v", id, name, back)
		}
	}

	for _, name := range []string{"1 -- 6", "6 -> 5", "3 -- 3"} {
		id, err := ParseEdgeName(name)
		if err != nil {
			t.Fatalf("ParseEdgeName(%q): %v", name, err)
		}
		back, err := id.Name()
		if err != nil {
			t.Fatalf("Name(%v): %v", id, err)
		}
		if back != name {
			t.Errorf("round trip %q -> %v -> %q", name, id, back)
		}
	}
}

func TestVertexIdentity(t *testing.T) {
	a := NewVertex(1, "a")
	b := NewVertex(1, "entirely different payload")
	c := NewVertex(2, "a")

	if !a.Equal(b) {
		t.Error("vertices with equal IDs must be equal regardless of payload")
	}
	if a.Equal(c) {
		t.Error("vertices with different IDs must not be equal")
	}
	if a.Compare(c) >= 0 || c.Compare(a) <= 0 || a.Compare(b) != 0 {
		t.Error("Compare must order by ID ascending")
	}
	var nilV *Vertex
	if nilV.Equal(a) || !nilV.Equal(nil) {
		t.Error("nil vertex equality")
	}
}

func TestEdgeIdentity(t *testing.T) {
	g := New("G")
	g.AddVertex(1, nil)
	g.AddVertex(2, nil)
	g.AddEdge(1, 2, WithWeight(1.0), WithLabel("x"))
	g.AddEdge(1, 2, WithDirected(true))

	undirected, err := g.Edge(EdgeID{Tail: 1, Head: 2})
	if err != nil {
		t.Fatal(err)
	}
	directed, err := g.Edge(EdgeID{Tail: 1, Flag: 1, Head: 2})
	if err != nil {
		t.Fatal(err)
	}

	if undirected.Equal(directed) {
		t.Error("direction flag is part of edge identity")
	}
	if undirected.Compare(directed) >= 0 {
		t.Error("undirected key must sort before directed key for equal endpoints")
	}
	if !undirected.Equal(undirected) {
		t.Error("edge must equal itself")
	}
}
