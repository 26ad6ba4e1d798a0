// Package dot renders graphs into a DOT-like textual notation consumable by
// Graphviz and compatible tools.
//
// The [Formatter] implements the graph.Formatter protocol with a small
// format-verb language. Verbs are combinations of single letters, applied in
// the order they appear:
//
//	G  vertices render as their ID (the default)
//	V  vertices render as their payload value
//	L  edges carry a label="..." attribute
//	W  edges carry a weight="..." attribute
//	X  graph rendering appends one `<id> [label="<value>"];` declaration
//	   per distinct edge endpoint
//
// An empty verb means "G". Unknown letters are rejected.
//
// A whole graph renders as a block:
//
//	graph G {
//	 node [fontsize = "12"];
//	 edge [fontsize = "8"];
//	 1 -- 6 [label="e16"];
//	}
//
// with the digraph keyword instead of graph as soon as the container holds
// at least one directed edge, and edges listed in insertion order. The
// rendered DOT can be passed to [RenderSVG] or [RenderPNG] for rasterization
// through Graphviz.
package dot
