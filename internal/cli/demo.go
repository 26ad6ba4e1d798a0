package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lkarlsson/dotgraph/pkg/graph"
	"github.com/lkarlsson/dotgraph/pkg/notation"
)

// demoCommand creates the demo command that prints a built-in sample graph.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		verb         string
		notationName string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a built-in sample graph in DOT notation",
		Long: `Print a built-in sample graph in DOT notation.

The sample is a ten-vertex graph with labeled, weighted edges including a
self-loop. It is useful for exploring format verbs without writing a
manifest first. The verb letters select what each line carries:

  G  vertex IDs
  V  vertex values
  L  edge labels
  W  edge weights
  X  one label declaration per endpoint vertex`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := notation.Lookup(notationName)
			if err != nil {
				return err
			}

			text, err := demoGraph().Format(verb, f)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(text)
				return nil
			}
			if err := os.WriteFile(output, []byte(text), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Wrote sample graph")
			printFile(output)
			printNextStep("Rasterize it", "dot -Tsvg "+output)
			return nil
		},
	}

	cmd.Flags().StringVar(&verb, "verb", "GLX", "format verb (letters G, V, L, W, X)")
	cmd.Flags().StringVarP(&notationName, "notation", "n", "dot", "textual notation to render with")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// demoGraph builds the sample graph: ten vertices, sixteen undirected edges,
// one of them a self-loop on vertex 3.
func demoGraph() *graph.Graph {
	g := graph.New("G")
	for id := int64(1); id <= 10; id++ {
		g.AddVertex(id, fmt.Sprintf("%dv", id))
	}

	pairs := [][2]int64{
		{1, 6}, {6, 5}, {5, 2}, {2, 4}, {4, 1},
		{3, 2}, {3, 3}, {3, 5}, {3, 7}, {3, 8},
		{7, 8}, {8, 9}, {9, 10}, {10, 7},
		{6, 9}, {1, 10},
	}
	for _, p := range pairs {
		g.AddEdge(p[0], p[1],
			graph.WithLabel(fmt.Sprintf("e%d%d", p[0], p[1])),
			graph.WithWeight(float64(p[0])+float64(p[1])/10),
		)
	}
	return g
}
