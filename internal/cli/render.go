package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lkarlsson/dotgraph/pkg/cache"
	"github.com/lkarlsson/dotgraph/pkg/dot"
	"github.com/lkarlsson/dotgraph/pkg/manifest"
	"github.com/lkarlsson/dotgraph/pkg/notation"
)

// renderCommand creates the render command for producing output files from a
// manifest.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr   string
		output       string
		verb         string
		notationName string
		noCache      bool
	)

	cmd := &cobra.Command{
		Use:   "render [manifest.toml]",
		Short: "Build a graph from a manifest and write DOT, SVG, or PNG output",
		Long: `Build a graph from a manifest and write DOT, SVG, or PNG output.

The manifest is a TOML file listing the graph's vertices and edges. The
graph is first rendered to DOT text using the given format verb; SVG and
PNG output is then rasterized from that text with Graphviz.

Rasterized artifacts are cached locally, keyed by the DOT text, so repeat
runs with an unchanged graph are fast.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], formats, output, verb, notationName, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (format extension is appended)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().StringVar(&verb, "verb", "GLX", "format verb (letters G, V, L, W, X)")
	cmd.Flags().StringVarP(&notationName, "notation", "n", "dot", "textual notation to render with")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

// runRender loads the manifest, renders the DOT text once, and writes one
// file per requested format next to the manifest (or under the -o base).
func (c *CLI) runRender(ctx context.Context, manifestPath string, formats []string, output, verb, notationName string, noCache bool) error {
	f, err := notation.Lookup(notationName)
	if err != nil {
		return err
	}

	g, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	text, err := g.Format(verb, f)
	if err != nil {
		return err
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	base := output
	if base == "" {
		base = strings.TrimSuffix(manifestPath, filepath.Ext(manifestPath))
	}

	dotHash := cache.Hash([]byte(text))
	cached := false

	printSuccess("Rendered %s", g.Name())
	for _, format := range formats {
		path := base + "." + format

		var data []byte
		switch format {
		case FormatDOT:
			data = []byte(text)
		default:
			key := cache.ArtifactKey(dotHash, format)
			hit, ok, err := store.Get(ctx, key)
			if err != nil {
				c.Logger.Debug("cache read failed", "key", key, "err", err)
			}
			if ok {
				data = hit
				cached = true
				break
			}

			prog := newProgress(c.Logger)
			switch format {
			case FormatSVG:
				data, err = dot.RenderSVG(ctx, text)
			case FormatPNG:
				data, err = dot.RenderPNG(ctx, text)
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			prog.done("Rasterized " + format)

			if err := store.Set(ctx, key, data, 0); err != nil {
				printWarning("Could not cache %s artifact: %v", format, err)
			}
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(g.Order(), g.Size(), cached)

	return nil
}
