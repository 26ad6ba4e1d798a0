package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// RenderSVG rasterizes DOT text to SVG using Graphviz.
func RenderSVG(ctx context.Context, dotText string) ([]byte, error) {
	return render(ctx, dotText, graphviz.SVG)
}

// RenderPNG rasterizes DOT text to PNG using Graphviz.
func RenderPNG(ctx context.Context, dotText string) ([]byte, error) {
	return render(ctx, dotText, graphviz.PNG)
}

func render(ctx context.Context, dotText string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotText))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
