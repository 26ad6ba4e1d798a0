package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/lkarlsson/dotgraph/pkg/dot"
	"github.com/lkarlsson/dotgraph/pkg/graph"
	"github.com/lkarlsson/dotgraph/pkg/manifest"
	"github.com/lkarlsson/dotgraph/pkg/notation"
)

// serveCommand creates the serve command that exposes a manifest's graph
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		verb         string
		notationName string
	)

	cmd := &cobra.Command{
		Use:   "serve [manifest.toml]",
		Short: "Serve a manifest's graph over HTTP",
		Long: `Serve a manifest's graph over HTTP.

Endpoints:

  GET /graph.dot    DOT text
  GET /graph.svg    SVG rasterized with Graphviz
  GET /graph.png    PNG rasterized with Graphviz
  GET /healthz      liveness probe

A ?verb= query parameter overrides the default format verb per request.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, verb, notationName)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&verb, "verb", "GLX", "default format verb (letters G, V, L, W, X)")
	cmd.Flags().StringVarP(&notationName, "notation", "n", "dot", "textual notation to render with")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, manifestPath, addr, defaultVerb string, notationName string) error {
	f, err := notation.Lookup(notationName)
	if err != nil {
		return err
	}

	g, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.newRouter(g, f, defaultVerb),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	c.Logger.Infof("Serving %s on %s", g.Name(), addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newRouter builds the HTTP routes for a loaded graph.
func (c *CLI) newRouter(g *graph.Graph, f graph.Formatter, defaultVerb string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/graph.dot", func(w http.ResponseWriter, req *http.Request) {
		text, ok := formatGraph(w, req, g, f, defaultVerb)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		_, _ = w.Write([]byte(text))
	})

	r.Get("/graph.svg", func(w http.ResponseWriter, req *http.Request) {
		text, ok := formatGraph(w, req, g, f, defaultVerb)
		if !ok {
			return
		}
		data, err := dot.RenderSVG(req.Context(), text)
		if err != nil {
			loggerFromContext(req.Context()).Error("render svg", "err", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write(data)
	})

	r.Get("/graph.png", func(w http.ResponseWriter, req *http.Request) {
		text, ok := formatGraph(w, req, g, f, defaultVerb)
		if !ok {
			return
		}
		data, err := dot.RenderPNG(req.Context(), text)
		if err != nil {
			loggerFromContext(req.Context()).Error("render png", "err", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	})

	return r
}

// formatGraph renders g with the request's verb, writing a 400 response on
// an invalid verb. The boolean reports whether the caller should proceed.
func formatGraph(w http.ResponseWriter, req *http.Request, g *graph.Graph, f graph.Formatter, defaultVerb string) (string, bool) {
	verb := req.URL.Query().Get("verb")
	if verb == "" {
		verb = defaultVerb
	}

	text, err := g.Format(verb, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return text, true
}

// requestLogger attaches the CLI logger to each request context and logs the
// request at debug level once served.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), c.Logger)))
		c.Logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
