// internal/server/server.go
// Package server serves the chart dashboard and its JSON projection over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mwiater/longctx/internal/logging"
	"github.com/mwiater/longctx/internal/report"
	"github.com/mwiater/longctx/internal/selection"
	"github.com/mwiater/longctx/internal/view"
)

// ErrResp is the body of every error response.
type ErrResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Server renders charts for each request from its own selection state.
type Server struct {
	builder  *view.Builder
	defaults []string
	showAll  bool
}

// New creates a server. defaults is the selection used when a request names
// no models; nil means the curated top list.
func New(builder *view.Builder, defaults []string, showAll bool) *Server {
	if defaults == nil {
		defaults = builder.Registry.TopModels
	}
	return &Server{builder: builder, defaults: defaults, showAll: showAll}
}

// Handler returns the routed, request-logging handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/chart", s.handleChart)
	mux.HandleFunc("GET /api/tooltip", s.handleTooltip)
	return logRequests(mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.LogEvent("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logging.LogEvent("shutting down %s", addr)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// stateFor builds the request's selection from its query string.
// models= replaces the default selection, all= turns on show-all.
func (s *Server) stateFor(r *http.Request) *selection.State {
	q := r.URL.Query()
	models := s.defaults
	if q.Has("models") {
		models = splitList(q.Get("models"))
	}
	state := selection.New(models)
	state.SetShowAll(s.showAll)
	if q.Has("all") {
		all, err := strconv.ParseBool(q.Get("all"))
		state.SetShowAll(err == nil && all)
	}
	return state
}

func highlightFor(r *http.Request) view.Highlight {
	q := r.URL.Query()
	return view.Highlight{Model: q.Get("hover"), Family: q.Get("family")}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	chart := s.builder.Build(s.stateFor(r), highlightFor(r))
	doc, err := report.HTML(chart)
	if err != nil {
		logging.LogEvent("render html: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrResp{OK: false, Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	chart := s.builder.Build(s.stateFor(r), highlightFor(r))
	format := r.URL.Query().Get("format")
	switch format {
	case "", "json":
		writeJSON(w, http.StatusOK, chart)
	case "yaml", "markdown":
		doc, err := report.Render(format, chart)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrResp{OK: false, Error: err.Error()})
			return
		}
		contentType := "application/yaml"
		if format == "markdown" {
			contentType = "text/markdown; charset=utf-8"
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)
	default:
		writeJSON(w, http.StatusBadRequest, ErrResp{OK: false, Error: "unsupported format: " + format})
	}
}

func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	window, err := strconv.Atoi(r.URL.Query().Get("window"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrResp{OK: false, Error: "window must be an integer"})
		return
	}
	writeJSON(w, http.StatusOK, s.builder.Tooltip(s.stateFor(r), window))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogRequest(r.Method, r.URL.Path, rec.status, time.Since(start), r.URL.RawQuery)
	})
}
