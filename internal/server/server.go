// Package server serves gallery archives and renders sketches on demand
// over HTTP.
package server

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/inkfield/inkfield/internal/gallery"
	"github.com/inkfield/inkfield/internal/pipeline"
	"github.com/inkfield/inkfield/internal/sketch"
)

// Config configures the HTTP server.
type Config struct {
	// GalleryPath is the archive to browse; empty disables the gallery
	// routes.
	GalleryPath string

	Width  int
	Height int

	// MaxConcurrentRenders bounds simultaneous on-demand renders.
	MaxConcurrentRenders int
	RenderTimeout        time.Duration
	CacheControl         string
	PNGCompression       string
}

// Server handles gallery browsing and on-demand rendering.
type Server struct {
	cfg    Config
	reader *gallery.Reader
	logger *slog.Logger
	sem    chan struct{}

	totalRendered atomic.Int64
	totalFailed   atomic.Int64
}

// New creates a server. The gallery archive is opened read-only when
// configured.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	if cfg.MaxConcurrentRenders <= 0 {
		cfg.MaxConcurrentRenders = 1
	}
	if cfg.RenderTimeout <= 0 {
		cfg.RenderTimeout = time.Minute
	}
	if cfg.CacheControl == "" {
		cfg.CacheControl = "no-store"
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		sem:    make(chan struct{}, cfg.MaxConcurrentRenders),
	}

	if cfg.GalleryPath != "" {
		reader, err := gallery.OpenReader(cfg.GalleryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open gallery: %w", err)
		}
		s.reader = reader
	}

	return s, nil
}

// Close releases the gallery reader.
func (s *Server) Close() error {
	if s.reader != nil {
		return s.reader.Close()
	}
	return nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/render", s.handleRender)
	if s.reader != nil {
		mux.HandleFunc("/", s.handleIndex)
		mux.HandleFunc("/frame", s.handleFrame)
	}
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><title>{{.Name}}</title></head><body>
<h1>{{.Name}}</h1>
<ul>
{{range .Keys}}<li><a href="/frame?sketch={{.Sketch}}&seed={{.Seed}}&frame={{.Frame}}">{{.Sketch}} seed {{.Seed}} frame {{.Frame}}</a></li>
{{end}}</ul>
</body></html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	keys, err := s.reader.List()
	if err != nil {
		s.log().Error("Failed to list gallery", "error", err)
		http.Error(w, "failed to list gallery", http.StatusInternalServerError)
		return
	}
	meta, err := s.reader.Metadata()
	if err != nil {
		http.Error(w, "failed to read gallery metadata", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, struct {
		Name string
		Keys []gallery.Key
	}{Name: meta.Name, Keys: keys}); err != nil {
		http.Error(w, "failed to render index", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	sketchName := r.URL.Query().Get("sketch")
	seed, err := strconv.ParseInt(r.URL.Query().Get("seed"), 10, 64)
	if err != nil {
		http.Error(w, "invalid seed", http.StatusBadRequest)
		return
	}
	frame, err := strconv.Atoi(r.URL.Query().Get("frame"))
	if err != nil {
		http.Error(w, "invalid frame", http.StatusBadRequest)
		return
	}

	entry, err := s.reader.ReadFrame(sketchName, seed, frame)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", s.cfg.CacheControl)
	_, _ = w.Write(entry.Data)
}

// handleRender renders a sketch on demand from query parameters. Renders
// are bounded by the semaphore; requests over the limit wait their turn or
// time out with the request context.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sketchName := r.URL.Query().Get("sketch")
	if _, ok := sketch.Lookup(sketchName); !ok {
		http.Error(w, fmt.Sprintf("unknown sketch %q", sketchName), http.StatusBadRequest)
		return
	}

	seed := int64(1337)
	if v := r.URL.Query().Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return
		}
		seed = parsed
	}
	frame := 0
	if v := r.URL.Query().Get("frame"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid frame", http.StatusBadRequest)
			return
		}
		frame = parsed
	}
	paletteName := r.URL.Query().Get("palette")

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-r.Context().Done():
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RenderTimeout)
	defer cancel()

	cw := captureWriter{dst: new([]byte)}
	renderer, err := pipeline.NewRenderer("", s.cfg.Width, s.cfg.Height, seed, paletteName,
		pipeline.Options{PNGCompression: s.cfg.PNGCompression, FrameWriter: cw}, s.logger)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	if _, err := renderer.RenderFrame(ctx, sketchName, frame, true); err != nil {
		s.totalFailed.Add(1)
		s.log().Error("On-demand render failed", "sketch", sketchName, "seed", seed, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	s.totalRendered.Add(1)
	s.log().Info("Rendered on demand",
		"sketch", sketchName, "seed", seed, "frame", frame, "elapsed", time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", s.cfg.CacheControl)
	_, _ = w.Write(*cw.dst)
}

// captureWriter diverts a rendered frame into memory.
type captureWriter struct {
	dst *[]byte
}

func (c captureWriter) WriteFrame(entry gallery.Entry) error {
	*c.dst = entry.Data
	return nil
}

func (s *Server) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}
