// Package service exposes scenes over HTTP: upload, list, fetch,
// delete and server-side rendering. A small client mirrors the API for
// tools that push geometry from batch jobs.
//
// # API
//
//	POST   /api/scenes                 upload a serialized scene
//	GET    /api/scenes                 list stored scenes
//	GET    /api/scenes/{id}            fetch the scene JSON
//	DELETE /api/scenes/{id}            delete a scene
//	GET    /api/scenes/{id}/render     render to ?format=svg|png
//	GET    /view/{id}                  HTML page with the rendered scene
//	GET    /healthz                    liveness probe
//
// Rendered artifacts are cached by scene content hash, so repeated
// renders of an unchanged scene never re-project.
package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/cache"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/observability"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/render"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/render/sink"
	"github.com/ansys/ansys-tools-visualization-interface/pkg/scene"
)

// maxSceneBytes caps uploaded scene payloads.
const maxSceneBytes = 64 << 20

// Options configures the scene service.
type Options struct {
	// Logger receives request and render logs. Defaults to a discard
	// logger.
	Logger *log.Logger

	// Store persists scenes. Defaults to an in-memory store.
	Store Store

	// Cache holds rendered artifacts. Defaults to no caching.
	Cache cache.Cache

	// Keyer generates artifact cache keys.
	Keyer cache.Keyer

	// ArtifactTTL bounds the artifact cache lifetime.
	ArtifactTTL time.Duration
}

// ValidateAndSetDefaults fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Store == nil {
		o.Store = NewMemoryStore()
	}
	if o.Cache == nil {
		o.Cache = cache.NewNullCache()
	}
	if o.Keyer == nil {
		o.Keyer = cache.NewDefaultKeyer()
	}
	if o.ArtifactTTL == 0 {
		o.ArtifactTTL = time.Hour
	}
	return nil
}

// Server is the scene service.
type Server struct {
	opts   Options
	router chi.Router
}

// NewServer creates a scene service.
func NewServer(opts Options) (*Server, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	s := &Server{opts: opts}
	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/scenes", func(r chi.Router) {
		r.Post("/", s.handleUpload)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)
		r.Delete("/{id}", s.handleDelete)
		r.Get("/{id}/render", s.handleRender)
	})
	r.Get("/view/{id}", s.handleView)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.opts.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

// ============================================================================
// Handlers
// ============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSceneBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	sc, err := scene.Unmarshal(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc := SceneDoc{
		ID:        sc.ID,
		Data:      body,
		Hash:      cache.Hash(body),
		Actors:    sc.Len(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.opts.Store.Put(r.Context(), doc); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.opts.Logger.Info("stored scene", "id", doc.ID, "actors", doc.Actors)
	writeJSON(w, http.StatusCreated, map[string]string{"id": doc.ID})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	docs, err := s.opts.Store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadScene(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Data)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.opts.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, errors.ErrCodeSceneNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadScene(w, r)
	if !ok {
		return
	}

	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, contentType, err := s.renderArtifact(r, doc, req)
	if err != nil {
		if errors.Is(err, errors.ErrCodeInvalidView) || errors.Is(err, errors.ErrCodeInvalidFormat) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.loadScene(w, r)
	if !ok {
		return
	}

	svg, _, err := s.renderArtifact(r, doc, renderRequest{Format: "svg"})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, viewPage, doc.ID, svg)
}

const viewPage = `<!DOCTYPE html>
<html>
<head><title>Scene %s</title>
<style>body { margin: 0; display: grid; place-items: center; min-height: 100vh; background: #1e1e1e; }</style>
</head>
<body>%s</body>
</html>
`

// ============================================================================
// Rendering
// ============================================================================

type renderRequest struct {
	Format string
	View   string
	Width  int
	Height int
}

func parseRenderRequest(r *http.Request) (renderRequest, error) {
	q := r.URL.Query()
	req := renderRequest{
		Format: q.Get("format"),
		View:   q.Get("view"),
	}
	if req.Format == "" {
		req.Format = "svg"
	}
	if req.Format != "svg" && req.Format != "png" {
		return req, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want svg or png)", req.Format)
	}
	var err error
	if req.Width, err = parseDim(q.Get("width")); err != nil {
		return req, err
	}
	if req.Height, err = parseDim(q.Get("height")); err != nil {
		return req, err
	}
	return req, nil
}

func parseDim(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 8192 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid dimension %q", s)
	}
	return n, nil
}

func (s *Server) renderArtifact(r *http.Request, doc SceneDoc, req renderRequest) ([]byte, string, error) {
	ctx := r.Context()
	contentType := "image/svg+xml"
	if req.Format == "png" {
		contentType = "image/png"
	}

	key := s.opts.Keyer.ArtifactKey(doc.Hash, cache.ArtifactKeyOpts{
		Format: req.Format,
		View:   req.View,
		Width:  req.Width,
		Height: req.Height,
	})
	if data, hit, err := s.opts.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return data, contentType, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	sc, err := scene.Unmarshal(doc.Data)
	if err != nil {
		return nil, "", err
	}
	if req.View != "" {
		if err := sc.Camera.SetView(req.View); err != nil {
			return nil, "", err
		}
	}
	if b := sc.Bounds(); !b.IsEmpty() {
		sc.Camera.Fit(b)
	}

	opts := render.Options{Width: req.Width, Height: req.Height}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", err
	}
	frame, err := render.Project(ctx, sc, opts)
	if err != nil {
		return nil, "", err
	}

	var data []byte
	if req.Format == "png" {
		if data, err = sink.RenderPNG(frame); err != nil {
			return nil, "", err
		}
	} else {
		data = sink.RenderSVG(frame, sink.WithTitle(sc.ID), sink.WithInteraction())
	}

	if err := s.opts.Cache.Set(ctx, key, data, s.opts.ArtifactTTL); err != nil {
		s.opts.Logger.Warn("artifact cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, contentType, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (s *Server) loadScene(w http.ResponseWriter, r *http.Request) (SceneDoc, bool) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateSceneID(id); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return SceneDoc{}, false
	}
	doc, err := s.opts.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, errors.ErrCodeSceneNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return SceneDoc{}, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
