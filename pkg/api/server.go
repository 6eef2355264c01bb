// Package api exposes the configurator over HTTP. The server is a thin
// layer over [quote.Runner] and [resolve.Apply]: every endpoint is
// stateless, taking the full configuration in the request and returning
// the resolved result, so any number of clients can share one server.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/plankworks/plank/pkg/buildinfo"
	"github.com/plankworks/plank/pkg/catalog"
	"github.com/plankworks/plank/pkg/errors"
	"github.com/plankworks/plank/pkg/quote"
	"github.com/plankworks/plank/pkg/resolve"
	"github.com/plankworks/plank/pkg/tabletop"
)

// maxUploadBytes bounds one drawing upload.
const maxUploadBytes = 8 << 20

// Server is the configurator HTTP API.
type Server struct {
	runner *quote.Runner
	logger *log.Logger
	router chi.Router

	mu        sync.RWMutex
	materials []catalog.Material

	stopCatalog func()
}

// NewServer builds the API around a runner and a catalogue source. The
// server subscribes to the source immediately and serves the latest
// snapshot until Close.
func NewServer(runner *quote.Runner, source catalog.Source, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}

	stop, err := source.Subscribe(context.Background(), func(snapshot []catalog.Material) {
		s.mu.Lock()
		s.materials = snapshot
		s.mu.Unlock()
		logger.Info("catalogue snapshot applied", "materials", len(snapshot))
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to subscribe to catalogue")
	}
	s.stopCatalog = stop

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/materials", s.handleMaterials)
		r.Post("/outline", s.handleOutline)
		r.Post("/resolve", s.handleResolve)
		r.Post("/quote", s.handleQuote)
	})
	s.router = r
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops the catalogue subscription.
func (s *Server) Close() {
	if s.stopCatalog != nil {
		s.stopCatalog()
	}
}

func (s *Server) snapshot() []catalog.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.materials
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleMaterials(w http.ResponseWriter, _ *http.Request) {
	snapshot := s.snapshot()
	if snapshot == nil {
		snapshot = []catalog.Material{}
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// configRequest is the client's view of a configuration plus the selected
// catalogue material.
type configRequest struct {
	Config     tabletop.Config `json:"config"`
	MaterialID string          `json:"materialId,omitempty"`
}

// state reconstructs the resolver state for a request, re-resolving the
// material against the current snapshot.
func (s *Server) state(req configRequest) (resolve.State, error) {
	st := resolve.State{Config: req.Config}
	if req.MaterialID == "" {
		return resolve.Apply(st, resolve.Normalize{}), nil
	}
	m := catalog.FindByID(s.snapshot(), req.MaterialID)
	if m == nil {
		return resolve.State{}, errors.New(errors.ErrCodeMaterialNotFound,
			"unknown material: %s", req.MaterialID)
	}
	return resolve.Apply(st, resolve.SelectMaterial{Material: m}), nil
}

// resolveResponse returns the resolved configuration together with the
// limits the client needs to render its controls.
type resolveResponse struct {
	Config      tabletop.Config `json:"config"`
	Limits      resolve.Limits  `json:"limits"`
	Thicknesses []int           `json:"thicknesses"`

	// Adjusted reports whether resolution changed the requested footprint
	// (clamped dimensions, snapped thickness, or a shape correction).
	Adjusted bool `json:"adjusted"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	st, err := s.state(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolveResponse{
		Config:      st.Config,
		Limits:      resolve.EffectiveLimits(st.Config.Shape, st.Material),
		Thicknesses: st.ActiveThicknesses(),
		Adjusted:    resolve.DimensionsChanged(req.Config, st.Config),
	})
}

// outlineResponse describes an imported drawing.
type outlineResponse struct {
	Config tabletop.Config `json:"config"`
	Paths  int             `json:"paths"`
	SVG    string          `json:"svg,omitempty"`
}

// handleOutline accepts a multipart upload with a "file" part and an
// optional "config" JSON part carrying the configuration to lock.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid multipart request"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "missing file part"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read upload"))
		return
	}

	req := configRequest{Config: tabletop.Default()}
	if raw := r.FormValue("config"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid config part"))
			return
		}
	}
	st, err := s.state(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.runner.Import(st, header.Filename, data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outlineResponse{
		Config: res.State.Config,
		Paths:  len(res.Outline.Paths),
		SVG:    res.Outline.SVG(),
	})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	st, err := s.state(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.runner.Quote(r.Context(), st.Config.Payload()))
}

// errorResponse is the JSON body for all error statuses.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidShape,
		errors.ErrCodeInvalidDimension, errors.ErrCodeInvalidMaterial:
		status = http.StatusBadRequest
	case errors.ErrCodeUnsupportedFileType, errors.ErrCodeUnsupportedPreview:
		status = http.StatusUnsupportedMediaType
	case errors.ErrCodeNoOutlineFound:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeMaterialNotFound, errors.ErrCodeDraftNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
