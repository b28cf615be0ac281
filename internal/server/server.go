// Package server exposes the datastore operations over a JSON HTTP API: the
// surface the dashboard front end consumes. Rendering, sessions, and styling
// live elsewhere; this layer only translates HTTP to store calls.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lsu-datastore/datastore/internal/sqlite"
)

// Server wires HTTP handlers to a Store.
type Server struct {
	store *sqlite.Store
	log   *zap.SugaredLogger
}

// New returns a Server over the given store. A nil logger disables request
// logging.
func New(store *sqlite.Store, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{store: store, log: log}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(s.log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/files", func(r chi.Router) {
		r.Get("/", s.handleListFiles)
		r.Post("/", s.handleUpload)
		r.Get("/{id}", s.handlePreview)
		r.Put("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
		r.Get("/{id}/export", s.handleExport)
	})

	r.Get("/search", s.handleSearch)
	r.Post("/login", s.handleLogin)

	return r
}
