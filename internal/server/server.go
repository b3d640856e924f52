package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/partwatch/partwatch/internal/engine"
	"github.com/partwatch/partwatch/internal/lifespan"
	"github.com/partwatch/partwatch/internal/store"
)

// Server is the partwatch HTTP API server, the read surface for the
// dashboard layer.
type Server struct {
	db        *store.DB
	predictor *engine.Predictor
	scanner   *engine.Scanner
	resolver  *lifespan.Resolver
	router    chi.Router
	version   string
	started   time.Time
}

// New creates a new Server.
func New(db *store.DB, predictor *engine.Predictor, scanner *engine.Scanner, resolver *lifespan.Resolver, version string) *Server {
	s := &Server{
		db:        db,
		predictor: predictor,
		scanner:   scanner,
		resolver:  resolver,
		version:   version,
		started:   time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/predictions", s.handlePredictions)
		r.Get("/due-checks", s.handleDueChecks)
		r.Get("/lifespan", s.handleLifespan)
		r.Get("/machines", s.handleMachines)
		r.Get("/parts", s.handleParts)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if err := s.db.Ping(); err != nil {
		dbOK = false
	}
	machines, _ := s.db.CountMachines()
	parts, _ := s.db.CountParts()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"version":  s.version,
		"uptime":   time.Since(s.started).Seconds(),
		"db":       dbOK,
		"db_path":  s.db.Path,
		"machines": machines,
		"parts":    parts,
	})
}
