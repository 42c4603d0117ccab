package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"courseboard/internal/catalog"
	"courseboard/internal/config"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(Recovery)
	r.Use(Logger)
	r.Use(Brotli)

	boardHandler := NewBoardHandler(catalog.New(cfg.CoursesURL), cfg.FetchTimeout())

	r.Get("/", boardHandler.Page)
	r.Get("/courses/grid", boardHandler.Grid)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}
