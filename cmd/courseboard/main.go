package main

import (
	"log"
	"net/http"

	"courseboard/internal/config"
	"courseboard/internal/server"
)

func main() {
	cfg := config.Load()

	handler := server.SetupRoutes(cfg)

	log.Printf("course board listening on %s (catalog: %s)", cfg.Addr, cfg.CoursesURL)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
