package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"courseboard/internal/domain"
	"courseboard/internal/view"
)

// CourseLister is what the board needs from the catalog.
type CourseLister interface {
	List(ctx context.Context) ([]domain.Course, error)
}

// BoardHandler owns the fetch/render lifecycle of the course board.
type BoardHandler struct {
	catalog      CourseLister
	fetchTimeout time.Duration
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(c CourseLister, fetchTimeout time.Duration) *BoardHandler {
	if fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}
	return &BoardHandler{catalog: c, fetchTimeout: fetchTimeout}
}

// Page handles GET /. It serves the shell with the loading skeletons
// immediately; no catalog call happens here.
func (h *BoardHandler) Page(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, view.RenderPage())
}

// Grid handles GET /courses/grid: one unconditional catalog fetch, then
// the loaded, empty or error state. The fetch is bound to the request
// context, so a client that navigates away cancels the upstream call
// instead of the result being written to a dead connection.
func (h *BoardHandler) Grid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.fetchTimeout)
	defer cancel()

	courses, err := h.catalog.List(ctx)
	if err != nil {
		// the cause stays in the log; users get one generic message
		log.Printf("Error fetching courses: %v", err)
		writeHTML(w, view.RenderError(view.MsgFetchFailed))
		return
	}

	writeHTML(w, view.RenderGrid(courses))
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, body); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
