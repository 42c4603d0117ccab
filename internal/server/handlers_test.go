package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/andybalholm/brotli"

	"courseboard/internal/config"
	"courseboard/internal/view"
)

const coursesJSON = `[
	{"id": "go-101", "title": "Go Basics", "instructor": "Ana Rivera", "rating": 4.7, "progress": 45, "topics": ["Go"]},
	{"id": "rust-201", "title": "Rust Deep Dive", "instructor": "Bo Chen", "rating": 4.9, "topics": []}
]`

func newBoard(t *testing.T, upstream http.HandlerFunc) (*httptest.Server, *httptest.Server) {
	t.Helper()

	api := httptest.NewServer(upstream)

	cfg := config.Load()
	cfg.CoursesURL = api.URL

	board := httptest.NewServer(SetupRoutes(cfg))

	t.Cleanup(api.Close)
	t.Cleanup(board.Close)
	return board, api
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, string(body)
}

func TestPageShell(t *testing.T) {
	var upstreamCalls int32
	board, _ := newBoard(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamCalls, 1)
	})

	status, body := get(t, board.URL+"/")

	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if !strings.Contains(body, "course-card skeleton") {
		t.Error("Expected skeleton cards in the shell")
	}
	if atomic.LoadInt32(&upstreamCalls) != 0 {
		t.Error("The shell must not call the catalog")
	}
}

func TestGridLoaded(t *testing.T) {
	board, _ := newBoard(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(coursesJSON))
	})

	status, body := get(t, board.URL+"/courses/grid")

	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if got := strings.Count(body, "data-id="); got != 2 {
		t.Errorf("Expected 2 cards, got %d", got)
	}
	if strings.Index(body, "go-101") > strings.Index(body, "rust-201") {
		t.Error("Expected cards in catalog order")
	}
	if !strings.Contains(body, "Continue Learning") || !strings.Contains(body, "Enroll Now") {
		t.Error("Expected both button variants for this catalog")
	}
}

func TestGridEmptyCatalog(t *testing.T) {
	board, _ := newBoard(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, body := get(t, board.URL+"/courses/grid")

	if !strings.Contains(body, view.MsgNoCourses) {
		t.Errorf("Expected %q, got: %s", view.MsgNoCourses, body)
	}
	if strings.Contains(body, "data-id=") {
		t.Error("Expected zero cards for an empty catalog")
	}
}

func TestGridUpstreamFailure(t *testing.T) {
	board, _ := newBoard(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("secret diagnostic detail"))
	})

	_, body := get(t, board.URL+"/courses/grid")

	if !strings.Contains(body, view.MsgFetchFailed) {
		t.Errorf("Expected the generic fetch-error message, got: %s", body)
	}
	if strings.Contains(body, "data-id=") {
		t.Error("Expected zero cards on fetch failure")
	}
	// the cause never reaches the user
	if strings.Contains(body, "secret diagnostic detail") {
		t.Error("Upstream error detail leaked into the response")
	}
}

func TestGridUpstreamUnreachable(t *testing.T) {
	board, api := newBoard(t, func(w http.ResponseWriter, r *http.Request) {})
	api.Close()

	_, body := get(t, board.URL+"/courses/grid")

	if !strings.Contains(body, view.MsgFetchFailed) {
		t.Errorf("Expected the generic fetch-error message, got: %s", body)
	}
}

func TestHealthz(t *testing.T) {
	board, _ := newBoard(t, func(w http.ResponseWriter, r *http.Request) {})

	status, body := get(t, board.URL+"/healthz")

	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if !strings.Contains(body, `"status":"ok"`) {
		t.Errorf("Unexpected health body: %s", body)
	}
}

func TestBrotliNegotiation(t *testing.T) {
	board, _ := newBoard(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(coursesJSON))
	})

	req, err := http.NewRequest(http.MethodGet, board.URL+"/courses/grid", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Accept-Encoding", "br")

	res, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if got := res.Header.Get("Content-Encoding"); got != "br" {
		t.Fatalf("Expected Content-Encoding br, got %q", got)
	}

	decoded, err := io.ReadAll(brotli.NewReader(res.Body))
	if err != nil {
		t.Fatalf("brotli decode: %v", err)
	}
	if !strings.Contains(string(decoded), "go-101") {
		t.Error("Expected the grid inside the compressed body")
	}
}

func TestNoBrotliWithoutHeader(t *testing.T) {
	board, _ := newBoard(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	req, err := http.NewRequest(http.MethodGet, board.URL+"/courses/grid", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Accept-Encoding", "identity")

	res, err := http.DefaultTransport.RoundTrip(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if got := res.Header.Get("Content-Encoding"); got == "br" {
		t.Error("Did not expect brotli without the client asking for it")
	}
}
