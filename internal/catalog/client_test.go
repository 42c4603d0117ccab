package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"courseboard/internal/httpx"
)

func TestNew(t *testing.T) {
	client := New("http://localhost:3000/api/courses")

	if client.BaseURL != "http://localhost:3000/api/courses" {
		t.Errorf("Unexpected BaseURL '%s'", client.BaseURL)
	}

	if client.HTTP == nil {
		t.Error("Expected HTTP client to be initialized")
	}
}

func TestListSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Expected Accept 'application/json', got '%s'", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "go-101", "title": "Go Basics", "rating": 4.7, "topics": ["Go"]},
			{"id": "rust-201", "title": "Rust Deep Dive", "rating": 4.9, "topics": []}
		]`))
	}))
	defer server.Close()

	client := New(server.URL)
	courses, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(courses) != 2 {
		t.Fatalf("Expected 2 courses, got %d", len(courses))
	}

	// response order must survive decoding for stable card rendering
	if courses[0].ID != "go-101" || courses[1].ID != "rust-201" {
		t.Errorf("Unexpected course order: %s, %s", courses[0].ID, courses[1].ID)
	}
}

func TestListEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL)
	courses, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("Expected no error for empty catalog, got %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("Expected 0 courses, got %d", len(courses))
	}
}

func TestListNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.List(context.Background())
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}

	var herr *httpx.HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("Expected *httpx.HTTPError in chain, got %v", err)
	}
	if herr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", herr.StatusCode)
	}
}

func TestListMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.List(context.Background())
	if err == nil {
		t.Fatal("Expected error for malformed body, got nil")
	}
}

func TestListCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(server.URL)
	_, err := client.List(ctx)
	if err == nil {
		t.Fatal("Expected error for canceled context, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got %v", err)
	}
}
