// Package view renders the board's HTML: the page shell, the course grid
// fragment, and the placeholder states.
package view

import (
	"github.com/rohanthewiz/element"

	"courseboard/internal/domain"
)

// User-facing messages. Fetch failures collapse into MsgFetchFailed no
// matter the cause; the cause itself only goes to the server log.
const (
	MsgFetchFailed = "Failed to load courses. Please try again later."
	MsgNoCourses   = "No courses available."
	MsgNoTopics    = "No topics available."
)

// RenderPage renders the full page shell, skeletons included. No course
// data is needed here; the grid arrives via a follow-up fetch.
func RenderPage() string {
	b := element.NewBuilder()
	Page{}.Render(b)
	return "<!doctype html>\n" + b.String()
}

// RenderGrid renders the loaded state: one card per course in catalog
// order, or the empty-catalog message.
func RenderGrid(courses []domain.Course) string {
	b := element.NewBuilder()
	Grid{Courses: courses}.Render(b)
	return b.String()
}

// RenderError renders a message-only placeholder card.
func RenderError(msg string) string {
	b := element.NewBuilder()
	ErrorBox{Message: msg}.Render(b)
	return b.String()
}
