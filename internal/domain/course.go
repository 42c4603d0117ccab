package domain

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Course is the canonical representation of a course on the board.
// The catalog endpoint owns the data; this layer is read-only against it,
// so no bounds are enforced and malformed values render as-is.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Duration    string   `json:"duration"` // pre-formatted, e.g. "8 weeks"
	Level       Level    `json:"level"`
	Rating      float64  `json:"rating"`
	Students    *int     `json:"students,omitempty"`
	Progress    *int     `json:"progress,omitempty"` // percent 0-100
	ImageURL    string   `json:"imageUrl"`
	Topics      []string `json:"topics"`
}

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

var printer = message.NewPrinter(language.English)

// HasStarted reports whether the learner has any progress in the course.
// Both the progress block and the footer button key off this one predicate.
func (c Course) HasStarted() bool {
	return c.Progress != nil && *c.Progress > 0
}

// ProgressPercent returns the progress value, 0 when absent.
func (c Course) ProgressPercent() int {
	if c.Progress == nil {
		return 0
	}
	return *c.Progress
}

// RatingLabel formats the rating rounded to one decimal place.
func (c Course) RatingLabel() string {
	return fmt.Sprintf("%.1f", c.Rating)
}

// StudentsLabel renders the enrolled count with locale thousands
// separators, or "N/A students" when the catalog omits the field.
func (c Course) StudentsLabel() string {
	if c.Students == nil {
		return "N/A students"
	}
	return printer.Sprintf("%d students", *c.Students)
}

func (c Course) ButtonLabel() string {
	if c.HasStarted() {
		return "Continue Learning"
	}
	return "Enroll Now"
}
