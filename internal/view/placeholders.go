package view

import (
	"html"

	"github.com/rohanthewiz/element"
)

// Skeleton mimics the card layout while the grid fragment loads.
// No inputs, no state.
type Skeleton struct{}

func (s Skeleton) Render(b *element.Builder) any {
	b.Div("class", "course-card skeleton").R(
		b.Div("class", "card-media shimmer").R(),
		b.Div("class", "card-body").R(
			b.Div("class", "line shimmer short").R(),
			b.Div("class", "line shimmer").R(),
			b.Div("class", "line shimmer").R(),
			b.Div("class", "line shimmer half").R(),
		),
		b.Div("class", "card-footer").R(
			b.Div("class", "line shimmer button").R(),
		),
	)
	return nil
}

// ErrorBox shows one message inside a minimal card. It serves both the
// fetch-error and the empty-catalog cases, with different messages.
type ErrorBox struct {
	Message string
}

func (e ErrorBox) Render(b *element.Builder) any {
	b.Div("class", "error-box").R(
		b.P("class", "error-message").T(html.EscapeString(e.Message)),
	)
	return nil
}
