package view

import (
	"fmt"
	"html"

	"github.com/rohanthewiz/element"

	"courseboard/internal/domain"
)

// Card renders one course. It is pure with respect to the record: the
// favorite toggle ships in its off state and is flipped client-side only.
// Course fields are escaped here because element writes raw markup.
type Card struct {
	Course domain.Course
}

func (c Card) Render(b *element.Builder) any {
	crs := c.Course

	b.Div("class", "course-card", "data-id", html.EscapeString(crs.ID)).R(
		b.Div("class", "card-media").R(
			b.Img("src", html.EscapeString(crs.ImageURL), "alt", html.EscapeString(crs.Title)),
			b.Button("class", "fav-btn", "type", "button", "data-fav", "1",
				"aria-label", "Toggle favorite").T("☆"),
		),
		b.Div("class", "card-body").R(
			b.Span("class", "level "+levelClass(crs.Level)).T(html.EscapeString(string(crs.Level))),
			b.H3("class", "card-title").T(html.EscapeString(crs.Title)),
			b.P("class", "card-desc").T(html.EscapeString(crs.Description)),
			b.P("class", "card-instructor").T("By "+html.EscapeString(crs.Instructor)),
			b.Div("class", "card-meta").R(
				b.Span("class", "rating").T("★ "+crs.RatingLabel()),
				b.Span("class", "duration").T(html.EscapeString(crs.Duration)),
				b.Span("class", "students").T(html.EscapeString(crs.StudentsLabel())),
			),
			c.progressBlock(b),
			c.topics(b),
		),
		b.Div("class", "card-footer").R(
			c.footerButton(b),
		),
	)
	return nil
}

func (c Card) progressBlock(b *element.Builder) any {
	crs := c.Course
	if !crs.HasStarted() {
		return nil
	}
	b.Div("class", "progress-block").R(
		b.Div("class", "progress-label").R(
			b.Span().T("Progress"),
			b.Span().T(fmt.Sprintf("%d%%", crs.ProgressPercent())),
		),
		b.Div("class", "progress-track").R(
			b.Div("class", "progress-fill",
				"style", fmt.Sprintf("width:%d%%", crs.ProgressPercent())).R(),
		),
	)
	return nil
}

func (c Card) topics(b *element.Builder) any {
	if len(c.Course.Topics) == 0 {
		b.P("class", "no-topics").T(MsgNoTopics)
		return nil
	}
	b.Div("class", "topics").R(
		func() any {
			for _, topic := range c.Course.Topics {
				b.Span("class", "topic-tag").T(html.EscapeString(topic))
			}
			return nil
		}(),
	)
	return nil
}

func (c Card) footerButton(b *element.Builder) any {
	crs := c.Course
	if crs.HasStarted() {
		b.Button("class", "cta cta-continue", "type", "button").R(
			b.Span("class", "cta-icon").T("▶"),
			b.Span().T(crs.ButtonLabel()),
		)
		return nil
	}
	b.Button("class", "cta cta-enroll", "type", "button").T(crs.ButtonLabel())
	return nil
}

func levelClass(l domain.Level) string {
	switch l {
	case domain.LevelBeginner:
		return "level-beginner"
	case domain.LevelIntermediate:
		return "level-intermediate"
	case domain.LevelAdvanced:
		return "level-advanced"
	}
	return "level-unknown"
}
