package view

import (
	"github.com/rohanthewiz/element"

	"courseboard/internal/domain"
)

// Grid renders one card per course, in catalog order. An empty catalog
// gets its own message through the same placeholder component errors use.
type Grid struct {
	Courses []domain.Course
}

func (g Grid) Render(b *element.Builder) any {
	if len(g.Courses) == 0 {
		ErrorBox{Message: MsgNoCourses}.Render(b)
		return nil
	}
	b.Div("class", "course-grid").R(
		func() any {
			for _, crs := range g.Courses {
				Card{Course: crs}.Render(b)
			}
			return nil
		}(),
	)
	return nil
}
