package view

import (
	"github.com/rohanthewiz/element"
)

// Page is the shell served on the first request. It paints the skeleton
// grid immediately; a small script then fetches the rendered grid fragment
// and swaps it in, and flips favorite toggles without any network traffic.
type Page struct {
	SkeletonCount int
}

func (p Page) Render(b *element.Builder) any {
	n := p.SkeletonCount
	if n <= 0 {
		n = 6
	}

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "utf-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1"),
			b.Title().T("Courses"),
			b.Style().T(pageCSS),
		),
		b.Body().R(
			b.H1("class", "page-title").T("Courses"),
			b.Div("id", "board").R(
				b.Div("class", "course-grid").R(
					func() any {
						for i := 0; i < n; i++ {
							Skeleton{}.Render(b)
						}
						return nil
					}(),
				),
			),
			b.Script().T(pageJS),
		),
	)
	return nil
}

const pageJS = `
(function () {
  var board = document.getElementById('board');

  fetch('/courses/grid')
    .then(function (res) { return res.text(); })
    .then(function (html) { board.innerHTML = html; })
    .catch(function () {
      board.innerHTML = '<div class="error-box"><p class="error-message">` + MsgFetchFailed + `<\/p><\/div>';
    });

  // favorite toggles are visual-only: flip a class, touch no network
  document.addEventListener('click', function (ev) {
    var btn = ev.target.closest('[data-fav]');
    if (!btn) return;
    btn.classList.toggle('is-fav');
    btn.textContent = btn.classList.contains('is-fav') ? '★' : '☆';
  });
})();
`

const pageCSS = `
:root { --ink: #1f2430; --muted: #6b7280; --accent: #2563eb; --bg: #f5f6f8; }
* { box-sizing: border-box; }
body { margin: 0; padding: 24px; font-family: system-ui, sans-serif; background: var(--bg); color: var(--ink); }
.page-title { margin: 0 0 20px; font-size: 1.6rem; }
.course-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 20px; }
.course-card { display: flex; flex-direction: column; background: #fff; border-radius: 10px; overflow: hidden; box-shadow: 0 1px 4px rgba(0,0,0,.08); }
.card-media { position: relative; height: 150px; background: #e5e7eb; }
.card-media img { width: 100%; height: 100%; object-fit: cover; display: block; }
.fav-btn { position: absolute; top: 8px; right: 8px; border: 0; border-radius: 50%; width: 34px; height: 34px; background: rgba(255,255,255,.9); font-size: 1rem; cursor: pointer; color: var(--muted); }
.fav-btn.is-fav { color: #f59e0b; }
.card-body { padding: 14px; flex: 1; }
.level { display: inline-block; padding: 2px 8px; border-radius: 999px; font-size: .72rem; }
.level-beginner { background: #dcfce7; color: #166534; }
.level-intermediate { background: #fef9c3; color: #854d0e; }
.level-advanced { background: #fee2e2; color: #991b1b; }
.level-unknown { background: #e5e7eb; color: var(--muted); }
.card-title { margin: 8px 0 4px; font-size: 1.05rem; }
.card-desc { margin: 0 0 6px; font-size: .85rem; color: var(--muted); }
.card-instructor { margin: 0 0 8px; font-size: .8rem; }
.card-meta { display: flex; gap: 12px; font-size: .8rem; color: var(--muted); }
.rating { color: #b45309; }
.progress-block { margin-top: 10px; }
.progress-label { display: flex; justify-content: space-between; font-size: .75rem; color: var(--muted); margin-bottom: 4px; }
.progress-track { height: 6px; border-radius: 3px; background: #e5e7eb; overflow: hidden; }
.progress-fill { height: 100%; background: var(--accent); }
.topics { display: flex; flex-wrap: wrap; gap: 6px; margin-top: 10px; }
.topic-tag { background: #eef2ff; color: #3730a3; border-radius: 6px; padding: 2px 8px; font-size: .72rem; }
.no-topics { margin: 10px 0 0; font-size: .78rem; color: var(--muted); font-style: italic; }
.card-footer { padding: 12px 14px; border-top: 1px solid #eef0f3; }
.cta { width: 100%; border: 0; border-radius: 8px; padding: 9px 0; font-size: .9rem; cursor: pointer; }
.cta-enroll { background: var(--accent); color: #fff; }
.cta-continue { background: #111827; color: #fff; display: flex; align-items: center; justify-content: center; gap: 8px; }
.cta-icon { font-size: .75rem; }
.error-box { background: #fff; border: 1px solid #fecaca; border-radius: 10px; padding: 28px; text-align: center; }
.error-message { margin: 0; color: #991b1b; }
.skeleton .card-media { background: #e5e7eb; }
.line { height: 12px; border-radius: 6px; margin-bottom: 10px; background: #e5e7eb; }
.line.short { width: 35%; }
.line.half { width: 55%; }
.line.button { height: 32px; margin: 0; }
.shimmer { animation: shimmer 1.4s ease-in-out infinite; }
@keyframes shimmer { 0%, 100% { opacity: 1; } 50% { opacity: .45; } }
`
