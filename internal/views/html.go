package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so components can emit markup
// without checking every call.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *writer {
	return &writer{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (b *writer) raw(s string) {
	if b.err != nil {
		return
	}
	_, b.err = io.WriteString(b.w, s)
}

// text writes escaped text.
func (b *writer) text(s string) {
	b.raw(templ.EscapeString(s))
}

func (b *writer) textf(format string, args ...any) {
	b.text(fmt.Sprintf(format, args...))
}

// open writes a start tag with an optional class.
func (b *writer) open(tag, class string) {
	if class == "" {
		b.raw("<" + tag + ">")
		return
	}
	b.raw("<" + tag + ` class="` + templ.EscapeString(class) + `">`)
}

// openAttrs writes a start tag with escaped attribute pairs.
func (b *writer) openAttrs(tag string, attrs ...string) {
	b.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		b.raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}
	b.raw(">")
}

func (b *writer) close(tag string) {
	b.raw("</" + tag + ">")
}

// el writes a complete element with escaped text content.
func (b *writer) el(tag, class, content string) {
	b.open(tag, class)
	b.text(content)
	b.close(tag)
}

func (b *writer) link(href, class, content string) {
	b.openAttrs("a", "href", string(templ.URL(href)), "class", class)
	b.text(content)
	b.close("a")
}

// stat writes a labelled value.
func (b *writer) stat(label, value, valueClass string) {
	b.open("div", "stat")
	b.el("span", "stat-label", label)
	b.el("span", joinClass("stat-value", valueClass), value)
	b.close("div")
}

// bar writes a two sided bar whose segments have the given widths.
func (b *writer) bar(class string, left, right float64) {
	b.open("div", joinClass("bar", class))
	b.openAttrs("div", "class", "bar-left", "style", Width(left))
	b.close("div")
	b.openAttrs("div", "class", "bar-right", "style", Width(right))
	b.close("div")
	b.close("div")
}

func (b *writer) render(c templ.Component) {
	if b.err != nil || c == nil {
		return
	}
	b.err = c.Render(b.ctx, b.w)
}

func joinClass(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}

// component wraps a render function as a templ component.
func component(fn func(b *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := newWriter(ctx, w)
		fn(b)
		return b.err
	})
}
