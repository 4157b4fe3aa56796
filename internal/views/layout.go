// Package views renders the portal pages. Components take canonical models
// only and never look at errors; handlers decide what to show.
package views

import (
	"github.com/a-h/templ"

	"github.com/scout9/scout9-web/internal/models"
)

const stylesheet = `
body{margin:0;font-family:system-ui,sans-serif;background:#0b0e14;color:#e6e6e6}
a{color:inherit}
header.site{display:flex;gap:1.5rem;align-items:center;padding:1rem 2rem;border-bottom:1px solid #222}
main{max-width:1100px;margin:0 auto;padding:1.5rem 2rem}
section{margin:1.5rem 0;padding:1rem 1.25rem;border:1px solid #222;border-radius:8px}
.banner{padding:.75rem 1rem;border-radius:6px;background:#3a2f0b;color:#ffd66b}
.error-state{padding:2rem;text-align:center;border:1px solid #5a1a1a;border-radius:8px}
.bar{display:flex;height:10px;border-radius:5px;overflow:hidden;background:#222}
.bar-left{background:var(--accent)}.bar-right{background:#555}
.theme-lol{--accent:#c89b3c}.theme-valorant{--accent:#ff4655}
.stat{display:inline-flex;flex-direction:column;margin-right:1.5rem}
.stat-label{font-size:.75rem;opacity:.7}
.rate-strong,.confidence-high,.threat-low{color:#3ecf8e}
.rate-even,.confidence-medium,.threat-medium{color:#f5c542}
.rate-weak,.confidence-low,.threat-high{color:#f59342}
.rate-poor,.confidence-poor,.threat-critical{color:#f55454}
.team-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(160px,1fr));gap:.75rem}
`

// Page is the document shell shared by every screen.
func Page(heading string, title models.Title, body templ.Component) templ.Component {
	return component(func(b *writer) {
		theme := "theme-lol"
		if title == models.TitleValorant {
			theme = "theme-valorant"
		}
		b.raw("<!DOCTYPE html>")
		b.raw(`<html lang="en">`)
		b.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.open("title", "")
		if heading != "" {
			b.text(heading + " | Scout9")
		} else {
			b.text("Scout9")
		}
		b.close("title")
		b.raw("<style>" + stylesheet + "</style></head>")
		b.openAttrs("body", "class", theme)

		b.open("header", "site")
		b.link("/", "brand", "Scout9")
		b.openAttrs("nav", "aria-label", "Main")
		for _, t := range models.Titles {
			b.link(GenerateURL(t), "nav-link", t.DisplayName())
		}
		b.link("/compare?title="+string(title.OrDefault()), "nav-link", "Compare")
		b.link("/reports", "nav-link", "Reports")
		b.close("nav")
		b.close("header")

		b.open("main", "")
		b.render(body)
		b.close("main")
		b.raw("</body></html>")
	})
}

// Banner shows a non-blocking notice such as the demo data warning. An empty
// notice renders nothing.
func Banner(notice string) templ.Component {
	return component(func(b *writer) {
		if notice == "" {
			return
		}
		b.openAttrs("div", "class", "banner", "role", "status")
		b.text(notice)
		b.close("div")
	})
}

// ErrorState is the blocking error screen with a retry action.
func ErrorState(message, retryURL string) templ.Component {
	return component(func(b *writer) {
		b.openAttrs("div", "class", "error-state", "role", "alert")
		b.el("h2", "", "Something went wrong")
		b.el("p", "error-message", message)
		if retryURL != "" {
			b.link(retryURL, "retry", "Try again")
		}
		b.close("div")
	})
}

// Sequence renders components one after another.
func Sequence(parts ...templ.Component) templ.Component {
	return component(func(b *writer) {
		for _, p := range parts {
			b.render(p)
		}
	})
}
