package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown renders sheet descriptions. Editors may use Markdown in the
// description column; the output is sanitised before it reaches a page.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdown builds a GFM renderer with a UGC sanitising policy. Fenced
// code (decklists, mostly) is highlighted with inline styles, so the policy
// keeps the colour styles on spans.
func NewMarkdown() *Markdown {
	policy := bluemonday.UGCPolicy()
	policy.AllowStyles("color", "background-color", "font-weight", "font-style").OnElements("span", "pre")

	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: policy,
	}
}

// Render converts text to sanitised HTML. Blank text renders nothing.
func (m *Markdown) Render(text string) template.HTML {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(m.policy.SanitizeBytes(buf.Bytes()))
}
