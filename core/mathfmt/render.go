package mathfmt

import (
	"html/template"
	"strings"
)

// Render converts task text to markup. It never fails: notation that does
// not match is kept as escaped text. Safe for concurrent use.
func Render(source string) string {
	if source == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(source))
	for _, tok := range Tokenize(source) {
		b.WriteString(tok.Markup())
	}
	return b.String()
}

// RenderHTML is Render typed for html/template, which then inserts the
// markup without escaping it again.
func RenderHTML(source string) template.HTML {
	return template.HTML(Render(source))
}
