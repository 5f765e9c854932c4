package mathfmt

import (
	"html"
	"strings"
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces '&', '<' and '>' with their HTML entities.
// Quotes are left alone: the result is meant for text content only.
func Escape(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr makes s safe inside a double-quoted attribute value.
func escapeAttr(s string) string {
	return html.EscapeString(s)
}
