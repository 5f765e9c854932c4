package mathfmt

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	arrowCharWidth = 9
	arrowMinWidth  = 12
	arrowColor     = "#1e3a8a"
)

// ArrowWidth is the width of the arrow drawn over a vector label, wide enough
// to span the trimmed label. Characters are counted after NFC normalisation so
// a letter with a combining mark counts once.
func ArrowWidth(label string) int {
	n := utf8.RuneCountInString(norm.NFC.String(cleanArg(label)))
	return max(n*arrowCharWidth, arrowMinWidth)
}

// VectorArrow draws the arrow for label: a horizontal line ending 2 units
// before the right edge and a two-segment arrowhead at its tip.
func VectorArrow(label string) string {
	w := ArrowWidth(label)
	return fmt.Sprintf(
		`<svg width="%d" height="6" viewBox="0 0 %d 6" fill="none" class="block mx-auto">`+
			`<line x1="0" y1="3" x2="%d" y2="3" stroke="%s" stroke-width="1.2"/>`+
			`<polyline points="%d,1 %d,3 %d,5" stroke="%s" stroke-width="1.2" fill="none"/>`+
			`</svg>`,
		w, w,
		w-2, arrowColor,
		w-5, w-1, w-5, arrowColor,
	)
}
