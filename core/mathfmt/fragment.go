package mathfmt

import "strings"

// The fixed fragment text contains no '(', so it holds no trigger.
const (
	imageTmpl = `<img class="inline-block align-middle max-h-7 mx-0.5" src="{url}" alt="формула" />`

	vectorOpen  = `<span class="inline-block text-center italic text-blue-900 align-baseline"><span class="block h-1.5 leading-none text-center -mb-px">`
	vectorLabel = `</span><span class="block">`
	vectorClose = `</span></span>`

	fractionOpen  = `<span class="inline-flex flex-col items-center align-middle text-blue-900 mx-0.5 leading-tight"><span class="px-1 pb-0.5 border-b border-blue-900">`
	fractionDenom = `</span><span class="px-1 pt-0.5">`
	fractionClose = `</span></span>`

	radicalOpen     = `<span class="inline-flex items-end align-middle text-blue-900 mx-0.5">`
	radicalIndex    = `<span class="text-[0.6em] self-start mr-[-2px] mt-0.5">`
	radicalIndexEnd = `</span>`
	radicalSign     = `<span class="text-lg leading-none mr-[-1px]">√</span>`
	radicandOpen    = `<span class="border-t-2 border-blue-900 px-1 mt-px">`
	radicalClose    = `</span></span>`

	supOpen  = `<sup class="text-xs text-blue-900">`
	supClose = `</sup>`
	subOpen  = `<sub class="text-xs text-blue-900">`
	subClose = `</sub>`
)

var arity = map[Kind]int{
	Image:       1,
	Vector:      1,
	Fraction:    2,
	NthRoot:     2,
	Sqrt:        1,
	Superscript: 1,
	Subscript:   1,
}

// Markup renders the token on its own: plain text is escaped, notation
// becomes its fragment. Arguments are escaped text except for the spans of
// forms ordered before the token's own, which are rendered in place.
// A token whose Args do not fit its Kind is treated as plain text.
func (t Token) Markup() string {
	if n, ok := arity[t.Kind]; !ok || len(t.Args) != n {
		return Escape(t.Src)
	}
	var b strings.Builder
	switch t.Kind {
	case Image:
		b.WriteString(strings.Replace(imageTmpl, "{url}", escapeAttr(t.Args[0]), 1))
	case Vector:
		label := cleanArg(t.Args[0])
		b.WriteString(vectorOpen)
		b.WriteString(VectorArrow(label))
		b.WriteString(vectorLabel)
		t.writeArg(&b, label)
		b.WriteString(vectorClose)
	case Fraction:
		b.WriteString(fractionOpen)
		t.writeArg(&b, cleanArg(t.Args[0]))
		b.WriteString(fractionDenom)
		t.writeArg(&b, cleanArg(t.Args[1]))
		b.WriteString(fractionClose)
	case NthRoot:
		b.WriteString(radicalOpen)
		b.WriteString(radicalIndex)
		t.writeArg(&b, cleanArg(t.Args[0]))
		b.WriteString(radicalIndexEnd)
		t.writeRadicand(&b, t.Args[1])
	case Sqrt:
		b.WriteString(radicalOpen)
		t.writeRadicand(&b, t.Args[0])
	case Superscript:
		b.WriteString(supOpen)
		t.writeArg(&b, t.Args[0])
		b.WriteString(supClose)
	case Subscript:
		b.WriteString(subOpen)
		t.writeArg(&b, t.Args[0])
		b.WriteString(subClose)
	}
	return b.String()
}

func (t Token) writeRadicand(b *strings.Builder, radicand string) {
	b.WriteString(radicalSign)
	b.WriteString(radicandOpen)
	t.writeArg(b, cleanArg(radicand))
	b.WriteString(radicalClose)
}

// writeArg renders one argument of t, recognizing only the forms ordered before t.Kind.
func (t Token) writeArg(b *strings.Builder, arg string) {
	for _, tok := range tokenize(arg, t.Kind) {
		b.WriteString(tok.Markup())
	}
}

func cleanArg(s string) string { return strings.TrimSpace(s) }
