package mathfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []Token
	}{
		{name: "empty", source: "", want: nil},
		{name: "text only", source: "abc", want: []Token{{Kind: Text, Src: "abc"}}},
		{
			name:   "mixed",
			source: "a vec(AB) b",
			want: []Token{
				{Kind: Text, Src: "a "},
				{Kind: Vector, Src: "vec(AB)", Args: []string{"AB"}},
				{Kind: Text, Src: " b"},
			},
		},
		{
			name:   "adjacent spans",
			source: "x^(2)_(i)",
			want: []Token{
				{Kind: Text, Src: "x"},
				{Kind: Superscript, Src: "^(2)", Args: []string{"2"}},
				{Kind: Subscript, Src: "_(i)", Args: []string{"i"}},
			},
		},
		{
			name:   "failed trigger merges into text",
			source: "a_() (1/2)",
			want: []Token{
				{Kind: Text, Src: "a_() "},
				{Kind: Fraction, Src: "(1/2)", Args: []string{"1", "2"}},
			},
		},
		{
			name:   "raw arguments",
			source: "root( 3 , 8 )[IMG:https://e.com/a.png]",
			want: []Token{
				{Kind: NthRoot, Src: "root( 3 , 8 )", Args: []string{" 3 ", " 8 "}},
				{Kind: Image, Src: "[IMG:https://e.com/a.png]", Args: []string{"https://e.com/a.png"}},
			},
		},
		{
			name:   "repeated forms",
			source: "vec(a) vec(b) sqrt(c",
			want: []Token{
				{Kind: Vector, Src: "vec(a)", Args: []string{"a"}},
				{Kind: Text, Src: " "},
				{Kind: Vector, Src: "vec(b)", Args: []string{"b"}},
				{Kind: Text, Src: " sqrt(c"},
			},
		},
		{
			name:   "nested notation kept in arguments",
			source: "sqrt((1/2))^(sqrt(x))",
			want: []Token{
				{Kind: Sqrt, Src: "sqrt((1/2))", Args: []string{"(1/2)"}},
				{Kind: Superscript, Src: "^(sqrt(x))", Args: []string{"sqrt(x)"}},
			},
		},
		{
			name:   "sqrt radicand stops at first closing paren",
			source: "sqrt(x^(2))",
			want: []Token{
				{Kind: Sqrt, Src: "sqrt(x^(2)", Args: []string{"x^(2"}},
				{Kind: Text, Src: ")"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.source))
		})
	}
}

func TestTokenize_roundTrip(t *testing.T) {
	sources := []string{
		"Найдите sqrt(x^(2)) если (a/b) = 3",
		"[IMG:https://a.com/1.png]vec(AB)root(3,8)_(n)^((n+1))",
		"((( ))) vec( sqrt( [IMG:",
	}
	for _, src := range sources {
		var b strings.Builder
		for _, tok := range Tokenize(src) {
			b.WriteString(tok.Src)
		}
		assert.Equal(t, src, b.String())
	}
}

// Generated fragments must not contain any trigger, so nothing a stage
// produces could ever be picked up as notation.
func TestMarkup_fragmentsHoldNoTriggers(t *testing.T) {
	sources := map[Kind]string{
		Image:       "[IMG:https://e.com/a.png]",
		Vector:      "vec(AB)",
		Fraction:    "(1/2)",
		NthRoot:     "root(3, 8)",
		Sqrt:        "sqrt(16)",
		Superscript: "^(2)",
		Subscript:   "_(n)",
	}
	require.Len(t, sources, len(stages))

	for kind, src := range sources {
		toks := Tokenize(src)
		require.Len(t, toks, 1, "source %q", src)
		require.Equal(t, kind, toks[0].Kind)

		frag := toks[0].Markup()
		for _, st := range stages {
			assert.NotContains(t, frag, st.trigger, "%s fragment", kind)
		}
		for _, tok := range Tokenize(frag) {
			assert.Equal(t, Text, tok.Kind, "%s fragment rescanned", kind)
		}
	}
}

// The text a fragment adds around its arguments must not contain any
// trigger, whatever the arguments are.
func TestMarkup_fixedTextHoldsNoTriggers(t *testing.T) {
	fixed := map[string]string{
		"imageTmpl":       strings.Replace(imageTmpl, "{url}", "", 1),
		"vectorOpen":      vectorOpen,
		"vectorLabel":     vectorLabel,
		"vectorClose":     vectorClose,
		"fractionOpen":    fractionOpen,
		"fractionDenom":   fractionDenom,
		"fractionClose":   fractionClose,
		"radicalOpen":     radicalOpen,
		"radicalIndex":    radicalIndex,
		"radicalIndexEnd": radicalIndexEnd,
		"radicalSign":     radicalSign,
		"radicandOpen":    radicandOpen,
		"radicalClose":    radicalClose,
		"supOpen":         supOpen,
		"supClose":        supClose,
		"subOpen":         subOpen,
		"subClose":        subClose,
		"arrow":           VectorArrow("AB"),
		"wide arrow":      VectorArrow("ABCDEFGHIJ"),
	}
	for name, text := range fixed {
		assert.NotContains(t, text, "(", name)
		assert.NotContains(t, text, ")", name)
		assert.NotContains(t, text, "[IMG:", name)
	}
}

func TestMarkup_argumentsMayCarryParens(t *testing.T) {
	// arguments are copied into the fragment, parentheses included
	assert.Contains(t, Render("x^((n+1))"), ">(n+1)<")
	assert.Contains(t, Render("vec((AB)"), ">(AB<")
}

func TestMarkup_badArityIsText(t *testing.T) {
	tok := Token{Kind: Fraction, Src: "(1<2)", Args: []string{"1<2"}}
	assert.Equal(t, "(1&lt;2)", tok.Markup())

	tok = Token{Kind: Kind(42), Src: "x&y"}
	assert.Equal(t, "x&amp;y", tok.Markup())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "text", Text.String())
	assert.Equal(t, "root", NthRoot.String())
	assert.Equal(t, "sub", Subscript.String())
	assert.Equal(t, "unknown", Kind(-1).String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestStages_order(t *testing.T) {
	want := []Kind{Image, Vector, Fraction, NthRoot, Sqrt, Superscript, Subscript}
	got := make([]Kind, 0, len(stages))
	for _, st := range stages {
		got = append(got, st.kind)
	}
	assert.Equal(t, want, got)
}
