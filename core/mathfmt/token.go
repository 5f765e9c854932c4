package mathfmt

// Kind identifies what a Token holds.
type Kind int

const (
	Text Kind = iota
	Image
	Vector
	Fraction
	NthRoot
	Sqrt
	Superscript
	Subscript
)

var kindNames = [...]string{"text", "image", "vector", "fraction", "root", "sqrt", "sup", "sub"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Token is either a run of plain text or one recognized notation span.
// Src is the verbatim source of the token. Args holds the raw arguments of a
// notation span: the URL, label or content for single-argument kinds,
// numerator and denominator for fractions, index and radicand for nth roots.
// Notation nested inside an argument is kept verbatim in Args.
type Token struct {
	Kind Kind
	Src  string
	Args []string
}

// stage describes one notation form: the trigger it starts with and the
// matcher run on the text following the trigger.
type stage struct {
	kind    Kind
	trigger string
	match   func(sc *scanner, from int) (args []string, end int, ok bool)
}

// stages lists the notation forms in precedence order. When two forms could
// start at the same position the earlier one wins. The argument of a form may
// hold spans of the forms listed before it, never of itself or later ones.
var stages []stage

// init assigns stages here rather than in its declaration: the matchers read
// stages themselves, which would otherwise be an initialization cycle.
func init() {
	stages = []stage{
		{Image, "[IMG:", (*scanner).image},
		{Vector, "vec(", (*scanner).vector},
		{Fraction, "(", (*scanner).fraction},
		{NthRoot, "root(", (*scanner).nthRoot},
		{Sqrt, "sqrt(", (*scanner).sqrt},
		{Superscript, "^(", (*scanner).superscript},
		{Subscript, "_(", (*scanner).subscript},
	}
}

// Tokenize splits source into plain-text and notation tokens. Adjacent
// plain text is merged into one token; concatenating the Src of all tokens
// gives back source.
func Tokenize(source string) []Token {
	return tokenize(source, Subscript+1)
}

// tokenize recognizes only the forms ordered before limit. Arguments of a
// notation token are tokenized again with its own Kind as the limit.
func tokenize(source string, limit Kind) []Token {
	var tokens []Token
	sc := newScanner(source, limit)
	textStart := 0
	for pos := 0; pos < len(source); {
		tok, end, ok := sc.next(pos)
		if !ok {
			pos++
			continue
		}
		if pos > textStart {
			tokens = append(tokens, Token{Kind: Text, Src: source[textStart:pos]})
		}
		tokens = append(tokens, tok)
		pos, textStart = end, end
	}
	if textStart < len(source) {
		tokens = append(tokens, Token{Kind: Text, Src: source[textStart:]})
	}
	return tokens
}
