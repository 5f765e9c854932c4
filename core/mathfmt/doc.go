/*
Package mathfmt turns task text written with the compact math notation of the
task bank into markup that can be injected into a page as is.

Recognized notation, in precedence order:

	[IMG:https://host/f.png]   inline formula image
	vec(AB)                    vector: arrow drawn over the label
	(a/b)                      fraction, no parentheses inside either part
	root(3, 8)                 nth root
	sqrt(16)                   square root
	x^(2), x^((n+1))           superscript, one level of nested parentheses
	a_(n)                      subscript

An argument may hold notation of the forms listed above it, which is rendered
inside the enclosing fragment: x^((1/2)), e^(sqrt(x)) and sqrt((a/b)) all nest.
A form never nests inside one listed above it or inside itself.

Everything else is plain text: '&', '<' and '>' are escaped, all other characters
pass through unchanged. Notation that does not fully match stays literal text.

The source is tokenized in a single left-to-right pass and each token is rendered
on its own, so generated markup is never scanned again. Render is not idempotent:
Render(Render(s)) escapes the entities produced by the first call.
*/
package mathfmt
