package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/Vovadm/exammath.ru/core/mathfmt"
)

func (cli *commandLine) render(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading task text")
	}
	out := mathfmt.Render(string(src))
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "writing markup")
	}
	cli.logger.Debug(fmt.Sprintf("rendered %d bytes into %d bytes", len(src), len(out)))
	return nil
}

// tokens prints one line per token: the kind, the quoted source and, for notation, the quoted arguments.
func (cli *commandLine) tokens(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading task text")
	}
	for _, tok := range mathfmt.Tokenize(string(src)) {
		line := fmt.Sprintf("%-8s %q", tok.Kind, tok.Src)
		if len(tok.Args) > 0 {
			args := make([]string, 0, len(tok.Args))
			for _, a := range tok.Args {
				args = append(args, fmt.Sprintf("%q", a))
			}
			line += " -> " + strings.Join(args, ", ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "writing tokens")
		}
	}
	return nil
}
