package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/Vovadm/exammath.ru/apps"
	"github.com/Vovadm/exammath.ru/core"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	logger  core.Logger
	stdin   io.Reader
	stdinFd int
	stdout  io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.stdout, "Usage:")
	fmt.Fprintln(cli.stdout, "  render [-in FILE] [-out FILE] - render task text (stdin by default) to HTML markup")
	fmt.Fprintln(cli.stdout, "  tokens [-in FILE] - list the notation tokens found in a task text")
	fmt.Fprintln(cli.stdout, "  preview -tasks FILE [-out FILE] [-title TITLE] - build an HTML preview page of a task file")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.stdout)
	return fs
}

// parse parses args into fs and rejects positional leftovers.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	if fs.NArg() > 0 {
		return apps.NewArgumentError("%s: unexpected argument %q", fs.Name(), fs.Arg(0))
	}
	return nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	renderCmd := cli.newFlagSet("render")
	renderIn := renderCmd.String("in", "", "The file holding the task text. Reads stdin when omitted.")
	renderOut := renderCmd.String("out", "", "The file to write the markup to. Writes stdout when omitted.")

	tokensCmd := cli.newFlagSet("tokens")
	tokensIn := tokensCmd.String("in", "", "The file holding the task text. Reads stdin when omitted.")

	previewCmd := cli.newFlagSet("preview")
	previewTasks := previewCmd.String("tasks", "", "The YAML (or JSON) file holding the list of tasks.")
	previewOut := previewCmd.String("out", "", "The HTML file to write. Writes stdout when omitted.")
	previewTitle := previewCmd.String("title", "", "The page title. Defaults to the configured previewTitle.")

	switch args[1] {
	case "render":
		if err := parse(renderCmd, args[2:]); err != nil {
			return err
		}
		return cli.withInput(renderCmd, *renderIn, func(r io.Reader) error {
			return cli.withOutput(*renderOut, func(w io.Writer) error {
				return cli.render(r, w)
			})
		})
	case "tokens":
		if err := parse(tokensCmd, args[2:]); err != nil {
			return err
		}
		return cli.withInput(tokensCmd, *tokensIn, func(r io.Reader) error {
			return cli.tokens(r, cli.stdout)
		})
	case "preview":
		if err := parse(previewCmd, args[2:]); err != nil {
			return err
		}
		opts := previewOptions{Tasks: *previewTasks, Out: *previewOut, Title: *previewTitle}
		if err := opts.Validate(); err != nil {
			previewCmd.Usage()
			return err
		}
		return cli.preview(opts)
	default:
		cli.printUsage()
		return errHelp
	}
}

// withInput runs fn on the file at path, or on stdin when path is empty.
// An interactive stdin is refused so the command does not hang waiting for input.
func (cli *commandLine) withInput(fs *flag.FlagSet, path string, fn func(io.Reader) error) error {
	if path == "" {
		if isTerminalFunc(cli.stdinFd) {
			fs.Usage()
			return errHelp
		}
		return fn(cli.stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return fn(f)
}

// withOutput runs fn on a new file at path, or on stdout when path is empty.
func (cli *commandLine) withOutput(path string, fn func(io.Writer) error) (err error) {
	if path == "" {
		return fn(cli.stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = pkgerrors.Wrapf(cErr, "closing %s", path)
		}
	}()
	return fn(f)
}
