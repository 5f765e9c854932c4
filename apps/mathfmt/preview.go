package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/Vovadm/exammath.ru/apps"
	"github.com/Vovadm/exammath.ru/core"
	"github.com/Vovadm/exammath.ru/core/preview"
	"github.com/Vovadm/exammath.ru/core/task"
)

type previewOptions struct {
	Tasks string `json:"tasks" validate:"required"`
	Out   string `json:"out" validate:"omitempty,nefield=Tasks"`
	Title string `json:"title" validate:"max=200"`
}

func (opts previewOptions) Validate() error {
	if err := core.Validate.Struct(opts); err != nil {
		return core.NewValidationError(apps.NewArgumentError("invalid arguments"), core.TranslateErrors(err, "")...)
	}
	return nil
}

func (cli *commandLine) preview(opts previewOptions) error {
	f, err := os.Open(opts.Tasks)
	if err != nil {
		return errors.Wrapf(err, "opening %s", opts.Tasks)
	}
	defer f.Close()

	tasks, err := task.Decode(f)
	if err != nil {
		return errors.Wrap(err, opts.Tasks)
	}
	if err := task.CleanAll(tasks); err != nil {
		return err
	}

	err = cli.withOutput(opts.Out, func(w io.Writer) error {
		return preview.Render(w, preview.Page{Title: opts.Title, Tasks: tasks})
	})
	if err != nil {
		return err
	}
	cli.logger.Info(fmt.Sprintf("preview of %d tasks written", len(tasks)), map[string]interface{}{"tasks": opts.Tasks, "out": opts.Out})
	return nil
}
