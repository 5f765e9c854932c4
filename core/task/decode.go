package task

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/Vovadm/exammath.ru/core"
)

var ErrNoTasks = errors.New("no tasks found")

// Decode reads a list of tasks written as YAML. JSON input works too.
func Decode(r io.Reader) ([]Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading tasks")
	}
	var tasks []Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, errors.Wrap(err, "decoding tasks")
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	return tasks, nil
}

// CleanAll cleans every task and validates it. All problems are reported in one
// core.ValidationError whose fields are prefixed with the task position, e.g. "tasks[2].text".
func CleanAll(tasks []Task) error {
	var flds []core.FieldError
	for i := range tasks {
		tasks[i].Clean()
		if err := tasks[i].Validate(); err != nil {
			flds = append(flds, core.TranslateErrors(err, fmt.Sprintf("tasks[%d]", i))...)
		}
	}
	if len(flds) > 0 {
		return core.NewValidationError(errors.New("invalid tasks"), flds...)
	}
	return nil
}
