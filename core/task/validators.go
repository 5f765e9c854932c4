package task

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Vovadm/exammath.ru/core"
)

var (
	taskTypeTag  = "tasktype"
	taskTypeText = fmt.Sprintf("task type must be between %d and %d", TypeUndefined, TypeLast)
)

// register custom validators
func init() {
	_ = core.Validate.RegisterValidation(taskTypeTag, taskTypeValidation)
	core.RegisterCustomTranslation(taskTypeTag, taskTypeText)
}

// Custom Validators

// taskTypeValidation checks that the task type is a known exam task number (0: not yet typed).
func taskTypeValidation(fl validator.FieldLevel) bool {
	tt := fl.Field().Int()
	return tt >= TypeUndefined && tt <= TypeLast
}
