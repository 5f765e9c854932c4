package task

import "github.com/Vovadm/exammath.ru/core"

// Task types
const (
	TypeUndefined = 0
	TypeFirst     = 1
	TypePart2From = 13
	TypeLast      = 19
)

var TypeNames = map[int]string{
	0:  "Не определён",
	1:  "Планиметрия",
	2:  "Векторы",
	3:  "Стереометрия",
	4:  "Вероятность (простая)",
	5:  "Вероятность (сложная)",
	6:  "Уравнения",
	7:  "Выражения",
	8:  "Производная (график)",
	9:  "Физика/Формулы",
	10: "Текстовые задачи",
	11: "Графики",
	12: "Производная (экстремум)",
	13: "Уравнения (ч.2)",
	14: "Стереометрия (ч.2)",
	15: "Неравенства",
	16: "Экономика",
	17: "Планиметрия (ч.2)",
	18: "Параметры",
	19: "Числа",
}

func TypeName(taskType int) string {
	if name, ok := TypeNames[taskType]; ok {
		return name
	}
	return "???"
}

type Task struct {
	ID       int    `json:"id" yaml:"id"`
	FipiID   string `json:"fipi_id" yaml:"fipi_id"`
	TaskType int    `json:"task_type" yaml:"task_type" validate:"tasktype"`
	Text     string `json:"text" yaml:"text" validate:"required,notblank"`
	Hint     string `json:"hint" yaml:"hint"`
	Answer   string `json:"answer" yaml:"answer" validate:"max=255"`
}

func (t Task) TypeName() string { return TypeName(t.TaskType) }

// IsPart2 reports whether the task belongs to the extended-answer part of the exam.
func (t Task) IsPart2() bool {
	return t.TaskType >= TypePart2From && t.TaskType <= TypeLast
}

// ShowAnswerField: part 2 tasks only get a short answer field when an answer is set.
func (t Task) ShowAnswerField() bool {
	return !t.IsPart2() || t.Answer != ""
}

// Clean trims the text fields. The task text keeps its inner whitespace.
func (t *Task) Clean() {
	t.FipiID = core.CleanString(t.FipiID)
	t.Text = core.CleanString(t.Text)
	t.Hint = core.CleanString(t.Hint)
	t.Answer = core.CleanString(t.Answer)
}

func (t Task) Validate() error { return core.Validate.Struct(t) }
