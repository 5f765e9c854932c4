package preview

import (
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/Vovadm/exammath.ru/core"
	"github.com/Vovadm/exammath.ru/core/mathfmt"
	"github.com/Vovadm/exammath.ru/core/task"
)

var (
	//go:embed templates/*.gohtml
	templateFS embed.FS

	page     *template.Template
	pageErr  error
	pageInit sync.Once
)

type (
	Page struct {
		Title string
		Tasks []task.Task
	}

	// card is what the template sees for one task.
	card struct {
		Number      int
		Task        task.Task
		TypeName    string
		Part2       bool
		AnswerField bool
		Body        template.HTML
	}

	contextData struct {
		AppName string
		Title   string
		Cards   []card
	}
)

func parseTemplates() {
	funcs := template.FuncMap{"math": mathfmt.RenderHTML}
	page, pageErr = template.New("page.gohtml").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
	if pageErr != nil {
		return
	}
	if core.Debug() {
		page = page.Option("missingkey=error")
	}
}

func (p Page) data() contextData {
	title := p.Title
	if title == "" {
		title = core.Conf.GetString("previewTitle")
	}
	cards := make([]card, 0, len(p.Tasks))
	for i, t := range p.Tasks {
		cards = append(cards, card{
			Number:      i + 1,
			Task:        t,
			TypeName:    t.TypeName(),
			Part2:       t.IsPart2(),
			AnswerField: t.ShowAnswerField(),
			Body:        mathfmt.RenderHTML(t.Text),
		})
	}
	return contextData{
		AppName: core.Conf.GetString("appName"),
		Title:   title,
		Cards:   cards,
	}
}

// Render writes the preview page of p to w.
func Render(w io.Writer, p Page) error {
	pageInit.Do(parseTemplates) // only parse once
	if pageErr != nil {
		return errors.Wrap(pageErr, "parsing preview templates")
	}
	if err := page.Execute(w, p.data()); err != nil {
		return errors.Wrap(err, "rendering preview")
	}
	return nil
}
