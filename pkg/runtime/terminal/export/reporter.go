package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/dept-reports/pkg/models/domain"
	"github.com/de-tools/dept-reports/pkg/services/router"
)

type TableConfig struct {
	IDWidth    int
	TitleWidth int
	TypeWidth  int
	DateWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		IDWidth:    36,
		TitleWidth: 60,
		TypeWidth:  26,
		DateWidth:  16,
	}
}

// Reporter writes stored reports and templates to the console.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) funcs() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(id, title, kind, date string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.IDWidth, id,
				c.config.TitleWidth, truncate(title, c.config.TitleWidth),
				c.config.TypeWidth, kind,
				c.config.DateWidth, date)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.IDWidth+2),
				strings.Repeat("-", c.config.TitleWidth+2),
				strings.Repeat("-", c.config.TypeWidth+2),
				strings.Repeat("-", c.config.DateWidth+2))
		},
		"orDash": func(s string) string {
			if s == "" {
				return "-"
			}
			return s
		},
		"inc": func(i int) int { return i + 1 },
	}
}

func (c *Reporter) execute(name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(c.funcs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}

const reportTemplate = `{{.Title}}
ID: {{.ID}}
Type: {{orDash .ReportType}}
Department: {{orDash .Department}}
Updated: {{.UpdatedAt.Format "2006-01-02 15:04"}}
{{- with .Attachments}}
Attachments:
{{- range .}}
- {{.OriginalName}} ({{.Mimetype}}, {{.Size}} bytes) {{.URL}}
{{- end}}
{{- end}}

{{.Content}}
`

func (c *Reporter) Report(report domain.Report) error {
	return c.execute("report", reportTemplate, report)
}

const listTemplate = `{{separator}}
{{formatRow "ID" "Title" "Type" "Updated"}}
{{separator}}
{{range .}}{{formatRow .ID .Title (orDash .ReportType) (.UpdatedAt.Format "2006-01-02 15:04")}}
{{end}}{{separator}}
`

func (c *Reporter) Reports(reports []domain.Report) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(c.writer, "No reports found")
		return err
	}
	return c.execute("reports", listTemplate, reports)
}

const templatesTemplate = `{{range .}}
{{.Definition.Name}} [{{.Kind}}, {{.Definition.Mode}}]
{{- range $i, $s := .Definition.Sections}}
  {{inc $i}}. {{$s.Title}}{{if $s.Repeatable}} (rows){{end}}{{if $s.Derived}} (derived){{end}}
{{- end}}
{{end}}`

func (c *Reporter) Templates(templates []router.Template) error {
	return c.execute("templates", templatesTemplate, templates)
}

func (c *Reporter) Directory(entries []domain.DirectoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(c.writer, "No entries found")
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(c.writer, "%s\t%s\n", e.ID, e.Name); err != nil {
			return err
		}
	}
	return nil
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
