package printing

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// briefDocument is the data passed to the brief HTML template
type briefDocument struct {
	ProjectName string
	GeneratedAt time.Time
	Fields      []brief.FormField
	Sections    []briefSection
}

// briefSection is a heading plus its paragraphs, parsed from the
// generated brief text
type briefSection struct {
	Heading    string
	Paragraphs []string
}

// BriefTemplate renders a project and its generated brief into styled HTML
type BriefTemplate struct {
	tmpl *template.Template
}

// NewBriefTemplate creates the brief HTML template
func NewBriefTemplate() (*BriefTemplate, error) {
	funcMap := template.FuncMap{
		"formatDate": formatDate,
		"title":      titleCase,
	}

	tmpl, err := template.New("brief").Funcs(funcMap).Parse(briefHTML)
	if err != nil {
		return nil, NewRenderError(ErrCodeTemplateFailed, "failed to parse brief template", err)
	}

	return &BriefTemplate{tmpl: tmpl}, nil
}

// RenderHTML renders the project into a complete HTML document
func (t *BriefTemplate) RenderHTML(project *brief.Project) (string, error) {
	doc := briefDocument{
		ProjectName: project.Form.ProjectName,
		GeneratedAt: project.UpdatedAt,
		Fields:      project.Form.AnsweredFields(),
		Sections:    parseSections(project.GeneratedBrief),
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, doc); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to render brief template", err)
	}
	return buf.String(), nil
}

// parseSections splits the generated brief text into sections.
// Lines starting with one or more '#' become headings; blank lines
// separate paragraphs.
func parseSections(text string) []briefSection {
	var sections []briefSection
	current := briefSection{}
	var paragraph []string

	flushParagraph := func() {
		if len(paragraph) > 0 {
			current.Paragraphs = append(current.Paragraphs, strings.Join(paragraph, " "))
			paragraph = nil
		}
	}
	flushSection := func() {
		flushParagraph()
		if current.Heading != "" || len(current.Paragraphs) > 0 {
			sections = append(sections, current)
		}
		current = briefSection{}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flushParagraph()
		case strings.HasPrefix(line, "#"):
			flushSection()
			current.Heading = strings.TrimSpace(strings.TrimLeft(line, "#"))
		default:
			paragraph = append(paragraph, line)
		}
	}
	flushSection()

	return sections
}

// formatDate formats a time value as a date string
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// titleCase converts a string to title case using proper Unicode handling
func titleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}

const briefHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.ProjectName}}</title>
<style>
  body {
    font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;
    color: #1f2933;
    font-size: 12px;
    line-height: 1.6;
    margin: 0;
  }
  .header {
    border-bottom: 3px solid #4f46e5;
    padding-bottom: 12px;
    margin-bottom: 24px;
  }
  .header h1 {
    font-size: 22px;
    margin: 0 0 4px 0;
    color: #111827;
  }
  .header .meta {
    color: #6b7280;
    font-size: 11px;
  }
  .answers {
    width: 100%;
    border-collapse: collapse;
    margin-bottom: 28px;
  }
  .answers th, .answers td {
    text-align: left;
    padding: 6px 8px;
    border-bottom: 1px solid #e5e7eb;
    vertical-align: top;
  }
  .answers th {
    width: 32%;
    color: #4f46e5;
    font-weight: 600;
  }
  h2.section {
    font-size: 15px;
    color: #4f46e5;
    border-bottom: 1px solid #e5e7eb;
    padding-bottom: 4px;
    margin: 20px 0 8px 0;
  }
  p { margin: 0 0 10px 0; }
</style>
</head>
<body>
  <div class="header">
    <h1>{{title .ProjectName}}</h1>
    <div class="meta">Creative brief &middot; {{formatDate .GeneratedAt}}</div>
  </div>

  {{if .Fields}}
  <table class="answers">
    {{range .Fields}}
    <tr>
      <th>{{.Label}}</th>
      <td>{{.Value}}</td>
    </tr>
    {{end}}
  </table>
  {{end}}

  {{range .Sections}}
    {{if .Heading}}<h2 class="section">{{.Heading}}</h2>{{end}}
    {{range .Paragraphs}}<p>{{.}}</p>{{end}}
  {{end}}
</body>
</html>`
