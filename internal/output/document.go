// Package output assembles compressed file contents into a single document:
// a directory-tree block followed by one section per file, in one of the
// supported styles. Rendering state is carried in an explicit Document value
// handed to Render; nothing registers helpers in process-wide tables.
package output

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/mvp-joe/sigpress/internal/compress"
)

// Style selects the document wire format.
type Style string

const (
	StyleMarkdown Style = "markdown"
	StyleXML      Style = "xml"
	StylePlain    Style = "plain"
)

// ErrUnknownStyle reports an unsupported output style.
var ErrUnknownStyle = errors.New("unknown output style")

// ParseStyle validates a style name from configuration or flags.
func ParseStyle(name string) (Style, error) {
	switch Style(strings.ToLower(name)) {
	case StyleMarkdown:
		return StyleMarkdown, nil
	case StyleXML:
		return StyleXML, nil
	case StylePlain:
		return StylePlain, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// Document is the render context: everything a template may reference.
type Document struct {
	RootDir string
	Files   []compress.Result
}

// Tree renders the directory-tree block from the document's file paths.
func (d *Document) Tree() string {
	paths := make([]string, len(d.Files))
	for i, f := range d.Files {
		paths[i] = f.Path
	}
	return buildTree(paths)
}

const markdownTemplate = `# Repository: {{.RootDir}}

## Directory Structure

` + "```" + `
{{.Tree}}` + "```" + `

## Files
{{range .Files}}
### {{.Path}}

` + "```{{.Language}}" + `
{{nl .Content}}` + "```" + `
{{end}}`

const xmlTemplate = `<repository root="{{xml .RootDir}}">
<directory_structure>
{{xml .Tree}}</directory_structure>
<files>
{{range .Files}}<file path="{{xml .Path}}">
{{nl (xml .Content)}}</file>
{{end}}</files>
</repository>
`

const plainTemplate = `Repository: {{.RootDir}}

================
Directory Structure
================
{{.Tree}}
================
Files
================
{{range .Files}}
================
File: {{.Path}}
================
{{.Content}}{{end}}`

var templates = map[Style]*template.Template{
	StyleMarkdown: mustParse("markdown", markdownTemplate),
	StyleXML:      mustParse("xml", xmlTemplate),
	StylePlain:    mustParse("plain", plainTemplate),
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"xml": escapeXML,
		"nl":  ensureTrailingNewline,
	}).Parse(text))
}

// Render produces the final document text in the given style.
func Render(doc *Document, style Style) (string, error) {
	tmpl, ok := templates[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, doc); err != nil {
		return "", fmt.Errorf("failed to render %s document: %w", style, err)
	}
	return b.String(), nil
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
