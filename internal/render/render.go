package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

// Page carries the substitution values for the HTML shell. It replaces the
// module-level configuration of earlier revisions of the converter.
type Page struct {
	Title string
	CSS   string // stylesheet body inlined into the page, optional
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{if .CSS}}<style>
{{.CSS}}
</style>
{{end}}</head>
<body>
{{.Content}}
</body>
</html>
`))

type pageData struct {
	Title   string
	CSS     template.CSS
	Content template.HTML
}

// Render converts Markdown source to a complete HTML page.
func Render(markdown []byte, page Page) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	var out bytes.Buffer
	err := pageTemplate.Execute(&out, pageData{
		Title:   page.Title,
		CSS:     template.CSS(page.CSS),
		Content: template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return out.Bytes(), nil
}
