// internal/builder/render.go
package builder

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/verkaro/editml-go"
)

// cleanView strips editorial markup from an article body, keeping accepted
// text and dropping deletions and comments.
func cleanView(body string) (string, error) {
	nodes, parseIssues := editml.Parse(body)
	for _, issue := range parseIssues {
		if issue.Severity == editml.SeverityError {
			return "", fmt.Errorf("editml parsing error: %s", issue.Message)
		}
	}
	clean, transformIssues := editml.TransformCleanView(nodes)
	for _, issue := range transformIssues {
		if issue.Severity == editml.SeverityError {
			return "", fmt.Errorf("editml transformation error: %s", issue.Message)
		}
	}
	return clean, nil
}

// renderPage executes the named template and writes the output to a file.
func renderPage(tmpl *template.Template, name, outPath string, data PageData) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(outFile, name, data); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}

// LoadTemplates parses a theme directory: layout.html defines "main" for
// article pages, header.html and footer.html hold the partials, and the
// optional list.html defines "list" for the article listing.
func LoadTemplates(templateDir, templateName string) (*template.Template, error) {
	path := filepath.Join(templateDir, templateName)
	files := []string{
		filepath.Join(path, "layout.html"),
		filepath.Join(path, "header.html"),
		filepath.Join(path, "footer.html"),
	}
	if _, err := os.Stat(filepath.Join(path, "list.html")); err == nil {
		files = append(files, filepath.Join(path, "list.html"))
	}
	return template.New(templateName).Funcs(funcs).ParseFiles(files...)
}

var funcs = template.FuncMap{
	"join": strings.Join,
}
