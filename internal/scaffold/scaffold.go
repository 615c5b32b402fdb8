// internal/scaffold/scaffold.go
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"folio/internal/article"
	"folio/internal/config"
	"folio/internal/frontmatter"
)

// ErrExists is returned instead of overwriting an existing site or article.
var ErrExists = errors.New("already exists")

// ArchetypePath is the optional body template for new articles, relative to
// the site root.
const ArchetypePath = "archetypes/article.md"

// CreateNewSite lays out a new blog in dir: configuration, the default theme,
// static assets, an article archetype and a first article.
func CreateNewSite(dir string, now time.Time) error {
	if _, err := os.Stat(filepath.Join(dir, "site.yaml")); err == nil {
		return fmt.Errorf("site in %s: %w", dir, ErrExists)
	}

	dirs := []string{
		config.DefaultContentDir,
		"static/css",
		"static/images",
		filepath.Join(config.DefaultTemplateDir, config.DefaultTemplate),
		"archetypes",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	theme := filepath.Join(config.DefaultTemplateDir, config.DefaultTemplate)
	files := map[string]string{
		"site.yaml":                         siteYamlContent,
		"static/css/style.css":              staticCSSContent,
		filepath.Join(theme, "layout.html"): templateLayoutContent,
		filepath.Join(theme, "header.html"): templateHeaderContent,
		filepath.Join(theme, "footer.html"): templateFooterContent,
		filepath.Join(theme, "list.html"):   templateListContent,
		filepath.FromSlash(ArchetypePath):   archetypeContent,
	}
	for path, content := range files {
		if err := os.WriteFile(filepath.Join(dir, path), []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	site := config.Default()
	site.Root = dir
	site.Author = "Your Name"
	if _, err := CreateNewArticle(site, "Hello, World", now); err != nil {
		return err
	}
	return nil
}

// CreateNewArticle writes a new article named after title into the site's
// content directory and returns its path. The front matter is generated; the
// body comes from the site's archetype when it has one.
func CreateNewArticle(site config.SiteConfig, title string, now time.Time) (string, error) {
	slug := article.NormalizeSlug(title)
	if slug == "" {
		return "", fmt.Errorf("title %q has no usable characters for a slug", title)
	}

	path := filepath.Join(site.Path(site.ContentDir), slug+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("article %s: %w", path, ErrExists)
	}

	meta := frontmatter.Metadata{
		"title":       title,
		"publishedAt": now.Format("2006-01-02"),
		"summary":     "",
		"tags":        []string{},
	}
	if site.Author != "" {
		meta["author"] = site.Author
	}

	body, err := archetypeBody(site, title)
	if err != nil {
		return "", err
	}

	content, err := frontmatter.Compose(meta, body)
	if err != nil {
		return "", fmt.Errorf("failed to write front matter: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func archetypeBody(site config.SiteConfig, title string) (string, error) {
	path := site.Path(ArchetypePath)
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "\nWrite something meaningful here.\n", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not read archetype file %s: %w", path, err)
	}

	tmpl, err := template.New("archetype").Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse archetype file %s: %w", path, err)
	}

	data := struct {
		Title  string
		Author string
	}{
		Title:  title,
		Author: site.Author,
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to execute archetype template: %w", err)
	}
	return out.String(), nil
}
