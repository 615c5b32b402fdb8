// internal/builder/builder.go
package builder

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"folio/internal/article"
	"folio/internal/config"
	"folio/internal/indexer"
	"folio/internal/markdown"
	"folio/internal/util"
)

// ErrInvalidUTF8 is returned when an article file is not valid UTF-8.
var ErrInvalidUTF8 = indexer.ErrInvalidUTF8

// ManifestPath is where the article index is written, relative to the
// output directory.
const ManifestPath = "articles/index.json"

type BuildOptions struct {
	CleanDestination bool
	// Drafts renders articles marked `draft: true` as well.
	Drafts  bool
	Workers int
}

// Builder renders a site. It keeps rendered article HTML between builds, so
// a long-lived Builder only re-renders articles that changed.
type Builder struct {
	site      config.SiteConfig
	engine    markdown.Engine
	sanitizer *bluemonday.Policy
	cache     *indexer.Cache
	logger    *slog.Logger
}

// New prepares a Builder for site. The markdown engine is resolved from the
// site's renderer setting.
func New(site config.SiteConfig, logger *slog.Logger) (*Builder, error) {
	engine, err := markdown.NewEngine(site.Renderer)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	b := &Builder{
		site:   site,
		engine: engine,
		cache:  indexer.NewCache(),
		logger: logger,
	}
	if site.Sanitize {
		b.sanitizer = bluemonday.UGCPolicy()
	}
	return b, nil
}

// BuildSite renders site with an already loaded template set. It returns the
// number of article pages written.
func BuildSite(ctx context.Context, site config.SiteConfig, tmpl *template.Template, opts BuildOptions) (int, error) {
	b, err := New(site, nil)
	if err != nil {
		return 0, err
	}
	return b.build(ctx, tmpl, opts)
}

// Build loads the site's templates and renders it.
func (b *Builder) Build(ctx context.Context, opts BuildOptions) (int, error) {
	tmpl, err := LoadTemplates(b.site.Path(b.site.TemplateDir), b.site.Template)
	if err != nil {
		return 0, fmt.Errorf("error loading templates: %w", err)
	}
	return b.build(ctx, tmpl, opts)
}

func (b *Builder) build(ctx context.Context, tmpl *template.Template, opts BuildOptions) (int, error) {
	outputDir := b.site.Path(b.site.OutputDir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, err
	}

	if opts.CleanDestination {
		b.logger.Debug("cleaning destination directory", "dir", outputDir)
		if err := cleanDir(outputDir); err != nil {
			return 0, err
		}
	}

	articles, err := indexer.Load(ctx, b.site.Path(b.site.ContentDir), indexer.Options{
		Workers: opts.Workers,
		Defaults: article.Defaults{
			Author:   b.site.Author,
			Category: b.site.DefaultCategory,
		},
		Engine:      b.engine,
		Transform:   b.transform(),
		RequireUTF8: true,
		Cache:       b.cache,
		Logger:      b.logger,
	})
	if err != nil {
		return 0, err
	}
	collection := article.NewCollection(articles)

	var pages []article.Article
	for _, a := range collection.All() {
		if a.Draft && !opts.Drafts {
			b.logger.Debug("skipping draft", "slug", a.Slug)
			continue
		}
		pages = append(pages, a)
	}

	route := strings.Trim(b.site.ArticlesRoute, "/")
	for _, a := range pages {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		relPath := filepath.Join(filepath.FromSlash(route), a.Slug, "index.html")
		if err := renderPage(tmpl, "main", filepath.Join(outputDir, relPath), b.articlePage(a, relPath)); err != nil {
			return 0, fmt.Errorf("failed to render page %s: %w", a.SourcePath, err)
		}
	}

	listPath := filepath.Join(filepath.FromSlash(route), "index.html")
	if tmpl.Lookup("list") != nil {
		if err := renderPage(tmpl, "list", filepath.Join(outputDir, listPath), b.listPage(pages, listPath)); err != nil {
			return 0, fmt.Errorf("failed to render article listing: %w", err)
		}
	}

	if err := indexer.Write(filepath.Join(outputDir, filepath.FromSlash(ManifestPath)), collection.Summaries()); err != nil {
		return 0, fmt.Errorf("failed to write article index: %w", err)
	}

	if err := copyStaticAssets(b.site.Path(b.site.StaticDir), outputDir); err != nil {
		return 0, err
	}

	b.logger.Info("site built", "pages", len(pages), "output", outputDir, "renderer", b.engine.Name())
	return len(pages), nil
}

func (b *Builder) articlePage(a article.Article, relPath string) PageData {
	content := a.HTML
	if b.sanitizer != nil {
		content = b.sanitizer.Sanitize(content)
	}

	seo := article.BuildSEO(a, b.siteInfo())
	description := seo.Description
	if description == "" {
		description = b.site.Description
	}

	return PageData{
		Content:     template.HTML(content),
		Title:       a.Title,
		BaseHref:    util.ComputeBaseHref(relPath),
		Author:      seo.Author,
		Description: description,
		Site:        b.site,
		Article:     &a,
		SEO:         seo,
		Published:   article.FormatLongDate(a.PublishedAt, seo.Locale),
		Params:      a.Metadata,
	}
}

func (b *Builder) listPage(pages []article.Article, relPath string) PageData {
	cards := make([]ArticleCard, len(pages))
	for i, a := range pages {
		cards[i] = ArticleCard{
			Summary:   a.Summary,
			URL:       a.Slug + "/",
			DateLabel: article.FormatShortDate(a.PublishedAt, b.site.Locale),
		}
	}
	return PageData{
		Title:       b.site.DefaultCategory,
		BaseHref:    util.ComputeBaseHref(relPath),
		Author:      b.site.Author,
		Description: b.site.Description,
		Site:        b.site,
		Articles:    cards,
	}
}

func (b *Builder) siteInfo() article.Site {
	return article.Site{
		BaseURL:       b.site.BaseURL,
		Author:        b.site.Author,
		Locale:        b.site.Locale,
		ArticlesRoute: b.site.ArticlesRoute,
	}
}

func (b *Builder) transform() func(string) (string, error) {
	if !b.site.Editorial {
		return nil
	}
	return cleanView
}

func cleanDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// allowedExts are the file types copied from the static directory.
var allowedExts = map[string]bool{
	".css": true, ".js": true, ".txt": true, ".svg": true, ".ico": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	".woff": true, ".woff2": true,
}

// copyStaticAssets copies files from the static directory to the output directory.
func copyStaticAssets(staticDir, outputDir string) error {
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		return nil
	}
	return filepath.Walk(staticDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !allowedExts[strings.ToLower(filepath.Ext(info.Name()))] {
			return nil
		}

		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}
		return copyFile(path, filepath.Join(outputDir, rel))
	})
}

func copyFile(from, to string) error {
	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return err
	}
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(to)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
