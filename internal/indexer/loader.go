package indexer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/inful/mdfp"
	"golang.org/x/sync/errgroup"

	"folio/internal/article"
	"folio/internal/document"
	"folio/internal/frontmatter"
	"folio/internal/markdown"
)

// ErrInvalidUTF8 is returned for article files that are not valid UTF-8 when
// Options.RequireUTF8 is set.
var ErrInvalidUTF8 = errors.New("content file is not valid UTF-8")

// Options control how article files are loaded.
type Options struct {
	// Workers bounds the number of files parsed at once. Zero means
	// GOMAXPROCS.
	Workers  int
	Defaults article.Defaults
	// Engine renders article bodies; nil selects the builtin renderer.
	Engine markdown.Engine
	// Transform rewrites a body after front-matter extraction and before
	// rendering.
	Transform   func(body string) (string, error)
	RequireUTF8 bool
	// Cache, when set, reuses rendered HTML for unchanged articles.
	Cache  *Cache
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// ArticleFiles lists the markdown files directly inside dir, sorted by name.
func ArticleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading article directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Load parses every article in dir. The result keeps file order; ids default
// to the file's position plus one.
func Load(ctx context.Context, dir string, opts Options) ([]article.Article, error) {
	files, err := ArticleFiles(dir)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	articles := make([]article.Article, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := loadFile(path, i, opts)
			if err != nil {
				return err
			}
			articles[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts.logger().Debug("loaded articles", "dir", dir, "count", len(articles))
	return articles, nil
}

func loadFile(path string, index int, opts Options) (article.Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return article.Article{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if opts.RequireUTF8 && !utf8.Valid(raw) {
		return article.Article{}, fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}

	meta, body := frontmatter.Extract(string(raw))
	if opts.Transform != nil {
		body, err = opts.Transform(body)
		if err != nil {
			return article.Article{}, fmt.Errorf("failed to transform %s: %w", path, err)
		}
	}

	doc, fingerprint, err := render(meta, body, opts)
	if err != nil {
		return article.Article{}, fmt.Errorf("failed to process content for %s: %w", path, err)
	}

	a := article.FromDocument(doc, path, index, opts.Defaults)
	a.Fingerprint = fingerprint
	return a, nil
}

func render(meta frontmatter.Metadata, body string, opts Options) (document.Document, string, error) {
	engine := opts.Engine
	if engine == nil {
		engine = markdown.Builtin{}
	}

	fingerprint, err := Fingerprint(meta, body)
	if err != nil {
		return document.Document{}, "", err
	}

	key := engine.Name() + ":" + fingerprint
	if html, ok := opts.Cache.Get(key); ok {
		return document.Document{
			Metadata:    meta,
			Body:        body,
			HTML:        html,
			ReadingTime: markdown.ReadingTime(body),
		}, fingerprint, nil
	}

	doc, err := document.Assemble(meta, body, engine)
	if err != nil {
		return document.Document{}, "", err
	}
	opts.Cache.Put(key, doc.HTML)
	return doc, fingerprint, nil
}

// Fingerprint hashes an article's front matter and body.
func Fingerprint(meta frontmatter.Metadata, body string) (string, error) {
	serialized := ""
	if len(meta) > 0 {
		out, err := frontmatter.SerializeYAML(meta)
		if err != nil {
			return "", err
		}
		serialized = strings.TrimSuffix(string(out), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(serialized, body), nil
}
