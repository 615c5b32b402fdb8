package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"folio/internal/article"
	"folio/internal/builder"
	"folio/internal/config"
	"folio/internal/document"
	"folio/internal/indexer"
	"folio/internal/logging"
	"folio/internal/markdown"
	"folio/internal/scaffold"
	"folio/internal/server"
)

// loadSite reads the site configuration. When optional is set a missing file
// falls back to the defaults.
func loadSite(path string, optional bool) (config.SiteConfig, error) {
	site, err := config.LoadSiteConfig(path)
	if errors.Is(err, config.ErrNoConfig) && optional {
		return config.Default(), nil
	}
	return site, err
}

func (g *Globals) logger(site config.SiteConfig) *slog.Logger {
	logger := logging.NewLogger(site.Environment, g.Verbose)
	slog.SetDefault(logger)
	return logger
}

type BuildCmd struct {
	Output string `short:"o" help:"Output directory (overrides outputDir)."`
	Drafts bool   `help:"Render draft articles too."`
	Keep   bool   `help:"Do not clean the output directory first."`
}

func (b *BuildCmd) Run(g *Globals, cli *CLI) error {
	site, err := loadSite(cli.Config, false)
	if err != nil {
		return err
	}
	if b.Output != "" {
		site.OutputDir = b.Output
	}

	fmt.Fprintln(g.Out, "--- Generating site from content ---")
	bld, err := builder.New(site, g.logger(site))
	if err != nil {
		return err
	}
	pages, err := bld.Build(g.Ctx, builder.BuildOptions{CleanDestination: !b.Keep, Drafts: b.Drafts})
	if err != nil {
		return fmt.Errorf("site generation failed: %w", err)
	}
	fmt.Fprintf(g.Out, "✅ Success! Generated %d pages in %s.\n", pages, site.Path(site.OutputDir))
	return nil
}

type IndexCmd struct {
	Dir     string `short:"d" help:"Article directory (defaults to contentDir)." type:"path"`
	Output  string `short:"o" help:"Index file (defaults to <dir>/index.json)." type:"path"`
	Workers int    `short:"w" help:"Files parsed in parallel (0 = number of CPUs)." default:"0"`
}

func (i *IndexCmd) Run(g *Globals, cli *CLI) error {
	site, err := loadSite(cli.Config, true)
	if err != nil {
		return err
	}
	dir := i.Dir
	if dir == "" {
		dir = site.Path(site.ContentDir)
	}
	out := i.Output
	if out == "" {
		out = filepath.Join(dir, "index.json")
	}

	n, err := indexer.Run(g.Ctx, dir, out, indexer.Options{
		Workers: i.Workers,
		Defaults: article.Defaults{
			Author:   site.Author,
			Category: site.DefaultCategory,
		},
		Logger: g.logger(site),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "✅ Generated %d articles in %s\n", n, out)
	return nil
}

type RenderCmd struct {
	File     string `arg:"" help:"Markdown file to render." type:"existingfile"`
	Renderer string `short:"r" help:"Markdown engine (builtin or goldmark); defaults to the site setting."`
	JSON     bool   `help:"Print front matter, HTML and reading time as JSON."`
}

func (r *RenderCmd) Run(g *Globals, cli *CLI) error {
	site, err := loadSite(cli.Config, true)
	if err != nil {
		return err
	}
	name := r.Renderer
	if name == "" {
		name = site.Renderer
	}
	engine, err := markdown.NewEngine(name)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(r.File)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", r.File, err)
	}
	doc, err := document.ParseWith(string(raw), engine)
	if err != nil {
		return err
	}

	if !r.JSON {
		_, err = fmt.Fprintln(g.Out, doc.HTML)
		return err
	}

	a := article.FromDocument(doc, r.File, 0, article.Defaults{Author: site.Author, Category: site.DefaultCategory})
	enc := json.NewEncoder(g.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

type ServeCmd struct {
	Port   int  `short:"p" help:"Port for the preview server." default:"1313"`
	Drafts bool `help:"Render draft articles too." default:"true" negatable:""`
}

func (s *ServeCmd) Run(g *Globals, cli *CLI) error {
	site, err := loadSite(cli.Config, false)
	if err != nil {
		return err
	}
	logger := g.logger(site)

	bld, err := builder.New(site, logger)
	if err != nil {
		return err
	}

	return server.Run(g.Ctx, server.Options{
		Port: s.Port,
		Dir:  site.Path(site.OutputDir),
		Watch: []string{
			site.Path(site.ContentDir),
			site.Path(site.TemplateDir),
			site.Path(site.StaticDir),
			cli.Config,
		},
		Build: func(ctx context.Context, opts builder.BuildOptions) error {
			_, err := bld.Build(ctx, opts)
			return err
		},
		BuildOptions: builder.BuildOptions{Drafts: s.Drafts},
		Logger:       logger,
	})
}

type NewCmd struct {
	Site    NewSiteCmd    `cmd:"" help:"Scaffold a new site."`
	Article NewArticleCmd `cmd:"" help:"Create a new article from the archetype."`
}

type NewSiteCmd struct {
	Name string `arg:"" help:"Directory for the new site."`
}

func (n *NewSiteCmd) Run(g *Globals) error {
	fmt.Fprintln(g.Out, "Scaffolding new site in:", n.Name)
	if err := scaffold.CreateNewSite(n.Name, time.Now()); err != nil {
		return err
	}
	fmt.Fprintln(g.Out, "Site scaffolded. You can now:")
	fmt.Fprintln(g.Out, "  cd", n.Name)
	fmt.Fprintln(g.Out, "  folio serve")
	return nil
}

type NewArticleCmd struct {
	Title string `arg:"" help:"Article title."`
}

func (n *NewArticleCmd) Run(g *Globals, cli *CLI) error {
	site, err := loadSite(cli.Config, false)
	if err != nil {
		return err
	}
	path, err := scaffold.CreateNewArticle(site, n.Title, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(g.Out, "Created:", path)
	return nil
}

type VersionCmd struct{}

func (VersionCmd) Run(g *Globals) error {
	_, err := fmt.Fprintf(g.Out, "folio %s\n", version)
	return err
}
