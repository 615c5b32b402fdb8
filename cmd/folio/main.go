// cmd/folio/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

var version = "dev"

// CLI is the command tree.
type CLI struct {
	Config  string `short:"c" help:"Site configuration file." default:"site.yaml" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Build   BuildCmd   `cmd:"" help:"Render articles, listing and index into the output directory."`
	Index   IndexCmd   `cmd:"" help:"Write the article index JSON for a content directory."`
	Render  RenderCmd  `cmd:"" help:"Render a single markdown file to stdout."`
	Serve   ServeCmd   `cmd:"" help:"Build, serve and rebuild on changes with live reload."`
	New     NewCmd     `cmd:"" help:"Create a new site or article."`
	Version VersionCmd `cmd:"" help:"Print the folio version."`
}

// Globals are bound into every command's Run method.
type Globals struct {
	Ctx     context.Context
	Out     io.Writer
	Verbose bool
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("folio"),
		kong.Description("A small markdown blog toolkit: parse, index, build and preview articles."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := kctx.Run(&Globals{Ctx: ctx, Out: os.Stdout, Verbose: cli.Verbose}, &cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Operation failed: %v\n", err)
		stop()
		os.Exit(1)
	}
}
