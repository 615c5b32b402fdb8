package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"folio/internal/article"
)

// Scan builds the article index for dir: one summary per published article,
// first file wins on duplicate slugs, newest first.
func Scan(ctx context.Context, dir string, opts Options) ([]article.Summary, error) {
	articles, err := Load(ctx, dir, opts)
	if err != nil {
		return nil, err
	}
	return article.NewCollection(articles).Summaries(), nil
}

// Write stores summaries as an indented JSON array, creating parent
// directories as needed.
func Write(path string, summaries []article.Summary) error {
	if summaries == nil {
		summaries = []article.Summary{}
	}
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding article index: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Run scans dir and writes the index to out. It returns the number of
// entries written.
func Run(ctx context.Context, dir, out string, opts Options) (int, error) {
	summaries, err := Scan(ctx, dir, opts)
	if err != nil {
		return 0, err
	}
	if err := Write(out, summaries); err != nil {
		return 0, fmt.Errorf("writing article index %s: %w", out, err)
	}
	opts.logger().Info("article index written", "path", out, "articles", len(summaries))
	return len(summaries), nil
}
