// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned when site.yaml does not exist.
var ErrNoConfig = errors.New("site config not found")

const (
	DefaultContentDir    = "content/articles"
	DefaultTemplateDir   = "templates"
	DefaultStaticDir     = "static"
	DefaultOutputDir     = "public"
	DefaultTemplate      = "blog"
	DefaultRenderer      = "builtin"
	DefaultLocale        = "pt-BR"
	DefaultCategory      = "Artigos"
	DefaultArticlesRoute = "blog/artigos"
)

// SiteConfig holds the configuration from the site.yaml file. Every field can
// be overridden with the FOLIO_* variable named in its env tag.
type SiteConfig struct {
	Title           string `yaml:"title" env:"FOLIO_TITLE"`
	Author          string `yaml:"author" env:"FOLIO_AUTHOR"`
	BaseURL         string `yaml:"baseurl" env:"FOLIO_BASEURL"`
	Description     string `yaml:"description" env:"FOLIO_DESCRIPTION"`
	Template        string `yaml:"template" env:"FOLIO_TEMPLATE"`
	Locale          string `yaml:"locale" env:"FOLIO_LOCALE"`
	Renderer        string `yaml:"renderer" env:"FOLIO_RENDERER"`
	Sanitize        bool   `yaml:"sanitize" env:"FOLIO_SANITIZE"`
	Editorial       bool   `yaml:"editorial" env:"FOLIO_EDITORIAL"`
	DefaultCategory string `yaml:"defaultCategory" env:"FOLIO_DEFAULT_CATEGORY"`
	ArticlesRoute   string `yaml:"articlesRoute" env:"FOLIO_ARTICLES_ROUTE"`
	ContentDir      string `yaml:"contentDir" env:"FOLIO_CONTENT_DIR"`
	TemplateDir     string `yaml:"templateDir" env:"FOLIO_TEMPLATE_DIR"`
	StaticDir       string `yaml:"staticDir" env:"FOLIO_STATIC_DIR"`
	OutputDir       string `yaml:"outputDir" env:"FOLIO_OUTPUT_DIR"`
	Environment     string `yaml:"environment" env:"FOLIO_ENV"`

	// Root is the directory site.yaml was loaded from. Relative directories
	// are resolved against it.
	Root string `yaml:"-" env:"-"`
}

// LoadSiteConfig reads site.yaml, then applies a .env file next to it (if
// any), FOLIO_* environment overrides and defaults, in that order.
func LoadSiteConfig(path string) (SiteConfig, error) {
	cfg := SiteConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return SiteConfig{}, fmt.Errorf("%w: %s", ErrNoConfig, path)
		}
		return SiteConfig{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	cfg.Root = filepath.Dir(path)

	// A missing .env is fine; variables already set in the process win.
	_ = godotenv.Load(filepath.Join(cfg.Root, ".env"))

	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("parsing environment overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no site.yaml is present.
func Default() SiteConfig {
	cfg := SiteConfig{Root: "."}
	cfg.applyDefaults()
	return cfg
}

func (c *SiteConfig) applyDefaults() {
	setDefault(&c.ContentDir, DefaultContentDir)
	setDefault(&c.TemplateDir, DefaultTemplateDir)
	setDefault(&c.StaticDir, DefaultStaticDir)
	setDefault(&c.OutputDir, DefaultOutputDir)
	setDefault(&c.Template, DefaultTemplate)
	setDefault(&c.Renderer, DefaultRenderer)
	setDefault(&c.Locale, DefaultLocale)
	setDefault(&c.DefaultCategory, DefaultCategory)
	setDefault(&c.ArticlesRoute, DefaultArticlesRoute)
	setDefault(&c.Environment, "development")
	setDefault(&c.Root, ".")
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Path resolves a configured directory against the site root.
func (c SiteConfig) Path(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Root, dir)
}
