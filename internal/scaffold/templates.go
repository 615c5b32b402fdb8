package scaffold

const siteYamlContent = `title: My Portfolio
author: Your Name
baseurl: https://example.com
description: Articles about software, design and everything in between.
template: blog
locale: pt-BR
renderer: builtin
sanitize: false
editorial: false
defaultCategory: Artigos
articlesRoute: blog/artigos
`

const archetypeContent = `
Write something meaningful here.

## Notes

- by {{.Author}}
`

const staticCSSContent = `body {
  font-family: system-ui, sans-serif;
  max-width: 720px;
  margin: 2em auto;
  padding: 0 1em;
  line-height: 1.65;
  color: #1f2328;
  background: #fdfdfd;
}
header { display: flex; justify-content: space-between; align-items: baseline; margin-bottom: 2em; }
header a { color: inherit; text-decoration: none; }
.meta { color: #6e7781; font-size: 0.9em; }
.tags span { display: inline-block; background: #eef1f4; border-radius: 4px; padding: 0 0.4em; margin-right: 0.3em; }
pre { background: #f6f8fa; padding: 1em; overflow-x: auto; }
code { font-family: ui-monospace, monospace; font-size: 0.92em; }
blockquote { border-left: 3px solid #d0d7de; margin-left: 0; padding-left: 1em; color: #57606a; }
table { border-collapse: collapse; }
th, td { border: 1px solid #d0d7de; padding: 0.3em 0.6em; }
.articles { list-style: none; padding: 0; }
.articles li { margin-bottom: 1.5em; }
footer { text-align: center; font-size: 0.9em; color: #6e7781; margin-top: 3em; }
`

const templateLayoutContent = `{{ define "main" }}<!DOCTYPE html>
<html lang="{{ .SEO.Locale }}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .SEO.Title }} | {{ .Site.Title }}</title>
  <meta name="description" content="{{ .Description }}">
  <meta name="author" content="{{ .SEO.Author }}">
  {{ if .SEO.Keywords }}<meta name="keywords" content="{{ .SEO.KeywordList }}">{{ end }}
  <link rel="canonical" href="{{ .SEO.CanonicalURL }}">
  <meta property="og:type" content="article">
  <meta property="og:title" content="{{ .SEO.Title }}">
  <meta property="og:description" content="{{ .SEO.Description }}">
  <meta property="og:url" content="{{ .SEO.CanonicalURL }}">
  <meta property="og:locale" content="{{ .SEO.Locale }}">
  {{ if .SEO.Image }}<meta property="og:image" content="{{ .SEO.Image }}">{{ end }}
  {{ if .SEO.PublishedAt }}<meta property="article:published_time" content="{{ .SEO.PublishedAt }}">{{ end }}
  <meta name="twitter:card" content="{{ .SEO.TwitterCard }}">
  <meta name="twitter:title" content="{{ .SEO.Title }}">
  <meta name="twitter:description" content="{{ .SEO.Description }}">
  {{ if .SEO.Image }}<meta name="twitter:image" content="{{ .SEO.Image }}">{{ end }}
  <script type="application/ld+json">{{ .SEO.JSONLD }}</script>
  <link rel="stylesheet" href="{{ .BaseHref }}css/style.css">
</head>
<body>
  {{ template "header" . }}
  <main>
    <article>
      <h1>{{ .Title }}</h1>
      <p class="meta">
        {{ if .Published }}<time datetime="{{ .Article.PublishedAt }}">{{ .Published }}</time> · {{ end }}
        {{ .Article.ReadTime }} min · {{ .Article.Category }}
      </p>
      {{ .Content }}
      {{ if .Article.Tags }}<p class="tags">{{ range .Article.Tags }}<span>{{ . }}</span>{{ end }}</p>{{ end }}
    </article>
  </main>
  {{ template "footer" . }}
</body>
</html>
{{ end }}`

const templateHeaderContent = `{{ define "header" }}
<header>
  <a href="{{ .BaseHref }}index.html">{{ .Site.Title }}</a>
  <a href="{{ .BaseHref }}{{ .Site.ArticlesRoute }}/">{{ .Site.DefaultCategory }}</a>
</header>
{{ end }}`

const templateFooterContent = `{{ define "footer" }}
<footer>
  &copy; {{ .Site.Author }}
</footer>
{{ end }}`

const templateListContent = `{{ define "list" }}<!DOCTYPE html>
<html lang="{{ .Site.Locale }}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }} | {{ .Site.Title }}</title>
  <meta name="description" content="{{ .Description }}">
  <link rel="stylesheet" href="{{ .BaseHref }}css/style.css">
</head>
<body>
  {{ template "header" . }}
  <main>
    <h1>{{ .Title }}</h1>
    <ul class="articles">
    {{ range .Articles }}
      <li>
        <a href="{{ .URL }}">{{ .Title }}</a>
        <p class="meta">{{ if .DateLabel }}{{ .DateLabel }} · {{ end }}{{ .ReadTime }} min · {{ .Category }}</p>
        {{ if .Excerpt }}<p>{{ .Excerpt }}</p>{{ end }}
      </li>
    {{ end }}
    </ul>
  </main>
  {{ template "footer" . }}
</body>
</html>
{{ end }}`
