package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Blocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraph lines are joined",
			in:   "first line\n  second line  \n\nnext",
			want: "<p>first line second line</p>\n<p>next</p>",
		},
		{
			name: "heading escapes once",
			in:   "# Hi & <there>",
			want: "<h1>Hi &amp; &lt;there&gt;</h1>",
		},
		{
			name: "heading levels stop at four",
			in:   "#### four\n##### five",
			want: "<h4>four</h4>\n<p>##### five</p>",
		},
		{
			name: "heading needs a space",
			in:   "#hashtag",
			want: "<p>#hashtag</p>",
		},
		{
			name: "horizontal rules",
			in:   "above\n---\n***\nbelow",
			want: "<p>above</p>\n<hr />\n<hr />\n<p>below</p>",
		},
		{
			name: "blockquote lines become paragraphs",
			in:   "> one\n>two\nafter",
			want: "<blockquote>\n<p>one</p>\n<p>two</p>\n</blockquote>\n<p>after</p>",
		},
		{
			name: "unordered list",
			in:   "- a\n* b\n+ c",
			want: "<ul>\n<li>a</li>\n<li>b</li>\n<li>c</li>\n</ul>",
		},
		{
			name: "ordered then unordered closes the first list",
			in:   "1. one\n- two",
			want: "<ol>\n<li>one</li>\n</ol>\n<ul>\n<li>two</li>\n</ul>",
		},
		{
			name: "paragraph text closes a list",
			in:   "- item\ntext",
			want: "<ul>\n<li>item</li>\n</ul>\n<p>text</p>",
		},
		{
			name: "list item flushes a paragraph",
			in:   "intro\n2. item",
			want: "<p>intro</p>\n<ol>\n<li>item</li>\n</ol>",
		},
		{
			name: "blockquote closes a list",
			in:   "- item\n> quoted",
			want: "<ul>\n<li>item</li>\n</ul>\n<blockquote>\n<p>quoted</p>\n</blockquote>",
		},
		{
			name: "open blocks are closed at end of input",
			in:   "> still quoting",
			want: "<blockquote>\n<p>still quoting</p>\n</blockquote>",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.in))
		})
	}
}

func TestRender_CodeFence(t *testing.T) {
	in := "```Go {linenos}\n**not bold**\n# not a heading\n  <b>x</b>\n```\nafter"

	want := "<pre><code class=\"language-go\">**not bold**\n# not a heading\n  &lt;b&gt;x&lt;/b&gt;</code></pre>\n<p>after</p>"
	assert.Equal(t, want, Render(in))
}

func TestRender_CodeFenceWithoutLanguage(t *testing.T) {
	assert.Equal(t, "<pre><code>x := 1</code></pre>", Render("```\nx := 1\n```"))
}

func TestRender_CodeFenceLanguageIsSanitized(t *testing.T) {
	assert.Equal(t, "<pre><code class=\"language-c\">int x;</code></pre>", Render("```C++\nint x;\n```"))
	assert.Equal(t, "<pre><code class=\"language-shell-session\"></code></pre>", Render("```shell-session\n```"))
}

func TestRender_UnterminatedFenceIsClosed(t *testing.T) {
	assert.Equal(t, "<p>intro</p>\n<pre><code>dangling\n\n- x</code></pre>", Render("intro\n```\ndangling\n\n- x"))
}

func TestRender_FenceFlushesParagraph(t *testing.T) {
	assert.Equal(t, "<p>text</p>\n<pre><code>code</code></pre>", Render("text\n```\ncode\n```"))
}

func TestRender_Table(t *testing.T) {
	in := "| A | B |\n|---|:-:|\n| 1 | 2 |"

	want := "<table>\n<thead>\n" +
		"<tr><th>A</th><th style=\"text-align:center;\">B</th></tr>\n" +
		"</thead>\n<tbody>\n" +
		"<tr><td>1</td><td style=\"text-align:center;\">2</td></tr>\n" +
		"</tbody>\n</table>"
	assert.Equal(t, want, Render(in))
}

func TestRender_TableAlignmentsAndPadding(t *testing.T) {
	in := "intro\nName | Qty | Note\n:--- | ---: | ---\nfoo | 1\nbar | 2 | *x* | extra\n\nafter"

	out := Render(in)
	assert.True(t, strings.HasPrefix(out, "<p>intro</p>\n<table>"), out)
	assert.Contains(t, out, `<tr><th style="text-align:left;">Name</th><th style="text-align:right;">Qty</th><th>Note</th><th></th></tr>`)
	assert.Contains(t, out, `<tr><td style="text-align:left;">foo</td><td style="text-align:right;">1</td><td></td><td></td></tr>`)
	assert.Contains(t, out, `<tr><td style="text-align:left;">bar</td><td style="text-align:right;">2</td><td><em>x</em></td><td>extra</td></tr>`)
	assert.True(t, strings.HasSuffix(out, "</table>\n<p>after</p>"), out)
}

func TestRender_TableWithoutBody(t *testing.T) {
	assert.Equal(t, "<table>\n<thead>\n<tr><th>A</th></tr>\n</thead>\n</table>", Render("| A |\n| --- |"))
}

func TestIsSeparatorRow(t *testing.T) {
	assert.True(t, isSeparatorRow("|---|:-:|"))
	assert.True(t, isSeparatorRow(" :--- | ---: "))
	assert.False(t, isSeparatorRow("|--|---|"))
	assert.False(t, isSeparatorRow("---"))
	assert.False(t, isSeparatorRow("| a | --- |"))
}

func TestRender_PipeWithoutSeparatorIsParagraph(t *testing.T) {
	assert.Equal(t, "<p>a | b c | d</p>", Render("a | b\nc | d"))
	assert.Equal(t, "<p>a | b |--| c</p>", Render("a | b\n|--| c"))
}

func TestRender_RawHTMLBlock(t *testing.T) {
	in := "<div class=\"note\">\n\n**kept** as is\n<div>inner</div>\n</div>\nafter"

	want := "<div class=\"note\">\n\n**kept** as is\n<div>inner</div>\n</div>\n<p>after</p>"
	assert.Equal(t, want, Render(in))
}

func TestRender_RawHTMLSingleLine(t *testing.T) {
	assert.Equal(t, "<p>text</p>\n<span>a & b</span>\n<p>next</p>", Render("text\n<span>a & b</span>\nnext"))
}

func TestRender_RawHTMLUnknownTagPassesOneLine(t *testing.T) {
	assert.Equal(t, "<my-widget>\n<p><em>x</em></p>", Render("<my-widget>\n*x*"))
	assert.Equal(t, "<!-- note -->\n<p>after</p>", Render("<!-- note -->\nafter"))
}

func TestRender_VoidElement(t *testing.T) {
	assert.Equal(t, "<img src=\"a.png\">\n<p>caption</p>", Render("<img src=\"a.png\">\ncaption"))
	assert.Equal(t, "<img\n  src=\"a.png\" />\n<p>caption</p>", Render("<img\n  src=\"a.png\" />\ncaption"))
}

func TestRender_SelfClosingBlockTagDoesNotOpen(t *testing.T) {
	assert.Equal(t, "<div />\n<p>text</p>", Render("<div />\ntext"))
}

func TestRender_UnclosedRawHTMLRunsToEnd(t *testing.T) {
	assert.Equal(t, "<section>\n# not heading", Render("<section>\n# not heading"))
}

func TestRender_CRLF(t *testing.T) {
	assert.Equal(t, "<h2>Title</h2>\n<p>body</p>", Render("## Title\r\n\r\nbody\r\n"))
}

func TestTagDepth(t *testing.T) {
	assert.Equal(t, 1, tagDepth(`<div class="x">`, "div"))
	assert.Equal(t, 0, tagDepth(`<div>a</div>`, "div"))
	assert.Equal(t, -1, tagDepth(`</DIV >`, "div"))
	assert.Equal(t, 0, tagDepth(`<div/>`, "div"))
	assert.Equal(t, 0, tagDepth(`<pre>`, "p"))
	assert.Equal(t, 1, tagDepth(`<div`, "div"))
}

func TestRender_Idempotent(t *testing.T) {
	in := "# T\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n```js\nx\n```\n- y"
	require.Equal(t, Render(in), Render(in))
}
