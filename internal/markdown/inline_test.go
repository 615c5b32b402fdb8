package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`a & b < c > d "e" 'f'`, "a &amp; b &lt; c &gt; d &quot;e&quot; &#39;f&#39;"},
		{"already &amp; escaped", "already &amp;amp; escaped"},
		{"use `x := <-ch` here", "use <code>x := &lt;-ch</code> here"},
		{"**bold** and *italic*", "<strong>bold</strong> and <em>italic</em>"},
		{"`**not bold**`", "<code>**not bold**</code>"},
		{"[site](https://example.com)", `<a href="https://example.com">site</a>`},
		{"see [`cmd`](/docs/cmd)", `see <a href="/docs/cmd"><code>cmd</code></a>`},
		{"[**strong link**](/a)", `<a href="/a"><strong>strong link</strong></a>`},
		{"2 * 3 = 6", "2 * 3 = 6"},
		{"unclosed `tick", "unclosed `tick"},
		{"a `x` and \uE0000\uE001", "a <code>x</code> and &#xE000;0&#xE001;"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderInline(tt.in))
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;", EscapeHTML("<script>alert('x')</script>"))
}
