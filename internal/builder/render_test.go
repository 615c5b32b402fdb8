package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanView_PlainTextUnchanged(t *testing.T) {
	out, err := cleanView("Just a paragraph.\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Just a paragraph.")
}

func TestCleanView_EditorialMarkup(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   []string
		absent []string
	}{
		{
			name:   "addition and deletion",
			input:  "This is {+an addition+} and this is {-a deletion-}.",
			want:   []string{"This is an addition and this is ."},
			absent: []string{"a deletion", "{+", "{-"},
		},
		{
			name:   "highlight becomes text",
			input:  "Keep {=this=} word.",
			want:   []string{"Keep this word."},
			absent: []string{"{="},
		},
		{
			name:   "comment dropped",
			input:  "Text{>reviewer note<} here.",
			want:   []string{"Text", "here."},
			absent: []string{"reviewer note", "{>"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := cleanView(tc.input)
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
			for _, a := range tc.absent {
				assert.NotContains(t, out, a)
			}
		})
	}
}

func TestLoadTemplates_JoinFunc(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/blog/layout.html", `{{define "main"}}{{join .Params.tags "|"}}{{end}}`)
	writeFile(t, dir+"/blog/header.html", ``)
	writeFile(t, dir+"/blog/footer.html", ``)

	tmpl, err := LoadTemplates(dir, "blog")
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("main"))
	assert.Nil(t, tmpl.Lookup("list"))
}
