package content_test

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"

	"impractical.co/learnphoto/content"
)

func TestParseRichText(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want content.RichText
	}{
		"empty": {
			in:   "",
			want: nil,
		},
		"single line": {
			in:   "hello",
			want: content.RichText{{Text: "hello"}},
		},
		"paragraph break": {
			in: "first\n\nsecond",
			want: content.RichText{
				{Text: "first"},
				{Break: true},
				{Break: true},
				{Text: "second"},
			},
		},
		"trailing newline": {
			in:   "line\n",
			want: content.RichText{{Text: "line"}, {Break: true}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := content.ParseRichText(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in, got.String())
		})
	}
}

func TestRichTextHTML_escapes_text_segments(t *testing.T) {
	t.Parallel()

	text := content.ParseRichText("Tom & Jerry\n\n<script>alert(1)</script>")

	assert.Equal(
		t,
		template.HTML("Tom &amp; Jerry<br /><br />&lt;script&gt;alert(1)&lt;/script&gt;"),
		text.HTML(),
	)
}

func TestRichTextHTML_empty(t *testing.T) {
	t.Parallel()

	var text content.RichText
	assert.Equal(t, template.HTML(""), text.HTML())
}
