package content

import (
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/yaml.v3"
)

// Segment is one piece of a RichText: either a run of text or a line break.
// A Segment with Break set ignores Text.
type Segment struct {
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Break bool   `json:"break,omitempty" yaml:"break,omitempty"`
}

// RichText is text with embedded line breaks. It never carries markup; the
// renderer escapes every text segment and decides how breaks are drawn.
type RichText []Segment

// ParseRichText builds a RichText from s, turning every newline into a break.
// Consecutive newlines produce consecutive breaks.
func ParseRichText(s string) RichText {
	if s == "" {
		return nil
	}
	var res RichText
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			res = append(res, Segment{Break: true})
		}
		if line != "" {
			res = append(res, Segment{Text: line})
		}
	}
	return res
}

// String returns the text with breaks as newlines. It is the inverse of
// ParseRichText.
func (r RichText) String() string {
	var b strings.Builder
	for _, seg := range r {
		if seg.Break {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// HTML renders the text as markup safe to embed in an element: text segments
// are escaped and breaks become <br /> elements.
func (r RichText) HTML() template.HTML {
	var b strings.Builder
	for _, seg := range r {
		if seg.Break {
			b.WriteString("<br />")
			continue
		}
		b.WriteString(template.HTMLEscapeString(seg.Text))
	}
	return template.HTML(b.String()) // #nosec G203
}

// UnmarshalYAML accepts either a plain string, parsed with ParseRichText, or
// a sequence of segments.
func (r *RichText) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*r = ParseRichText(value.Value)
		return nil
	case yaml.SequenceNode:
		var segs []Segment
		if err := value.Decode(&segs); err != nil {
			return fmt.Errorf("error decoding rich text segments: %w", err)
		}
		*r = segs
		return nil
	default:
		return fmt.Errorf("rich text at line %d: expected a string or a list of segments", value.Line)
	}
}
