package learnphoto

import (
	"context"
	"strconv"

	"github.com/valyala/fasttemplate"
)

// DefaultNoticeFormat is the copyright notice used when a site doesn't set
// one. {year} and {site} are replaced when the footer renders.
const DefaultNoticeFormat = "© {year} {site}. All rights reserved."

// Footer is the footer shared by every page.
type Footer struct {
	Year      int
	SiteTitle string

	// Format is the notice text, with {year} and {site} placeholders.
	// Unknown placeholders are left as they are. Empty means
	// DefaultNoticeFormat.
	Format string
}

// Notice returns the copyright notice with placeholders filled in.
func (f Footer) Notice() string {
	format := f.Format
	if format == "" {
		format = DefaultNoticeFormat
	}
	return fasttemplate.ExecuteStringStd(format, "{", "}", map[string]interface{}{
		"year": strconv.Itoa(f.Year),
		"site": f.SiteTitle,
	})
}

func (Footer) Templates(_ context.Context) []string {
	return []string{"footer.html.tmpl"}
}

func (Footer) Key(_ context.Context) string {
	return "footer"
}

func (Footer) ExecutedTemplate(_ context.Context) string {
	return "footer.html.tmpl"
}
