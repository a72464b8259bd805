package learnphoto

import (
	"context"
	"time"

	"impractical.co/learnphoto/content"
)

// DefaultTitle is the site title used by NewPhotoSite.
const DefaultTitle = "Learn Photography"

var _ ServerErrorPager = &PhotoSite{}

// PhotoSite is the Site for Learn Photography. It's safe to use from multiple
// goroutines as long as its fields aren't changed after it's first used.
type PhotoSite struct {
	*CachedSite

	// Title is shown in the navigation bar's brand link, in document
	// titles and in the footer.
	Title string

	// Content is every page's text and image references. It's only ever
	// read.
	Content content.Store

	// NoticeFormat is the Footer's notice format.
	NoticeFormat string

	// Stylesheets are linked from every generated document.
	Stylesheets []string

	// Clock supplies the current time for the footer's year.
	Clock func() time.Time
}

// NewPhotoSite returns a PhotoSite rendering store with the embedded
// templates and the default settings.
func NewPhotoSite(store content.Store) *PhotoSite {
	return &PhotoSite{
		CachedSite:   NewCachedSite(Templates()),
		Title:        DefaultTitle,
		Content:      store,
		NoticeFormat: DefaultNoticeFormat,
		Stylesheets:  []string{StylesheetName},
		Clock:        time.Now,
	}
}

// Now returns the current time according to the site's Clock.
func (s *PhotoSite) Now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

// NavBar returns the site's navigation bar.
func (s *PhotoSite) NavBar() NavBar {
	return NewNavBar(s.Title)
}

// Footer returns the site's footer for the current year.
func (s *PhotoSite) Footer() Footer {
	return Footer{
		Year:      s.Now().Year(),
		SiteTitle: s.Title,
		Format:    s.NoticeFormat,
	}
}

// ServerErrorPage fulfills the ServerErrorPager interface.
func (*PhotoSite) ServerErrorPage(_ context.Context) Renderable {
	return ServerError{}
}
