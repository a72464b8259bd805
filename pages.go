package learnphoto

import (
	"context"
	"html/template"
	"net/url"

	"impractical.co/learnphoto/content"
)

// Page is the content fragment for one PageKind. The set of implementations
// is closed; each carries the content.Store record for its page.
type Page interface {
	Renderable

	// Kind returns the PageKind this Page renders.
	Kind() PageKind

	// Title returns the page's title from its record.
	Title() string

	isPage()
}

var (
	_ Page = HomePage{}
	_ Page = HistoryPage{}
	_ Page = GalleryPage{}
	_ Page = StylesPage{}
	_ Page = ContactPage{}
)

// HomePage renders a hero section followed by an about section. The about
// paragraph is rich text; its breaks are rendered as <br /> and its text is
// escaped.
type HomePage struct {
	Record content.Home
}

func (HomePage) Templates(_ context.Context) []string {
	return []string{"home.html.tmpl"}
}

func (HomePage) Key(_ context.Context) string {
	return "home"
}

func (HomePage) ExecutedTemplate(_ context.Context) string {
	return "home.html.tmpl"
}

func (HomePage) Kind() PageKind { return KindHome }
func (h HomePage) Title() string { return h.Record.Title }
func (HomePage) isPage() {}

// HistoryPage renders the narrative paragraphs and the timeline, both in the
// order they appear in the record.
type HistoryPage struct {
	Record content.History
}

func (HistoryPage) Templates(_ context.Context) []string {
	return []string{"history.html.tmpl"}
}

func (HistoryPage) Key(_ context.Context) string {
	return "history"
}

func (HistoryPage) ExecutedTemplate(_ context.Context) string {
	return "history.html.tmpl"
}

func (HistoryPage) Kind() PageKind { return KindHistory }
func (h HistoryPage) Title() string { return h.Record.Title }
func (HistoryPage) isPage() {}

// GalleryPage renders a grid with one image per entry.
type GalleryPage struct {
	Record content.Gallery
}

func (GalleryPage) Templates(_ context.Context) []string {
	return []string{"gallery.html.tmpl"}
}

func (GalleryPage) Key(_ context.Context) string {
	return "gallery"
}

func (GalleryPage) ExecutedTemplate(_ context.Context) string {
	return "gallery.html.tmpl"
}

func (GalleryPage) Kind() PageKind { return KindGallery }
func (g GalleryPage) Title() string { return g.Record.Title }
func (GalleryPage) isPage() {}

// StylesPage renders a grid with one card per style.
type StylesPage struct {
	Record content.Styles
}

func (StylesPage) Templates(_ context.Context) []string {
	return []string{"styles.html.tmpl"}
}

func (StylesPage) Key(_ context.Context) string {
	return "styles"
}

func (StylesPage) ExecutedTemplate(_ context.Context) string {
	return "styles.html.tmpl"
}

func (StylesPage) Kind() PageKind { return KindStyles }
func (s StylesPage) Title() string { return s.Record.Title }
func (StylesPage) isPage() {}

// ContactPage renders the contact details. The email address is shown as
// text and linked with a mailto: URL.
type ContactPage struct {
	Record content.Contact
}

func (ContactPage) Templates(_ context.Context) []string {
	return []string{"contact.html.tmpl"}
}

func (ContactPage) Key(_ context.Context) string {
	return "contact"
}

func (ContactPage) ExecutedTemplate(_ context.Context) string {
	return "contact.html.tmpl"
}

func (ContactPage) FuncMap(_ context.Context) template.FuncMap {
	return template.FuncMap{
		"mailto": mailto,
	}
}

func (ContactPage) Kind() PageKind { return KindContact }
func (c ContactPage) Title() string { return c.Record.Title }
func (ContactPage) isPage() {}

func mailto(address string) template.URL {
	u := url.URL{Scheme: "mailto", Opaque: address}
	return template.URL(u.String()) // #nosec G203
}

// NotFound is the fragment rendered into the content mount point when the
// document's page id isn't a known PageKind.
type NotFound struct{}

func (NotFound) Templates(_ context.Context) []string {
	return []string{"notfound.html.tmpl"}
}

func (NotFound) Key(_ context.Context) string {
	return "notfound"
}

func (NotFound) ExecutedTemplate(_ context.Context) string {
	return "notfound.html.tmpl"
}

// ServerError is a complete document shown when a page can't be rendered.
type ServerError struct{}

func (ServerError) Templates(_ context.Context) []string {
	return []string{"server_error.html.tmpl"}
}

func (ServerError) Key(_ context.Context) string {
	return "server_error"
}

func (ServerError) ExecutedTemplate(_ context.Context) string {
	return "server_error.html.tmpl"
}

// Dispatch returns the Page for id, or NotFound if id isn't a known page id.
func Dispatch(store content.Store, id string) Renderable {
	kind, ok := ParsePageKind(id)
	if !ok {
		return NotFound{}
	}
	return kind.Page(store)
}
