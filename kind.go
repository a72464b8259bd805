package learnphoto

import (
	"fmt"

	"impractical.co/learnphoto/content"
)

// PageKind identifies one of the site's pages. The set is closed: the only
// valid values are the ones returned by Kinds.
type PageKind int

const (
	KindHome PageKind = iota
	KindHistory
	KindGallery
	KindStyles
	KindContact
)

// Kinds returns every PageKind, in navigation order.
func Kinds() []PageKind {
	return []PageKind{KindHome, KindHistory, KindGallery, KindStyles, KindContact}
}

// ParsePageKind returns the PageKind for a page id, as set on a document's
// <body>. Matching is exact; anything other than the five ids returns false.
func ParsePageKind(id string) (PageKind, bool) {
	switch id {
	case "home":
		return KindHome, true
	case "history":
		return KindHistory, true
	case "gallery":
		return KindGallery, true
	case "styles":
		return KindStyles, true
	case "contact":
		return KindContact, true
	}
	return 0, false
}

// ID is the page id, the value a document sets on its <body> to get this
// page's content.
func (k PageKind) ID() string {
	switch k {
	case KindHome:
		return "home"
	case KindHistory:
		return "history"
	case KindGallery:
		return "gallery"
	case KindStyles:
		return "styles"
	case KindContact:
		return "contact"
	}
	return fmt.Sprintf("PageKind(%d)", int(k))
}

// String implements fmt.Stringer.
func (k PageKind) String() string {
	return k.ID()
}

// Label is the text used for the page in the navigation bar.
func (k PageKind) Label() string {
	switch k {
	case KindHome:
		return "Home"
	case KindHistory:
		return "History"
	case KindGallery:
		return "Gallery"
	case KindStyles:
		return "Styles"
	case KindContact:
		return "Contact"
	}
	return k.ID()
}

// File is the name of the HTML file the page is published as.
func (k PageKind) File() string {
	if k == KindHome {
		return "index.html"
	}
	return k.ID() + ".html"
}

// Page builds the typed Page for k from store.
func (k PageKind) Page(store content.Store) Page {
	switch k {
	case KindHome:
		return HomePage{Record: store.Home}
	case KindHistory:
		return HistoryPage{Record: store.History}
	case KindGallery:
		return GalleryPage{Record: store.Gallery}
	case KindStyles:
		return StylesPage{Record: store.Styles}
	case KindContact:
		return ContactPage{Record: store.Contact}
	}
	panic(fmt.Sprintf("learnphoto: unknown page kind %d", int(k)))
}

// PageKindForFile returns the PageKind published as the file name, as
// returned by File. Only "index.html" is the home page.
func PageKindForFile(name string) (PageKind, bool) {
	for _, kind := range Kinds() {
		if kind.File() == name {
			return kind, true
		}
	}
	return 0, false
}
