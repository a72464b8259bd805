package learnphoto

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"impractical.co/learnphoto/dom"
)

// Mount point ids a document exposes to receive rendered fragments.
const (
	NavMountID     = "nav-container"
	FooterMountID  = "footer-container"
	ContentMountID = "page-content"
)

const notFoundTitle = "Page not found"

// Injector fills a document's mount points for a PhotoSite.
type Injector struct {
	site *PhotoSite
}

// NewInjector returns an Injector rendering with site.
func NewInjector(site *PhotoSite) *Injector {
	return &Injector{site: site}
}

// Apply fills the navigation mount point, then the footer mount point, then
// the content mount point with the Page selected by the document's page id.
//
// A missing mount point is skipped. If the content mount point exists but the
// document has no page id, it's left alone; an id that isn't a known page
// gets the NotFound fragment. A builder that fails doesn't stop the others,
// and all failures are returned together.
//
// Every mount point is replaced wholesale, so applying twice gives the same
// document as applying once.
func (in *Injector) Apply(ctx context.Context, doc *dom.Document) error {
	return in.apply(ctx, doc, nil)
}

func (in *Injector) apply(ctx context.Context, doc *dom.Document, page Renderable) error {
	var errs []error
	if err := in.mount(ctx, doc, NavMountID, in.site.NavBar()); err != nil {
		errs = append(errs, err)
	}
	if err := in.mount(ctx, doc, FooterMountID, in.site.Footer()); err != nil {
		errs = append(errs, err)
	}
	if err := in.mountContent(ctx, doc, page); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// mountContent fills the content mount point with page, or with the Page
// the document's id selects if page is nil.
func (in *Injector) mountContent(ctx context.Context, doc *dom.Document, page Renderable) error {
	if !doc.Has(ContentMountID) {
		Logger(ctx).DebugContext(ctx, "no mount point, skipping", "mount", ContentMountID)
		return nil
	}
	if page != nil {
		return in.mount(ctx, doc, ContentMountID, page)
	}
	id := doc.PageID()
	if id == "" {
		Logger(ctx).DebugContext(ctx, "document has no page id, skipping content")
		return nil
	}
	page = Dispatch(in.site.Content, id)
	if _, ok := page.(NotFound); ok {
		Logger(ctx).WarnContext(ctx, "unknown page id", "id", id)
	}
	return in.mount(ctx, doc, ContentMountID, page)
}

func (in *Injector) mount(ctx context.Context, doc *dom.Document, id string, component Renderable) error {
	if !doc.Has(id) {
		Logger(ctx).DebugContext(ctx, "no mount point, skipping", "mount", id)
		return nil
	}
	fragment, err := RenderFragment(ctx, in.site, component)
	if err != nil {
		return fmt.Errorf("error rendering #%s: %w", id, err)
	}
	if _, err := doc.Mount(id, fragment); err != nil {
		return err
	}
	return nil
}

// BuildDocument renders the Shell for the page id and injects the navigation,
// footer and page content into it. Unknown ids still produce a document,
// with the NotFound fragment as its content.
func BuildDocument(ctx context.Context, site *PhotoSite, id string) (*dom.Document, error) {
	return buildDocument(ctx, site, id, nil)
}

// BuildNotFoundDocument is like BuildDocument, except the content is always
// the NotFound fragment, even when id is a known page id. It's what's served
// for files that are never published.
func BuildNotFoundDocument(ctx context.Context, site *PhotoSite, id string) (*dom.Document, error) {
	return buildDocument(ctx, site, id, NotFound{})
}

func buildDocument(ctx context.Context, site *PhotoSite, id string, page Renderable) (*dom.Document, error) {
	title := notFoundTitle
	if kind, ok := ParsePageKind(id); ok && page == nil {
		title = kind.Page(site.Content).Title()
	}
	if title == "" || title == site.Title {
		title = site.Title
	} else {
		title += " | " + site.Title
	}

	shell := Shell{
		ID:          id,
		Title:       title,
		Stylesheets: site.Stylesheets,
	}
	out, err := RenderFragment(ctx, site, shell)
	if err != nil {
		return nil, fmt.Errorf("error rendering shell for %q: %w", id, err)
	}
	doc, err := dom.Parse(strings.NewReader(out))
	if err != nil {
		return nil, err
	}
	if err := NewInjector(site).apply(ctx, doc, page); err != nil {
		return nil, fmt.Errorf("error building %q: %w", id, err)
	}
	return doc, nil
}
