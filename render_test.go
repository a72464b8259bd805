package learnphoto_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"impractical.co/learnphoto"
	"impractical.co/learnphoto/content"
)

type brokenPage struct{}

func (brokenPage) Templates(_ context.Context) []string {
	return []string{"broken.html.tmpl"}
}

func (brokenPage) Key(_ context.Context) string {
	return "broken"
}

func (brokenPage) ExecutedTemplate(_ context.Context) string {
	return "broken.html.tmpl"
}

type missingTemplatePage struct{}

func (missingTemplatePage) Templates(_ context.Context) []string {
	return []string{"does-not-exist.html.tmpl"}
}

func (missingTemplatePage) Key(_ context.Context) string {
	return "missing"
}

func (missingTemplatePage) ExecutedTemplate(_ context.Context) string {
	return "does-not-exist.html.tmpl"
}

func brokenSite() *learnphoto.PhotoSite {
	site := newTestSite()
	site.CachedSite = learnphoto.NewCachedSite(fstest.MapFS{
		"broken.html.tmpl":       {Data: []byte(`{{ .Page.NoSuchField }}`)},
		"server_error.html.tmpl": {Data: []byte(`<h1>Server error</h1>`)},
	})
	return site
}

func TestRender_falls_back_to_server_error_page(t *testing.T) {
	t.Parallel()

	ctx := learnphoto.LoggingContext(context.Background(), slog.Default())
	var out bytes.Buffer
	learnphoto.Render(ctx, &out, brokenSite(), brokenPage{})

	if got := out.String(); got != "<h1>Server error</h1>" {
		t.Errorf("expected the server error page, got %q", got)
	}
}

type bareSite struct {
	*learnphoto.CachedSite
}

func TestRender_without_error_pager(t *testing.T) {
	t.Parallel()

	site := bareSite{CachedSite: learnphoto.NewCachedSite(fstest.MapFS{})}
	var out bytes.Buffer
	learnphoto.Render(context.Background(), &out, site, missingTemplatePage{})

	if got := out.String(); got != "Server error." {
		t.Errorf("expected the plain server error message, got %q", got)
	}
}

func TestRenderFragment_missing_template(t *testing.T) {
	t.Parallel()

	_, err := learnphoto.RenderFragment(context.Background(), brokenSite(), missingTemplatePage{})
	if !errors.Is(err, learnphoto.ErrTemplatePatternMatchesNoFiles) {
		t.Errorf("expected ErrTemplatePatternMatchesNoFiles, got %v", err)
	}
}

func TestRender_server_error_page_uses_site_title(t *testing.T) {
	t.Parallel()

	site := newTestSite()
	var out bytes.Buffer
	learnphoto.Render(context.Background(), &out, site, site.ServerErrorPage(context.Background()))

	if !strings.Contains(out.String(), "<title>Server Error | Learn Photography</title>") {
		t.Errorf("unexpected server error page: %s", out.String())
	}
}

type cachedFoo struct{}

func (cachedFoo) Templates(_ context.Context) []string {
	return []string{"base.tmpl", "foo.tmpl"}
}

func (cachedFoo) Key(_ context.Context) string {
	return "foo"
}

func (cachedFoo) ExecutedTemplate(_ context.Context) string {
	return "base.tmpl"
}

func TestCachedSite_reuses_parsed_templates(t *testing.T) {
	t.Parallel()

	templateFS := fstest.MapFS{
		"base.tmpl": {Data: []byte(`{{ block "name" . }}base{{ end }}`)},
		"foo.tmpl":  {Data: []byte(`{{ define "name" }}foo{{ end }}`)},
	}
	site := learnphoto.NewCachedSite(templateFS)
	ctx := context.Background()

	first, err := learnphoto.RenderFragment(ctx, site, cachedFoo{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if first != "foo" {
		t.Errorf("expected %q, got %q", "foo", first)
	}

	oldData := slices.Clone(templateFS["foo.tmpl"].Data)
	templateFS["foo.tmpl"].Data = []byte(`{{ define "name" }}changed{{ end }}`)
	defer func() { templateFS["foo.tmpl"].Data = oldData }()

	second, err := learnphoto.RenderFragment(ctx, site, cachedFoo{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if second != first {
		t.Errorf("expected cached output %q after changing the template, got %q", first, second)
	}
	if site.GetCachedTemplate(ctx, "foo") == nil {
		t.Error("expected the template to be cached under its key")
	}
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	store := content.Default()
	for _, kind := range learnphoto.Kinds() {
		page, ok := learnphoto.Dispatch(store, kind.ID()).(learnphoto.Page)
		if !ok {
			t.Fatalf("%s: expected a Page", kind)
		}
		if page.Kind() != kind {
			t.Errorf("%s: dispatched to %s", kind, page.Kind())
		}
	}
	for _, id := range []string{"", "index", "HOME", "gallery.html"} {
		if _, ok := learnphoto.Dispatch(store, id).(learnphoto.NotFound); !ok {
			t.Errorf("%q: expected NotFound", id)
		}
	}
}

func TestPageKind(t *testing.T) {
	t.Parallel()

	files := map[learnphoto.PageKind]string{
		learnphoto.KindHome:    "index.html",
		learnphoto.KindHistory: "history.html",
		learnphoto.KindGallery: "gallery.html",
		learnphoto.KindStyles:  "styles.html",
		learnphoto.KindContact: "contact.html",
	}
	if len(learnphoto.Kinds()) != len(files) {
		t.Fatalf("expected %d kinds, got %d", len(files), len(learnphoto.Kinds()))
	}
	for _, kind := range learnphoto.Kinds() {
		parsed, ok := learnphoto.ParsePageKind(kind.ID())
		if !ok || parsed != kind {
			t.Errorf("%s: round trip through ParsePageKind failed", kind)
		}
		if got := kind.File(); got != files[kind] {
			t.Errorf("%s: expected file %q, got %q", kind, files[kind], got)
		}
		if got, ok := learnphoto.PageKindForFile(kind.File()); !ok || got != kind {
			t.Errorf("%s: expected PageKindForFile(%q) to return it, got %s", kind, kind.File(), got)
		}
	}
	for _, name := range []string{"home.html", "index", "", "workshops.html", "History.html"} {
		if kind, ok := learnphoto.PageKindForFile(name); ok {
			t.Errorf("%q: expected no page kind, got %s", name, kind)
		}
	}
}

func TestFooter_notice_format(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		footer learnphoto.Footer
		want   string
	}{
		"default": {
			footer: learnphoto.Footer{Year: 1999, SiteTitle: "Snaps"},
			want:   "© 1999 Snaps. All rights reserved.",
		},
		"custom": {
			footer: learnphoto.Footer{Year: 2030, SiteTitle: "Snaps", Format: "{site} {year}–{year}"},
			want:   "Snaps 2030–2030",
		},
		"unknown placeholder": {
			footer: learnphoto.Footer{Year: 2030, Format: "{year} {owner}"},
			want:   "2030 {owner}",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.footer.Notice(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
