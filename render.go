package learnphoto

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"maps"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrNoTemplatePath is returned when a Renderable, including every
	// Component it uses, lists no templates.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template pattern
	// doesn't match anything in the Site's TemplateDir.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

var tracer = otel.Tracer("impractical.co/learnphoto")

// serverErrorText is written when rendering fails and the Site has no error
// page of its own.
const serverErrorText = "Server error."

// RenderData is what a Renderable's templates are executed with.
type RenderData[SiteType Site, PageType Renderable] struct {
	Site SiteType
	Page PageType

	// LinkedCSS holds the stylesheet URLs of the Renderable and every
	// Component it uses, without duplicates.
	LinkedCSS []string
}

// Render writes page to out. Nothing from a failed render reaches out;
// instead the Site's ServerErrorPage is written if it has one, or the text
// "Server error." if it doesn't. Failures are logged to the context's logger.
func Render[SiteType Site, PageType Renderable](ctx context.Context, out io.Writer, site SiteType, page PageType) {
	log := Logger(ctx)

	var buf bytes.Buffer
	err := render(ctx, &buf, site, page)
	if err != nil {
		log.ErrorContext(ctx, "error rendering page", "error", err, "page", fmt.Sprintf("%T", page))
		buf.Reset()
		if pager, ok := Site(site).(ServerErrorPager); ok {
			if err := render(ctx, &buf, site, pager.ServerErrorPage(ctx)); err != nil {
				log.ErrorContext(ctx, "error rendering server error page", "error", err)
				buf.Reset()
				buf.WriteString(serverErrorText)
			}
		} else {
			buf.WriteString(serverErrorText)
		}
	}

	if _, err := buf.WriteTo(out); err != nil {
		log.ErrorContext(ctx, "error writing rendered page", "error", err)
	}
}

// RenderFragment renders page and returns the output. Errors are returned
// as-is; there's no fallback page.
func RenderFragment[SiteType Site, PageType Renderable](ctx context.Context, site SiteType, page PageType) (string, error) {
	var buf bytes.Buffer
	if err := render(ctx, &buf, site, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func render[SiteType Site, PageType Renderable](ctx context.Context, out io.Writer, site SiteType, page PageType) (err error) {
	ctx, span := tracer.Start(ctx, "learnphoto.render", trace.WithAttributes(
		attribute.String("learnphoto.key", page.Key(ctx)),
		attribute.String("learnphoto.type", fmt.Sprintf("%T", page)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tmpl, err := templateFor(ctx, site, page)
	if err != nil {
		return err
	}

	name := page.ExecutedTemplate(ctx)
	data := RenderData[SiteType, PageType]{
		Site:      site,
		Page:      page,
		LinkedCSS: linkedCSS(ctx, page),
	}
	if err := tmpl.ExecuteTemplate(out, name, data); err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", name, page, err)
	}
	return nil
}

// templateFor returns page's parsed templates, from the Site's cache if it
// has one.
func templateFor(ctx context.Context, site Site, page Renderable) (*template.Template, error) {
	key := page.Key(ctx)
	cache, caches := site.(TemplateCacher)
	if caches {
		if tmpl := cache.GetCachedTemplate(ctx, key); tmpl != nil {
			return tmpl, nil
		}
	}

	paths := collectUnique(ctx, page, func(c Component) []string {
		return c.Templates(ctx)
	})
	if len(paths) == 0 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	tmpl, err := parseTemplates(site.TemplateDir(ctx), funcMapFor(ctx, site, page), paths)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates %v for %T: %w", paths, page, err)
	}
	Logger(ctx).DebugContext(ctx, "parsed templates", "key", key, "paths", paths)

	if caches {
		cache.SetCachedTemplate(ctx, key, tmpl)
	}
	return tmpl, nil
}

// funcMapFor merges the Site's functions with those of page and every
// Component it uses. Later Components override earlier ones.
func funcMapFor(ctx context.Context, site Site, page Component) template.FuncMap {
	funcs := template.FuncMap{}
	if ext, ok := site.(FuncMapExtender); ok {
		maps.Copy(funcs, ext.FuncMap(ctx))
	}
	for _, c := range components(ctx, page) {
		if ext, ok := c.(FuncMapExtender); ok {
			maps.Copy(funcs, ext.FuncMap(ctx))
		}
	}
	return funcs
}

// parseTemplates parses every file matched by patterns. Each template is
// named by its path within fsys.
func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns []string) (*template.Template, error) {
	root := template.New("").Funcs(funcs)
	for _, pattern := range patterns {
		files, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		for _, file := range files {
			src, err := fs.ReadFile(fsys, file)
			if err != nil {
				return nil, fmt.Errorf("error reading %q: %w", file, err)
			}
			if _, err := root.New(file).Parse(string(src)); err != nil {
				return nil, fmt.Errorf("error parsing %q: %w", file, err)
			}
		}
	}
	return root, nil
}
