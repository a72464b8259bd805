package learnphoto

import (
	"context"
	"html/template"
	"io/fs"
	"sync"
)

// Site supplies the templates Renderables are parsed from.
type Site interface {
	// TemplateDir holds every template any Renderable on the Site lists
	// in Templates.
	TemplateDir(ctx context.Context) fs.FS
}

// TemplateCacher is implemented by Sites that keep parsed templates between
// renders, keyed by Renderable.Key. Only parsed templates are kept, never
// output.
type TemplateCacher interface {
	// GetCachedTemplate returns nil when nothing is cached for key.
	GetCachedTemplate(ctx context.Context, key string) *template.Template
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

// ServerErrorPager is implemented by Sites that have a page to show when
// Render fails.
type ServerErrorPager interface {
	ServerErrorPage(ctx context.Context) Renderable
}

var (
	_ Site           = &CachedSite{}
	_ TemplateCacher = &CachedSite{}
)

// CachedSite is a Site that parses each Renderable's templates once and
// reuses them. It's meant to be embedded; PhotoSite does. Use NewCachedSite
// to create one. It's safe for concurrent use.
type CachedSite struct {
	templateDir fs.FS
	templates   sync.Map // string -> *template.Template
}

// NewCachedSite returns a CachedSite reading templates from templates.
func NewCachedSite(templates fs.FS) *CachedSite {
	return &CachedSite{templateDir: templates}
}

// GetCachedTemplate fulfills TemplateCacher.
func (s *CachedSite) GetCachedTemplate(_ context.Context, key string) *template.Template {
	tmpl, ok := s.templates.Load(key)
	if !ok {
		return nil
	}
	return tmpl.(*template.Template)
}

// SetCachedTemplate fulfills TemplateCacher.
func (s *CachedSite) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	s.templates.Store(key, tmpl)
}

// TemplateDir returns the fs.FS passed to NewCachedSite.
func (s *CachedSite) TemplateDir(_ context.Context) fs.FS {
	return s.templateDir
}
