package learnphoto

import (
	"context"
	"html/template"
)

// Component is a piece of the site that renders from one or more templates:
// the navigation bar, the footer, a page body, or the document shell.
type Component interface {
	// Templates lists the paths, or fs.Glob patterns, of every template
	// the Component needs parsed, relative to the Site's TemplateDir.
	Templates(context.Context) []string
}

// ComponentUser is implemented by Components built out of other Components.
// The templates, functions and stylesheets of every used Component are
// available whenever the user is rendered.
type ComponentUser interface {
	UseComponents(context.Context) []Component
}

// FuncMapExtender is implemented by Components and Sites that make extra
// functions available to templates. A Component's functions win over the
// Site's when both use the same name.
type FuncMapExtender interface {
	FuncMap(context.Context) template.FuncMap
}

// Renderable is a Component that can be rendered by itself, either as a
// whole document or as a fragment destined for a mount point.
type Renderable interface {
	Component

	// Key identifies the Renderable's parsed templates in a
	// TemplateCacher. Renderables with the same Key must need the same
	// templates.
	Key(context.Context) string

	// ExecutedTemplate names the template to execute once everything in
	// Templates is parsed.
	ExecutedTemplate(context.Context) string
}

// components returns c followed by every Component it uses, depth first.
// A Component reached more than once is visited each time; callers dedupe
// what they collect.
func components(ctx context.Context, c Component) []Component {
	out := []Component{c}
	user, ok := c.(ComponentUser)
	if !ok {
		return out
	}
	for _, child := range user.UseComponents(ctx) {
		out = append(out, components(ctx, child)...)
	}
	return out
}

// collectUnique calls list on c and each Component it uses, and returns
// every value in the order first seen.
func collectUnique(ctx context.Context, c Component, list func(Component) []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, comp := range components(ctx, c) {
		for _, v := range list(comp) {
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
