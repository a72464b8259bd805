package learnphoto

import "context"

// CSSLinker is implemented by Components that need stylesheets linked from
// the document head. The collected URLs reach templates as .LinkedCSS.
type CSSLinker interface {
	LinkCSS(context.Context) []string
}

func linkedCSS(ctx context.Context, c Component) []string {
	return collectUnique(ctx, c, func(comp Component) []string {
		linker, ok := comp.(CSSLinker)
		if !ok {
			return nil
		}
		return linker.LinkCSS(ctx)
	})
}
