package learnphoto

import "context"

// Shell is a complete, empty document for one page: a <body> carrying the
// page id, and the three mount points the Injector fills.
type Shell struct {
	ID          string
	Title       string
	Stylesheets []string
}

func (Shell) Templates(_ context.Context) []string {
	return []string{"shell.html.tmpl"}
}

func (Shell) Key(_ context.Context) string {
	return "shell"
}

func (Shell) ExecutedTemplate(_ context.Context) string {
	return "shell.html.tmpl"
}

func (s Shell) LinkCSS(_ context.Context) []string {
	return s.Stylesheets
}
