package learnphoto

import (
	"embed"
	"io/fs"
	"slices"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

//go:embed static/style.css
var stylesheet []byte

// StylesheetName is the file the embedded stylesheet is published as.
const StylesheetName = "style.css"

// Templates returns the templates every Renderable in this package uses.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Stylesheet returns the contents of the site's stylesheet.
func Stylesheet() []byte {
	return slices.Clone(stylesheet)
}
