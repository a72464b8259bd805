package learnphoto

import "context"

// NavLink is one entry in the navigation bar.
type NavLink struct {
	Label string
	File  string
}

// NavBar is the navigation shared by every page: a brand link back to the
// home page and one link per PageKind. It doesn't depend on which page is
// being shown, so its markup is identical everywhere.
type NavBar struct {
	Brand    string
	HomeFile string
	Links    []NavLink
}

// NewNavBar builds the NavBar for a site titled brand.
func NewNavBar(brand string) NavBar {
	nav := NavBar{
		Brand:    brand,
		HomeFile: KindHome.File(),
	}
	for _, kind := range Kinds() {
		nav.Links = append(nav.Links, NavLink{Label: kind.Label(), File: kind.File()})
	}
	return nav
}

func (NavBar) Templates(_ context.Context) []string {
	return []string{"nav.html.tmpl"}
}

func (NavBar) Key(_ context.Context) string {
	return "nav"
}

func (NavBar) ExecutedTemplate(_ context.Context) string {
	return "nav.html.tmpl"
}
