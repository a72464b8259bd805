// Package dom wraps a parsed HTML document so that rendered fragments can be
// injected into its mount points.
//
// A mount point is any element with an id. Mounting replaces all of its
// children with the parsed fragment, so mounting the same fragment twice
// leaves the document unchanged.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoElement is returned when no element has the requested id.
var ErrNoElement = errors.New("no element with that id")

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse parses a complete HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing document: %w", err)
	}
	return &Document{root: root}, nil
}

// PageID returns the id attribute of the document's <body>, or an empty
// string if the body has no id.
func (d *Document) PageID() string {
	body := findElement(d.root, func(n *html.Node) bool {
		return n.DataAtom == atom.Body
	})
	if body == nil {
		return ""
	}
	return attr(body, "id")
}

// Has reports whether an element with the passed id exists.
func (d *Document) Has(id string) bool {
	return d.byID(id) != nil
}

// Mount replaces the children of the element with the passed id with the
// nodes parsed from fragment. It returns false, and does nothing, if there is
// no such element.
func (d *Document) Mount(id, fragment string) (bool, error) {
	target := d.byID(id)
	if target == nil {
		return false, nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), target)
	if err != nil {
		return true, fmt.Errorf("error parsing fragment for #%s: %w", id, err)
	}
	for child := target.FirstChild; child != nil; child = target.FirstChild {
		target.RemoveChild(child)
	}
	for _, node := range nodes {
		target.AppendChild(node)
	}
	return true, nil
}

// InnerHTML serializes the children of the element with the passed id. It
// returns ErrNoElement if there is no such element.
func (d *Document) InnerHTML(id string) (string, error) {
	target := d.byID(id)
	if target == nil {
		return "", fmt.Errorf("#%s: %w", id, ErrNoElement)
	}
	var buf bytes.Buffer
	for child := target.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return "", fmt.Errorf("error rendering #%s: %w", id, err)
		}
	}
	return buf.String(), nil
}

// Render writes the whole document to w.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("error rendering document: %w", err)
	}
	return nil
}

func (d *Document) byID(id string) *html.Node {
	if id == "" {
		return nil
	}
	return findElement(d.root, func(n *html.Node) bool {
		return attr(n, "id") == id
	})
}

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
