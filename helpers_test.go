package learnphoto_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"impractical.co/learnphoto"
	"impractical.co/learnphoto/content"
	"impractical.co/learnphoto/dom"
)

var fixedTime = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

func newTestSite() *learnphoto.PhotoSite {
	site := learnphoto.NewPhotoSite(content.Default())
	site.Clock = func() time.Time { return fixedTime }
	return site
}

func renderDocument(t *testing.T, doc *dom.Document) string {
	t.Helper()

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		t.Fatalf("error rendering document: %s", err)
	}
	return buf.String()
}

func buildDocument(t *testing.T, site *learnphoto.PhotoSite, id string) *dom.Document {
	t.Helper()

	doc, err := learnphoto.BuildDocument(context.Background(), site, id)
	if err != nil {
		t.Fatalf("error building %q: %s", id, err)
	}
	return doc
}

// findAll parses markup and returns every element named tag, in document
// order. If class is set, only elements with that class are returned.
func findAll(t *testing.T, markup, tag, class string) []*html.Node {
	t.Helper()

	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("error parsing markup: %s", err)
	}
	var results []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			if class == "" || hasClass(n, class) {
				results = append(results, n)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return results
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
