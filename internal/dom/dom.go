// Package dom is the small slice of HTML document manipulation the
// assembler needs, backed by golang.org/x/net/html.
package dom

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Element is a handle to an element node inside a Document.
// The zero Element is invalid.
type Element struct {
	n *html.Node
}

// Parse parses a complete HTML document. Fragments are accepted too; the
// parser wraps them in html/head/body the same way a browser would.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ElementByID returns the first element in document order whose id
// attribute equals id.
func (d *Document) ElementByID(id string) (Element, bool) {
	n := find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
	return Element{n: n}, n != nil
}

// Body returns the document's body element.
func (d *Document) Body() (Element, bool) {
	n := find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
	return Element{n: n}, n != nil
}

// CreateElement returns a new, detached element with the given tag.
func (d *Document) CreateElement(tag string) Element {
	return Element{n: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// Render serializes the whole document, doctype included.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Valid reports whether e refers to a node.
func (e Element) Valid() bool {
	return e.n != nil
}

// Tag returns the element's tag name.
func (e Element) Tag() string {
	return e.n.Data
}

// Clear removes every child of e.
func (e Element) Clear() {
	for c := e.n.FirstChild; c != nil; c = e.n.FirstChild {
		e.n.RemoveChild(c)
	}
}

// AppendChild attaches a detached element as the last child of e.
func (e Element) AppendChild(child Element) {
	e.n.AppendChild(child.n)
}

// MoveChildren detaches every child of src, in order, and appends it to e.
// src may belong to another Document. It returns the number of nodes moved.
func (e Element) MoveChildren(src Element) int {
	moved := 0
	for c := src.n.FirstChild; c != nil; c = src.n.FirstChild {
		src.n.RemoveChild(c)
		e.n.AppendChild(c)
		moved++
	}
	return moved
}

// ChildCount returns the number of direct children, text nodes included.
func (e Element) ChildCount() int {
	n := 0
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		n++
	}
	return n
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
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
