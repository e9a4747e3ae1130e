// Package page adapts goquery selections to the menu.Node interface.
package page

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/mensa/internal/logger"
	"github.com/jmylchreest/mensa/pkg/menu"
)

// Node wraps a goquery selection of exactly one element.
type Node struct {
	sel *goquery.Selection
}

var _ menu.Node = Node{}

// Parse reads an HTML document.
func Parse(r io.Reader) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Node{}, fmt.Errorf("failed to parse page: %w", err)
	}
	return Node{sel: doc.Selection}, nil
}

// ParseBytes reads an HTML document from raw bytes.
func ParseBytes(body []byte) (Node, error) {
	return Parse(bytes.NewReader(body))
}

// ParseString reads an HTML document from a string.
func ParseString(html string) (Node, error) {
	return Parse(strings.NewReader(html))
}

// FromSelection wraps an existing goquery selection.
func FromSelection(sel *goquery.Selection) Node {
	return Node{sel: sel}
}

// FindAll returns every descendant element with the class.
func (n Node) FindAll(class string) []menu.Node {
	if n.sel == nil {
		return nil
	}

	var nodes []menu.Node
	n.sel.Find(classSelector(class)).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, Node{sel: s})
	})
	return nodes
}

// Find returns the first descendant element with the class.
func (n Node) Find(class string) (menu.Node, bool) {
	if n.sel == nil {
		return nil, false
	}

	s := n.sel.Find(classSelector(class)).First()
	if s.Length() == 0 {
		return nil, false
	}
	return Node{sel: s}, true
}

// HTML returns the outer markup of the node. Rendering errors are logged
// and yield an empty string, which the menu parser treats as malformed.
func (n Node) HTML() string {
	if n.sel == nil || n.sel.Length() == 0 {
		return ""
	}

	html, err := goquery.OuterHtml(n.sel)
	if err != nil {
		logger.Debug("failed to render node", "error", err)
		return ""
	}
	return html
}

// Text returns the whitespace-normalized text content of the node.
func (n Node) Text() string {
	if n.sel == nil {
		return ""
	}
	return strings.Join(strings.Fields(n.sel.Text()), " ")
}

// classSelector builds a CSS class selector. Class names with characters
// that are special in selectors are matched through the attribute form.
func classSelector(class string) string {
	class = strings.TrimSpace(class)
	if strings.ContainsAny(class, ".#:[]>+~ ()\"'") {
		return fmt.Sprintf(`[class~=%q]`, class)
	}
	return "." + class
}
