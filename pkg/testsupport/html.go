package testsupport

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Document is parsed component markup queried with a small selector subset:
// `tag`, `.class`, `[attr]`, `[attr='value']` and combinations such as
// `input[type='date']` or `div.invalid-feedback`.
type Document struct {
	root *html.Node
}

// Element wraps a matched node.
type Element struct {
	node *html.Node
}

// ParseHTML parses markup or fails the test.
func ParseHTML(t *testing.T, markup []byte) *Document {
	t.Helper()
	root, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return &Document{root: root}
}

// Find returns the first element matching selector.
func (d *Document) Find(selector string) (Element, bool) {
	matches := d.FindAll(selector)
	if len(matches) == 0 {
		return Element{}, false
	}
	return matches[0], true
}

// MustFind returns the first match or fails the test.
func (d *Document) MustFind(t *testing.T, selector string) Element {
	t.Helper()
	el, ok := d.Find(selector)
	if !ok {
		t.Fatalf("no element matches %q", selector)
	}
	return el
}

// Exists reports whether any element matches selector.
func (d *Document) Exists(selector string) bool {
	_, ok := d.Find(selector)
	return ok
}

// FindAll returns every element matching selector in document order.
func (d *Document) FindAll(selector string) []Element {
	sel := parseSelector(selector)
	var out []Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && sel.matches(n) {
			out = append(out, Element{node: n})
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(d.root)
	return out
}

// Tag returns the element name.
func (e Element) Tag() string {
	if e.node == nil {
		return ""
	}
	return e.node.Data
}

// Attr returns an attribute value and whether it is present.
func (e Element) Attr(name string) (string, bool) {
	if e.node == nil {
		return "", false
	}
	for _, attr := range e.node.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// Attrs returns every attribute keyed by name.
func (e Element) Attrs() map[string]string {
	out := make(map[string]string)
	if e.node == nil {
		return out
	}
	for _, attr := range e.node.Attr {
		out[attr.Key] = attr.Val
	}
	return out
}

// HasClass reports whether the class attribute contains class.
func (e Element) HasClass(class string) bool {
	value, _ := e.Attr("class")
	for _, token := range strings.Fields(value) {
		if token == class {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content.
func (e Element) Text() string {
	if e.node == nil {
		return ""
	}
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(e.node)
	return strings.TrimSpace(builder.String())
}

type attrMatcher struct {
	name     string
	value    string
	hasValue bool
}

type selector struct {
	tag     string
	classes []string
	attrs   []attrMatcher
}

func parseSelector(raw string) selector {
	var sel selector
	raw = strings.TrimSpace(raw)
	for raw != "" {
		switch raw[0] {
		case '.':
			end := strings.IndexAny(raw[1:], ".[")
			if end < 0 {
				end = len(raw) - 1
			}
			sel.classes = append(sel.classes, raw[1:end+1])
			raw = raw[end+1:]
		case '[':
			end := strings.IndexByte(raw, ']')
			if end < 0 {
				end = len(raw)
			}
			sel.attrs = append(sel.attrs, parseAttrMatcher(raw[1:end]))
			if end >= len(raw) {
				raw = ""
			} else {
				raw = raw[end+1:]
			}
		default:
			end := strings.IndexAny(raw, ".[")
			if end < 0 {
				end = len(raw)
			}
			sel.tag = strings.ToLower(raw[:end])
			raw = raw[end:]
		}
	}
	return sel
}

func parseAttrMatcher(body string) attrMatcher {
	name, value, found := strings.Cut(body, "=")
	matcher := attrMatcher{name: strings.TrimSpace(name)}
	if found {
		matcher.hasValue = true
		matcher.value = strings.Trim(strings.TrimSpace(value), `'"`)
	}
	return matcher
}

func (s selector) matches(n *html.Node) bool {
	if s.tag != "" && n.Data != s.tag {
		return false
	}
	el := Element{node: n}
	for _, class := range s.classes {
		if !el.HasClass(class) {
			return false
		}
	}
	for _, matcher := range s.attrs {
		value, ok := el.Attr(matcher.name)
		if !ok {
			return false
		}
		if matcher.hasValue && value != matcher.value {
			return false
		}
	}
	return true
}
