// Package mets provides read access to a parsed METS document: loading the
// XML file into a tree and querying it with namespace-qualified paths.
package mets

import (
	"fmt"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Namespaces maps the prefixes used in path expressions to the URIs the
// institutional METS profile requires on the root element. Some prefixes are
// declared but unused by the documents themselves; the profile requires them
// regardless. The dc URI carries no trailing slash in this profile.
var Namespaces = map[string]string{
	"mets":  "http://www.loc.gov/METS/",
	"dc":    "http://purl.org/dc/elements/1.1",
	"aes":   "http://www.aes.org/audioObject",
	"ph":    "http://www.aes.org/processhistory",
	"mods":  "http://www.loc.gov/mods/v3",
	"xlink": "http://www.w3.org/1999/xlink",
}

// Document is a parsed METS file. It is created once per item and never
// mutated.
type Document struct {
	Path string
	root *xmlquery.Node
}

// Parse reads and parses the METS file at path.
func Parse(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mets: %w", err)
	}
	defer f.Close()

	root, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing mets: %w", err)
	}
	return &Document{Path: path, root: root}, nil
}

// compile turns a path expression into a compiled selector bound to the
// profile namespaces. Expressions are fixed strings in the rule definitions,
// so a compile failure is a programming error.
func compile(expr string) *xpath.Expr {
	e, err := xpath.CompileWithNS(expr, Namespaces)
	if err != nil {
		panic(fmt.Sprintf("mets: bad path expression %q: %v", expr, err))
	}
	return e
}

// Query returns all elements matching the absolute path expression.
func (d *Document) Query(expr string) []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(d.root, compile(expr))
}

// Query returns all elements matching expr relative to n.
func Query(n *xmlquery.Node, expr string) []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(n, compile(expr))
}

// QueryOne returns the first element matching expr relative to n, or nil.
func QueryOne(n *xmlquery.Node, expr string) *xmlquery.Node {
	return xmlquery.QuerySelector(n, compile(expr))
}

// Text returns the concatenated character data of n.
func Text(n *xmlquery.Node) string {
	return n.InnerText()
}

// TagName returns the element name as written in the document, prefix
// included.
func TagName(n *xmlquery.Node) string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Data
	}
	return n.Data
}

// Attr returns the value of the named (unprefixed) attribute and whether it
// is present on the element.
func Attr(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// NamespaceMap returns the prefix to URI namespace declarations made on the
// element itself. The default namespace, if declared, appears under the
// empty prefix.
func NamespaceMap(n *xmlquery.Node) map[string]string {
	m := make(map[string]string)
	for _, a := range n.Attr {
		switch {
		case a.Name.Space == "xmlns":
			m[a.Name.Local] = a.Value
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			m[""] = a.Value
		}
	}
	return m
}
