// Package goquery implements the seoaudit.Auditor using goquery-based
// HTML parsing and one signal extractor per audit category.
package goquery

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Subtrees skipped when deriving visible text.
var excludedTextTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
}

// Document wraps a parsed HTML tree with the queries the signal
// extractors need. The tree is read-only after parsing: extractors
// never mutate it, so one Document can serve concurrent extraction.
type Document struct {
	doc     *goquery.Document
	rawSize int
}

// Parse wraps raw HTML into a navigable Document. It never fails:
// malformed markup, missing head/body or empty input yield a tree that
// simply lacks the corresponding nodes.
func Parse(rawHTML string) *Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return &Document{doc: doc, rawSize: len(rawHTML)}
}

// Find exposes goquery selection on the underlying tree.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// RawSize returns the byte length of the original HTML.
func (d *Document) RawSize() int {
	return d.rawSize
}

// MetaContent returns the content of the first <meta> whose name
// attribute matches (case-insensitively).
func (d *Document) MetaContent(name string) (string, bool) {
	return d.metaAttr("name", name)
}

// MetaProperty returns the content of the first <meta> whose property
// attribute matches (case-insensitively). Used for Open Graph and
// article metadata.
func (d *Document) MetaProperty(property string) (string, bool) {
	return d.metaAttr("property", property)
}

func (d *Document) metaAttr(attr, want string) (string, bool) {
	content := ""
	found := false
	d.doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr(attr)
		if !ok || !strings.EqualFold(strings.TrimSpace(v), want) {
			return true
		}
		c, _ := s.Attr("content")
		content = strings.TrimSpace(c)
		found = true
		return false
	})
	return content, found
}

// Charset returns the declared character set from <meta charset> or a
// legacy http-equiv content-type declaration.
func (d *Document) Charset() string {
	if v, ok := d.doc.Find("meta[charset]").Attr("charset"); ok {
		return strings.TrimSpace(v)
	}

	charset := ""
	d.doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		equiv, _ := s.Attr("http-equiv")
		if !strings.EqualFold(equiv, "content-type") {
			return true
		}
		content, _ := s.Attr("content")
		if i := strings.Index(strings.ToLower(content), "charset="); i >= 0 {
			charset = strings.TrimSpace(content[i+len("charset="):])
			return false
		}
		return true
	})
	return charset
}

// VisibleText returns the document's body text with script, style,
// noscript, iframe and svg subtrees excluded, entities decoded and
// whitespace collapsed to single spaces. The traversal skips excluded
// subtrees instead of removing them, leaving the tree untouched.
func (d *Document) VisibleText() string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && excludedTextTags[strings.ToLower(n.Data)] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	body := d.doc.Find("body")
	for _, n := range body.Nodes {
		walk(n)
	}
	return collapseWhitespace(sb.String())
}

// NodeCount returns the number of element nodes in the tree.
func (d *Document) NodeCount() int {
	count := 0

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range d.doc.Nodes {
		walk(n)
	}
	return count
}

// collapseWhitespace trims and collapses whitespace runs to single
// spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
