// Package extract implements the Extractor interface.
// It collects h1..h6 elements from a page, scanning one level at a time:
// all level-1 headings in document order, then all level-2 headings, and so on.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/headscan/core"
)

// HTMLExtractor finds heading elements in an HTML document.
type HTMLExtractor struct {
	selectorFor func(level int) string
}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{selectorFor: headingSelector}
}

func headingSelector(level int) string {
	return fmt.Sprintf("h%d", level)
}

// Extract parses src and returns its non-empty headings grouped by level.
// A document without headings yields an empty slice and no error.
func (e *HTMLExtractor) Extract(src string) ([]core.Heading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	headings := make([]core.Heading, 0)
	for level := core.MinLevel; level <= core.MaxLevel; level++ {
		raw := e.selectorFor(level)
		sel, err := cascadia.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", core.ErrInvalidSelector, raw, err)
		}

		doc.FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
			text := headingText(s)
			if text == "" {
				return
			}
			headings = append(headings, core.Heading{Level: level, Text: text})
		})
	}

	return headings, nil
}

// headingText joins every text node under the selection with a single space,
// then collapses whitespace runs and trims the ends.
func headingText(s *goquery.Selection) string {
	var parts []string
	for _, n := range s.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
