// ABOUTME: HTML utilities for turning feed markup into plain text
// ABOUTME: Uses goquery so entities, scripts and nested markup are handled by a real parser

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment with whitespace collapsed
func StripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	if !strings.ContainsAny(fragment, "<&") {
		return CollapseWhitespace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return CollapseWhitespace(fragment)
	}
	doc.Find("script, style, noscript").Remove()

	return CollapseWhitespace(doc.Text())
}

// FirstImage returns the src of the first <img> in an HTML fragment
func FirstImage(fragment string) string {
	if !strings.Contains(fragment, "<img") && !strings.Contains(fragment, "<IMG") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}

// CollapseWhitespace trims the string and folds runs of whitespace into one space
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
