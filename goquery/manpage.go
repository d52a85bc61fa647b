// Package goquery parses rendered manual-page HTML into sections using
// CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

// Ensure ManPageParser implements cmdlib.SectionParser at compile time.
var _ cmdlib.SectionParser = (*ManPageParser)(nil)

// ManPageParser splits man-page HTML into heading-delimited sections.
// Rendered man pages (man7.org, die.net, mandoc output) mark section
// headings like NAME, SYNOPSIS and OPTIONS with h2 elements.
type ManPageParser struct{}

// NewManPageParser creates a new ManPageParser.
func NewManPageParser() *ManPageParser {
	return &ManPageParser{}
}

// Parse returns the page's sections in document order. The section body is
// everything between a heading and the next one, still as HTML.
func (p *ManPageParser) Parse(html string) ([]cmdlib.ManSection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cmdlib.Errorf(cmdlib.EINVALID, "failed to parse HTML: %v", err)
	}

	var sections []cmdlib.ManSection
	doc.Find("h2").Each(func(_ int, heading *goquery.Selection) {
		title := normalizeTitle(heading.Text())
		if title == "" {
			return
		}

		var body strings.Builder
		heading.NextUntil("h2").Each(func(_ int, sel *goquery.Selection) {
			if fragment, err := goquery.OuterHtml(sel); err == nil {
				body.WriteString(fragment)
			}
		})

		sections = append(sections, cmdlib.ManSection{
			Title: title,
			HTML:  body.String(),
		})
	})

	if len(sections) == 0 {
		return nil, cmdlib.Errorf(cmdlib.EINVALID, "no sections found in man page HTML")
	}

	return sections, nil
}

// normalizeTitle strips anchor glyphs and whitespace and uppercases the
// heading. Rendered pages often append a paragraph-link marker to headings.
func normalizeTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, " ¶#")
	return strings.ToUpper(strings.TrimSpace(s))
}
