package cmdlib

import "context"

// ManSection is one heading-delimited section of a rendered manual page,
// still in HTML form.
type ManSection struct {
	Title string
	HTML  string
}

// SectionParser splits rendered man-page HTML into its sections.
type SectionParser interface {
	// Parse returns the page's sections in document order.
	// Returns EINVALID if the input contains no recognizable sections.
	Parse(html string) ([]ManSection, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// PageFetcher retrieves raw HTML from URLs. Man pages are statically
// rendered, so implementations need no browser automation.
type PageFetcher interface {
	// Fetch downloads the page body. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// HostLimiter rate-limits outbound requests per host.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	Wait(ctx context.Context, host string) error
}
