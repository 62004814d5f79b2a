package rsearch

import "context"

// Feed identifies a remote syndication feed referenced by the feed list.
type Feed struct {
	URL   string
	Title string
}

// Item is a single entry of a remote feed document, pointing at an article.
type Item struct {
	Link  string
	Title string
}

// FeedService reads syndication documents.
// Implementations hide the document format and the transport; the crawl
// layer only sees (url, title) pairs.
type FeedService interface {
	// ParseFile reads a local feed-list document and returns the feeds
	// it references. Entries missing a link or title are excluded.
	ParseFile(path string) ([]Feed, error)

	// Fetch retrieves a remote feed document and returns its items.
	// Entries missing a link or title are excluded.
	Fetch(ctx context.Context, url string) ([]Item, error)
}

// SiteLimiter provides per-site request rate limiting.
type SiteLimiter interface {
	// Wait blocks until the rate limit allows a request to the site.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, site string) error
}
