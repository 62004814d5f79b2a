package rsearch

import (
	"context"
	"net/url"
)

// Article identifies an indexed article. It is used as a map key in the
// search index, so equality is by the (Title, URL) pair.
type Article struct {
	Title string
	URL   string
}

// WordCounts maps a case-folded word to its occurrence count within a
// single article. A WordCounts value is owned exclusively by the worker
// that produced it until it is merged into the shared accumulator.
type WordCounts map[string]int

// ArticleFetcher retrieves an article body and tokenizes it into word counts.
// Implementations hide the transport and the text extraction.
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (WordCounts, error)
}

// Hostname extracts the host component of a URL.
// Returns ENOTFOUND if the URL has no host.
func Hostname(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q", rawURL)
	}
	host := u.Hostname()
	if host == "" {
		return "", Errorf(ENOTFOUND, "no hostname in %q", rawURL)
	}
	return host, nil
}
