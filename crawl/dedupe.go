package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/rsearch/bloom"
)

// Deduper sizing.
const (
	// dedupeExpectedURLs is the expected number of article URLs for Bloom
	// filter sizing.
	dedupeExpectedURLs = 10000
	// dedupeFalsePositiveRate is the acceptable false positive rate.
	dedupeFalsePositiveRate = 0.01
)

// Deduper tracks article URLs already claimed for fetching, so an article
// linked from more than one feed is fetched and counted once.
// It is safe for concurrent use by multiple goroutines.
type Deduper struct {
	mu   sync.Mutex
	seen *bloom.Filter
}

// NewDeduper creates a Deduper sized for n expected URLs with the given
// false positive rate.
func NewDeduper(n uint, fpRate float64) *Deduper {
	return &Deduper{seen: bloom.NewFilter(n, fpRate)}
}

// Claim records the URL and reports whether the caller is the first to
// claim it. URL fragments are stripped first - URLs differing only by
// fragment are considered duplicates.
func (d *Deduper) Claim(rawURL string) bool {
	url := rawURL
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return !d.seen.TestAndAdd(url)
}

// Count returns the approximate number of claimed URLs.
func (d *Deduper) Count() uint {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seen.EstimatedCount()
}
