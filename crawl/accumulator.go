package crawl

import (
	"sync"

	"github.com/fwojciec/rsearch"
)

// Accumulator collects per-article word counts from concurrent workers.
// It exists for the lifetime of one crawl: workers merge contributions in
// under its lock, and exactly one finalization pass converts it into the
// immutable search index after all workers have joined.
type Accumulator struct {
	mu        sync.Mutex
	articles  map[rsearch.Article]rsearch.WordCounts
	sites     map[string]int
	finalized bool
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		articles: make(map[rsearch.Article]rsearch.WordCounts),
		sites:    make(map[string]int),
	}
}

// Add merges one article's word counts into the running totals. The merge
// happens entirely under the accumulator's lock, so no caller ever
// observes a partially merged contribution. Returns EINTERNAL if called
// after Finalize.
func (a *Accumulator) Add(site, title, url string, words rsearch.WordCounts) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		return rsearch.Errorf(rsearch.EINTERNAL, "accumulator already finalized")
	}

	article := rsearch.Article{Title: title, URL: url}
	counts := a.articles[article]
	if counts == nil {
		counts = make(rsearch.WordCounts, len(words))
		a.articles[article] = counts
		a.sites[site]++
	}
	for word, n := range words {
		counts[word] += n
	}
	return nil
}

// Finalize converts the accumulated contributions into a search index.
// It must be called exactly once, after every producer has returned; the
// accumulator rejects further writes afterward.
func (a *Accumulator) Finalize() rsearch.SearchIndex {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.finalized = true

	idx := make(rsearch.SearchIndex)
	for article, counts := range a.articles {
		for word, n := range counts {
			hits := idx[word]
			if hits == nil {
				hits = make(map[rsearch.Article]int)
				idx[word] = hits
			}
			hits[article] += n
		}
	}
	return idx
}

// Stats reports the number of articles and distinct sites accumulated so far.
func (a *Accumulator) Stats() (articles, sites int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.articles), len(a.sites)
}
