package rsearch

import (
	"sort"
	"strings"
)

// MaxMatches is the maximum number of entries presented for a single query.
const MaxMatches = 10

// SearchIndex maps a case-folded word to the articles containing it, with
// per-article hit counts. A SearchIndex is built exactly once, after the
// crawl has fully quiesced, and is never mutated afterward.
type SearchIndex map[string]map[Article]int

// Match pairs an article with its hit count for one query term.
type Match struct {
	Article Article
	Hits    int
}

// Lookup returns the articles matching term, case-folded, sorted by
// descending hit count with ties broken by ascending title. Returns nil
// when the term does not appear in any article.
func (idx SearchIndex) Lookup(term string) []Match {
	hits, ok := idx[strings.ToLower(term)]
	if !ok {
		return nil
	}

	matches := make([]Match, 0, len(hits))
	for article, n := range hits {
		matches = append(matches, Match{Article: article, Hits: n})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Hits != matches[j].Hits {
			return matches[i].Hits > matches[j].Hits
		}
		return matches[i].Article.Title < matches[j].Article.Title
	})
	return matches
}

// Words returns the number of distinct words in the index.
func (idx SearchIndex) Words() int {
	return len(idx)
}

// Articles returns the number of distinct articles in the index.
func (idx SearchIndex) Articles() int {
	seen := make(map[Article]struct{})
	for _, hits := range idx {
		for article := range hits {
			seen[article] = struct{}{}
		}
	}
	return len(seen)
}
