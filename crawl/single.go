package crawl

import (
	"context"

	"github.com/fwojciec/rsearch"
)

// runSingle crawls sequentially: each feed is fetched in turn, and each of
// its articles is fetched before the next feed starts. No pools, no
// admission control.
func (c *Crawler) runSingle(ctx context.Context, feeds []rsearch.Feed, acc *Accumulator, dedupe *Deduper) {
	for _, feed := range feeds {
		for _, job := range c.processFeed(ctx, feed, dedupe) {
			c.processArticle(ctx, job, acc)
		}
	}
}
