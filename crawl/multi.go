package crawl

import (
	"context"

	"github.com/fwojciec/rsearch"
	"golang.org/x/sync/errgroup"
)

// runMulti spawns one goroutine per feed and one per article. Goroutine
// count is unbounded at spawn time; each goroutine blocks on the admission
// controller before doing real work, so in-flight work stays within the
// tier caps.
//
// A feed goroutine acquires the feed tier, then the total tier, and holds
// both until all of its article goroutines have joined. An article
// goroutine acquires its site tier, then the total tier. The total tier is
// incremented strictly after the specific tier in every path; under heavy
// contention this can queue up a burst of specific-tier work before total
// admission is checked, which violates no per-tier cap and is kept as is.
func (c *Crawler) runMulti(ctx context.Context, feeds []rsearch.Feed, acc *Accumulator, dedupe *Deduper) {
	adm := NewAdmission(c.MaxFeeds, c.MaxPerSite, c.MaxTotal)

	var g errgroup.Group
	for _, feed := range feeds {
		feed := feed
		g.Go(func() error {
			adm.AcquireFeed()
			adm.AcquireTotal()
			defer func() {
				adm.ReleaseTotal()
				adm.ReleaseFeed()
			}()

			jobs := c.processFeed(ctx, feed, dedupe)

			var articles errgroup.Group
			for _, job := range jobs {
				job := job
				articles.Go(func() error {
					adm.AcquireSite(job.site)
					adm.AcquireTotal()
					defer func() {
						adm.ReleaseTotal()
						adm.ReleaseSite(job.site)
					}()

					c.processArticle(ctx, job, acc)
					return nil
				})
			}
			return articles.Wait()
		})
	}
	_ = g.Wait()
}
