package crawl

import (
	"context"

	"github.com/fwojciec/rsearch"
)

// runPool bounds concurrency with two fixed-size pools: feed jobs run on
// the feed pool, and every feed job submits its article jobs into one
// article pool shared across all feeds. Shutting down the feed pool first
// guarantees all article submissions have happened before the article
// pool drains.
func (c *Crawler) runPool(ctx context.Context, feeds []rsearch.Feed, acc *Accumulator, dedupe *Deduper) {
	feedPool := NewPool(c.feedPoolSize())
	articlePool := NewPool(c.articlePoolSize())
	logger := c.logger()

	for _, feed := range feeds {
		feed := feed
		err := feedPool.Submit(func() {
			for _, job := range c.processFeed(ctx, feed, dedupe) {
				job := job
				if err := articlePool.Submit(func() {
					c.processArticle(ctx, job, acc)
				}); err != nil {
					logger.Error("article submit rejected", "url", job.url, "error", err)
				}
			}
		})
		if err != nil {
			logger.Error("feed submit rejected", "url", feed.URL, "error", err)
		}
	}

	feedPool.Shutdown()
	articlePool.Shutdown()
}

func (c *Crawler) feedPoolSize() int {
	if c.FeedPoolSize > 0 {
		return c.FeedPoolSize
	}
	return DefaultFeedPoolSize
}

func (c *Crawler) articlePoolSize() int {
	if c.ArticlePoolSize > 0 {
		return c.ArticlePoolSize
	}
	return DefaultArticlePoolSize
}
