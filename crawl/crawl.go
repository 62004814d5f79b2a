// Package crawl implements the concurrent feed crawl that builds the
// search index. It coordinates feed-list parsing, feed fetching, article
// fetching/tokenizing, and the merge of per-article word counts into one
// shared accumulator, bounding concurrency with either a three-tier
// admission controller or fixed-size worker pools.
package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/rsearch"
	"github.com/google/uuid"
)

// Default worker-pool sizes for the pool strategy.
const (
	DefaultFeedPoolSize    = 3
	DefaultArticlePoolSize = 20
)

// Strategy selects how crawl concurrency is bounded. The strategies differ
// only in mechanism; all of them produce identical index contents for the
// same inputs.
type Strategy string

const (
	// StrategySingle crawls sequentially with no concurrency. It serves
	// as the correctness oracle for the other two.
	StrategySingle Strategy = "single"
	// StrategyMulti spawns one goroutine per feed and per article, gated
	// by the three-tier admission controller.
	StrategyMulti Strategy = "multi"
	// StrategyPool runs feed jobs on a fixed feed pool and article jobs
	// on a fixed article pool shared across all feeds. Pool sizes bound
	// total concurrency; per-site fairness is not separately enforced.
	StrategyPool Strategy = "pool"
)

// ParseStrategy converts a CLI argument into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySingle, StrategyMulti, StrategyPool:
		return Strategy(s), nil
	}
	return "", rsearch.Errorf(rsearch.EINVALID, "unknown strategy %q", s)
}

// Crawler crawls every feed in a local feed list and aggregates article
// word counts into a search index.
type Crawler struct {
	Feeds    rsearch.FeedService
	Articles rsearch.ArticleFetcher

	// Limiter, if set, is consulted before every article fetch.
	Limiter rsearch.SiteLimiter

	// Logger receives progress lines. Nil discards them.
	Logger *slog.Logger

	// Admission caps for the multi strategy. Zero values use the defaults.
	MaxFeeds   int
	MaxPerSite int
	MaxTotal   int

	// Pool sizes for the pool strategy. Zero values use the defaults.
	FeedPoolSize    int
	ArticlePoolSize int

	// RetryDelays are the backoff delays between fetch attempts. Nil uses
	// DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration
}

// articleJob describes one article to fetch, derived from a feed item.
type articleJob struct {
	site  string
	title string
	url   string
}

// Run crawls the feed list at path using the given strategy and returns
// the finalized index. Failure to parse the feed list is fatal; any
// feed-level or article-level failure is logged and dropped without
// affecting the rest of the crawl.
func (c *Crawler) Run(ctx context.Context, path string, strategy Strategy) (rsearch.SearchIndex, error) {
	logger := c.logger()

	feeds, err := c.Feeds.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse feed list: %w", err)
	}

	run := uuid.NewString()
	logger.Info("processing feed file", "run", run, "path", path, "strategy", string(strategy), "feeds", len(feeds))

	acc := NewAccumulator()
	dedupe := NewDeduper(dedupeExpectedURLs, dedupeFalsePositiveRate)

	begin := time.Now()
	switch strategy {
	case StrategySingle:
		c.runSingle(ctx, feeds, acc, dedupe)
	case StrategyMulti:
		c.runMulti(ctx, feeds, acc, dedupe)
	case StrategyPool:
		c.runPool(ctx, feeds, acc, dedupe)
	default:
		return nil, rsearch.Errorf(rsearch.EINVALID, "unknown strategy %q", strategy)
	}

	articles, sites := acc.Stats()
	logger.Info("crawl finished", "run", run, "articles", articles, "sites", sites, "duration", time.Since(begin))

	// All jobs have joined; no concurrent writers remain.
	return acc.Finalize(), nil
}

// processFeed fetches one feed document and returns the article jobs for
// its complete items. A fetch failure, or a feed URL without a hostname,
// drops the whole feed; an incomplete item drops only that item. Articles
// already claimed by another feed are excluded.
func (c *Crawler) processFeed(ctx context.Context, feed rsearch.Feed, dedupe *Deduper) []articleJob {
	logger := c.logger()
	logger.Info("processing feed", "title", feed.Title, "url", feed.URL)

	items, err := fetchWithRetry(ctx, c.retryDelays(), func() ([]rsearch.Item, error) {
		return c.Feeds.Fetch(ctx, feed.URL)
	})
	if err != nil {
		logger.Warn("skipping feed", "title", feed.Title, "url", feed.URL, "error", err)
		return nil
	}

	// The site is the hostname of the feed, shared by all its articles.
	site, err := rsearch.Hostname(feed.URL)
	if err != nil {
		logger.Warn("skipping feed", "title", feed.Title, "url", feed.URL, "error", err)
		return nil
	}

	jobs := make([]articleJob, 0, len(items))
	for _, item := range items {
		if item.Link == "" || item.Title == "" {
			continue
		}
		if !dedupe.Claim(item.Link) {
			logger.Debug("duplicate article", "url", item.Link)
			continue
		}
		jobs = append(jobs, articleJob{site: site, title: item.Title, url: item.Link})
	}
	return jobs
}

// processArticle fetches and tokenizes one article and merges its word
// counts into the accumulator. Failures are logged and dropped.
func (c *Crawler) processArticle(ctx context.Context, job articleJob, acc *Accumulator) {
	logger := c.logger()
	logger.Info("processing article", "title", job.title, "url", job.url)

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, job.site); err != nil {
			logger.Warn("skipping article", "title", job.title, "url", job.url, "error", err)
			return
		}
	}

	words, err := fetchWithRetry(ctx, c.retryDelays(), func() (rsearch.WordCounts, error) {
		return c.Articles.Fetch(ctx, job.url)
	})
	if err != nil {
		logger.Warn("skipping article", "title", job.title, "url", job.url, "error", err)
		return
	}

	if err := acc.Add(job.site, job.title, job.url, words); err != nil {
		logger.Error("dropping contribution", "title", job.title, "url", job.url, "error", err)
	}
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (c *Crawler) retryDelays() []time.Duration {
	if c.RetryDelays != nil {
		return c.RetryDelays
	}
	return DefaultRetryDelays()
}
