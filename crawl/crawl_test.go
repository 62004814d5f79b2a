package crawl_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/rsearch"
	"github.com/fwojciec/rsearch/crawl"
	"github.com/fwojciec/rsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCrawler wires a Crawler over canned feed and article data.
// Retries are disabled so failing fetches do not slow the tests down.
func newTestCrawler(
	feeds []rsearch.Feed,
	items map[string][]rsearch.Item,
	words map[string]rsearch.WordCounts,
) *crawl.Crawler {
	return &crawl.Crawler{
		Feeds: &mock.FeedService{
			ParseFileFn: func(path string) ([]rsearch.Feed, error) {
				return feeds, nil
			},
			FetchFn: func(ctx context.Context, url string) ([]rsearch.Item, error) {
				fetched, ok := items[url]
				if !ok {
					return nil, fmt.Errorf("HTTP 404 for %s", url)
				}
				return fetched, nil
			},
		},
		Articles: &mock.ArticleFetcher{
			FetchFn: func(ctx context.Context, url string) (rsearch.WordCounts, error) {
				counts, ok := words[url]
				if !ok {
					return nil, fmt.Errorf("HTTP 404 for %s", url)
				}
				return counts, nil
			},
		},
		RetryDelays: []time.Duration{},
	}
}

// electionFixture wires two feeds and five articles, with "election"
// appearing in two of them, counts 3 and 1.
func electionFixture() (*crawl.Crawler, rsearch.SearchIndex) {
	feeds := []rsearch.Feed{
		{URL: "https://a.example.com/feed.xml", Title: "Feed A"},
		{URL: "https://b.example.net/feed.xml", Title: "Feed B"},
	}
	items := map[string][]rsearch.Item{
		"https://a.example.com/feed.xml": {
			{Link: "https://a.example.com/1", Title: "Runoff Looms"},
			{Link: "https://a.example.com/2", Title: "Budget Passes"},
			{Link: "https://a.example.com/3", Title: "Weather Alert"},
		},
		"https://b.example.net/feed.xml": {
			{Link: "https://b.example.net/1", Title: "Ballot Counted"},
			{Link: "https://b.example.net/2", Title: "Sports Recap"},
		},
	}
	words := map[string]rsearch.WordCounts{
		"https://a.example.com/1": {"election": 3, "runoff": 2},
		"https://a.example.com/2": {"budget": 4},
		"https://a.example.com/3": {"storm": 1},
		"https://b.example.net/1": {"election": 1, "ballot": 5},
		"https://b.example.net/2": {"score": 2},
	}

	runoff := rsearch.Article{Title: "Runoff Looms", URL: "https://a.example.com/1"}
	budget := rsearch.Article{Title: "Budget Passes", URL: "https://a.example.com/2"}
	storm := rsearch.Article{Title: "Weather Alert", URL: "https://a.example.com/3"}
	ballot := rsearch.Article{Title: "Ballot Counted", URL: "https://b.example.net/1"}
	sports := rsearch.Article{Title: "Sports Recap", URL: "https://b.example.net/2"}

	want := rsearch.SearchIndex{
		"election": {runoff: 3, ballot: 1},
		"runoff":   {runoff: 2},
		"budget":   {budget: 4},
		"storm":    {storm: 1},
		"ballot":   {ballot: 5},
		"score":    {sports: 2},
	}

	return newTestCrawler(feeds, items, words), want
}

func TestCrawler_strategies_produce_identical_indexes(t *testing.T) {
	t.Parallel()

	for _, strategy := range []crawl.Strategy{
		crawl.StrategySingle,
		crawl.StrategyMulti,
		crawl.StrategyPool,
	} {
		strategy := strategy
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			c, want := electionFixture()

			index, err := c.Run(context.Background(), "feeds.xml", strategy)

			require.NoError(t, err)
			assert.Equal(t, want, index)
		})
	}
}

func TestCrawler_election_query_matches_expected_order(t *testing.T) {
	t.Parallel()

	c, _ := electionFixture()

	index, err := c.Run(context.Background(), "feeds.xml", crawl.StrategySingle)
	require.NoError(t, err)

	matches := index.Lookup("election")

	require.Len(t, matches, 2)
	assert.Equal(t, "Runoff Looms", matches[0].Article.Title)
	assert.Equal(t, 3, matches[0].Hits)
	assert.Equal(t, "Ballot Counted", matches[1].Article.Title)
	assert.Equal(t, 1, matches[1].Hits)
}

func TestCrawler_unreadable_feed_list_is_fatal(t *testing.T) {
	t.Parallel()

	c := &crawl.Crawler{
		Feeds: &mock.FeedService{
			ParseFileFn: func(path string) ([]rsearch.Feed, error) {
				return nil, fmt.Errorf("open %s: no such file", path)
			},
		},
		Articles:    &mock.ArticleFetcher{},
		RetryDelays: []time.Duration{},
	}

	_, err := c.Run(context.Background(), "missing.xml", crawl.StrategySingle)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse feed list")
}

func TestCrawler_unknown_strategy_is_rejected(t *testing.T) {
	t.Parallel()

	c, _ := electionFixture()

	_, err := c.Run(context.Background(), "feeds.xml", crawl.Strategy("turbo"))

	require.Error(t, err)
	assert.Equal(t, rsearch.EINVALID, rsearch.ErrorCode(err))
}

func TestCrawler_incomplete_items_are_skipped(t *testing.T) {
	t.Parallel()

	feeds := []rsearch.Feed{{URL: "https://a.example.com/feed.xml", Title: "Feed A"}}
	items := map[string][]rsearch.Item{
		"https://a.example.com/feed.xml": {
			{Link: "", Title: "No Link"},
			{Link: "https://a.example.com/1", Title: ""},
			{Link: "https://a.example.com/2", Title: "Kept"},
		},
	}
	words := map[string]rsearch.WordCounts{
		"https://a.example.com/2": {"kept": 1},
	}

	c := newTestCrawler(feeds, items, words)

	index, err := c.Run(context.Background(), "feeds.xml", crawl.StrategySingle)

	require.NoError(t, err)
	kept := rsearch.Article{Title: "Kept", URL: "https://a.example.com/2"}
	assert.Equal(t, rsearch.SearchIndex{"kept": {kept: 1}}, index)
}

func TestCrawler_feed_without_hostname_contributes_nothing(t *testing.T) {
	t.Parallel()

	feeds := []rsearch.Feed{{URL: "feed.xml", Title: "Relative"}}
	items := map[string][]rsearch.Item{
		"feed.xml": {{Link: "https://a.example.com/1", Title: "Orphan"}},
	}
	words := map[string]rsearch.WordCounts{
		"https://a.example.com/1": {"orphan": 1},
	}

	c := newTestCrawler(feeds, items, words)

	index, err := c.Run(context.Background(), "feeds.xml", crawl.StrategySingle)

	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestCrawler_failed_fetches_do_not_abort_the_crawl(t *testing.T) {
	t.Parallel()

	feeds := []rsearch.Feed{
		{URL: "https://down.example.org/feed.xml", Title: "Down"},
		{URL: "https://a.example.com/feed.xml", Title: "Feed A"},
	}
	items := map[string][]rsearch.Item{
		// down.example.org is absent: its feed fetch fails.
		"https://a.example.com/feed.xml": {
			{Link: "https://a.example.com/broken", Title: "Broken"},
			{Link: "https://a.example.com/ok", Title: "OK"},
		},
	}
	words := map[string]rsearch.WordCounts{
		// a.example.com/broken is absent: its article fetch fails.
		"https://a.example.com/ok": {"ok": 2},
	}

	for _, strategy := range []crawl.Strategy{
		crawl.StrategySingle,
		crawl.StrategyMulti,
		crawl.StrategyPool,
	} {
		strategy := strategy
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			c := newTestCrawler(feeds, items, words)

			index, err := c.Run(context.Background(), "feeds.xml", strategy)

			require.NoError(t, err)
			ok := rsearch.Article{Title: "OK", URL: "https://a.example.com/ok"}
			assert.Equal(t, rsearch.SearchIndex{"ok": {ok: 2}}, index)
		})
	}
}

func TestCrawler_duplicate_article_across_feeds_counted_once(t *testing.T) {
	t.Parallel()

	shared := "https://shared.example.com/story"
	feeds := []rsearch.Feed{
		{URL: "https://a.example.com/feed.xml", Title: "Feed A"},
		{URL: "https://b.example.net/feed.xml", Title: "Feed B"},
	}
	items := map[string][]rsearch.Item{
		"https://a.example.com/feed.xml": {{Link: shared, Title: "Shared Story"}},
		"https://b.example.net/feed.xml": {{Link: shared, Title: "Shared Story"}},
	}
	words := map[string]rsearch.WordCounts{
		shared: {"story": 2},
	}

	c := newTestCrawler(feeds, items, words)

	index, err := c.Run(context.Background(), "feeds.xml", crawl.StrategySingle)

	require.NoError(t, err)
	article := rsearch.Article{Title: "Shared Story", URL: shared}
	assert.Equal(t, 2, index["story"][article], "shared article must be counted once, not twice")
}

func TestCrawler_consults_site_limiter_per_article(t *testing.T) {
	t.Parallel()

	c, _ := electionFixture()

	waited := make(chan string, 16)
	c.Limiter = &mock.SiteLimiter{
		WaitFn: func(ctx context.Context, site string) error {
			waited <- site
			return nil
		},
	}

	_, err := c.Run(context.Background(), "feeds.xml", crawl.StrategySingle)
	require.NoError(t, err)
	close(waited)

	sites := make(map[string]int)
	for site := range waited {
		sites[site]++
	}
	assert.Equal(t, map[string]int{"a.example.com": 3, "b.example.net": 2}, sites)
}
