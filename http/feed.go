// Package http provides HTTP-backed implementations of the rsearch feed
// and article services.
package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/rsearch"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure FeedService implements rsearch.FeedService at compile time.
var _ rsearch.FeedService = (*FeedService)(nil)

// FeedService reads RSS 2.0 documents: the local feed list from disk and
// remote feed documents over HTTP.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a FeedService with the given HTTP client.
// If client is nil, a client with DefaultFetchTimeout is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &FeedService{client: client}
}

// ParseFile reads the local feed-list document and returns the feeds its
// items reference. Items missing a link or title are excluded.
func (s *FeedService) ParseFile(path string) ([]rsearch.Feed, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("read feed list %s: %w", path, err)
	}

	items, err := channelItems(doc)
	if err != nil {
		return nil, fmt.Errorf("parse feed list %s: %w", path, err)
	}

	feeds := make([]rsearch.Feed, 0, len(items))
	for _, item := range items {
		feeds = append(feeds, rsearch.Feed{URL: item.Link, Title: item.Title})
	}
	return feeds, nil
}

// Fetch retrieves a remote feed document and returns its items.
// Items missing a link or title are excluded.
func (s *FeedService) Fetch(ctx context.Context, url string) ([]rsearch.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", url, err)
	}

	return channelItems(doc)
}

// channelItems extracts the <item> entries of an RSS <channel>.
func channelItems(doc *etree.Document) ([]rsearch.Item, error) {
	root := doc.Root()
	if root == nil {
		return nil, rsearch.Errorf(rsearch.EINVALID, "empty feed document")
	}

	channel := root.SelectElement("channel")
	if channel == nil {
		return nil, rsearch.Errorf(rsearch.EINVALID, "feed document has no channel")
	}

	var items []rsearch.Item
	for _, el := range channel.SelectElements("item") {
		link := childText(el, "link")
		title := childText(el, "title")
		if link == "" || title == "" {
			continue
		}
		items = append(items, rsearch.Item{Link: link, Title: title})
	}
	return items, nil
}

// childText returns the trimmed text of a named child element, or "".
func childText(el *etree.Element, name string) string {
	child := el.SelectElement(name)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
