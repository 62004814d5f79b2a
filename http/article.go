package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rsearch"
)

// Ensure ArticleFetcher implements rsearch.ArticleFetcher at compile time.
var _ rsearch.ArticleFetcher = (*ArticleFetcher)(nil)

// ArticleFetcher retrieves article bodies over HTTP and tokenizes their
// visible text into word counts. HTML bodies are stripped of markup and
// script/style content; anything that does not parse as HTML is tokenized
// as is.
type ArticleFetcher struct {
	client    *http.Client
	tokenizer rsearch.Tokenizer
	logger    *slog.Logger
}

// NewArticleFetcher creates an ArticleFetcher. If client is nil, a client
// with DefaultFetchTimeout is used. Nil logger discards debug output.
func NewArticleFetcher(client *http.Client, tokenizer rsearch.Tokenizer, logger *slog.Logger) *ArticleFetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ArticleFetcher{client: client, tokenizer: tokenizer, logger: logger}
}

// Fetch retrieves the article at url and returns its word counts.
func (f *ArticleFetcher) Fetch(ctx context.Context, url string) (rsearch.WordCounts, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("article fetched",
		"url", url,
		"bytes", len(body),
		"hash", fmt.Sprintf("%016x", xxhash.Sum64(body)),
	)

	return f.tokenizer.Tokenize(extractText(body)), nil
}

// extractText returns the visible text of an HTML document. Script, style
// and noscript content is dropped. Falls back to the raw body when the
// document cannot be parsed.
func extractText(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return string(body)
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text()
}
