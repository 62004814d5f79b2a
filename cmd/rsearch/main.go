package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rsearch/crawl"
	rshttp "github.com/fwojciec/rsearch/http"
	rslog "github.com/fwojciec/rsearch/slog"
	"github.com/fwojciec/rsearch/tokenizer"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments: it builds the search
// index by crawling the feed list, then serves interactive term lookups
// from stdin until a blank line or EOF.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rsearch"),
		kong.Description("Crawl an RSS feed list and search the articles it references"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("usage: rsearch <feed-list.xml> <single|multi|pool>")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	strategy, err := crawl.ParseStrategy(cli.Strategy)
	if err != nil {
		return err
	}

	// Wire dependencies
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	client := &http.Client{Timeout: cli.Timeout}
	tok := tokenizer.New()

	crawler := &crawl.Crawler{
		Feeds:    rslog.NewFeedService(rshttp.NewFeedService(client), logger),
		Articles: rslog.NewArticleFetcher(rshttp.NewArticleFetcher(client, tok, logger), logger),
		Limiter:  crawl.NewSiteLimiter(cli.RPS),
		Logger:   logger,
	}

	index, err := crawler.Run(ctx, cli.File, strategy)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Done building index.")

	return runQueryLoop(index, stdin, stdout)
}
