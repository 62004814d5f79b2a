package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File     string        `arg:"" help:"Path to the feed-list XML file."`
	Strategy string        `arg:"" help:"Crawl strategy: single, multi or pool."`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per request."`
	RPS      float64       `default:"4" help:"Per-site request rate limit."`
	Verbose  bool          `short:"v" help:"Enable debug logging."`
}
