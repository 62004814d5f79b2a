// Package rsearch provides a CLI-based search index over RSS feeds.
// It crawls a local feed list whose items point at remote feeds, fetches
// every article those feeds reference, tokenizes article bodies into word
// counts, and builds an in-memory inverted index queried interactively.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, bloom/, slog/); crawl
// orchestration lives in crawl/.
package rsearch
