package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/rsearch"
)

// runQueryLoop serves interactive term lookups against the finalized
// index. A blank line (after trimming) or EOF exits normally; a stdin
// read error is returned.
func runQueryLoop(index rsearch.SearchIndex, stdin io.Reader, stdout io.Writer) error {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprintln(stdout, "Enter a search term [or just hit <enter> to quit]: ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		}

		term := strings.TrimSpace(scanner.Text())
		if term == "" {
			return nil
		}

		printMatches(stdout, term, index.Lookup(term))
	}
}

// printMatches reports the articles matching term, at most
// rsearch.MaxMatches of them, in the order Lookup returned.
func printMatches(stdout io.Writer, term string, matches []rsearch.Match) {
	if len(matches) == 0 {
		fmt.Fprintf(stdout, "We didn't find any matches for %q. Try again.\n", term)
		return
	}

	fmt.Fprintf(stdout, "That term appears in %d articles.\n", len(matches))
	if len(matches) > rsearch.MaxMatches {
		fmt.Fprintf(stdout, "Here are the top %d of them:\n", rsearch.MaxMatches)
		matches = matches[:rsearch.MaxMatches]
	} else {
		fmt.Fprintln(stdout, "Here they are:")
	}

	for _, m := range matches {
		times := "times"
		if m.Hits == 1 {
			times = "time"
		}
		fmt.Fprintf(stdout, "%q [appears %d %s].\n", m.Article.Title, m.Hits, times)
		fmt.Fprintf(stdout, "        %q\n", m.Article.URL)
	}
}
