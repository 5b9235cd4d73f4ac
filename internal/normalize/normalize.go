// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize cleans raw extracted text before analysis.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// hyphenBreak matches a word split by a hyphen and trailing whitespace,
	// e.g. "Anforde- rung". The word classes are Unicode-aware so umlauts
	// and sharp s survive the join. De-hyphenation must run before
	// whitespace collapsing; the pattern relies on the whitespace after
	// the hyphen.
	hyphenBreak = regexp.MustCompile(`([\p{L}\p{N}_]+)-\s+([\p{L}\p{N}_]+)`)

	// pageFooter matches German page footers such as "Seite 3 von 10".
	pageFooter = regexp.MustCompile(`(?i)Seite\s+\d+\s+von\s+\d+`)

	// whitespaceRun matches any run of whitespace, including newlines and tabs.
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Clean applies the normalization passes in order: join hyphen-broken
// words, strip page footers, collapse whitespace runs to single spaces and
// trim. It is deterministic and idempotent; empty input yields empty output.
//
// The hyphen join is a heuristic: a legitimate hyphenated compound that
// happens to break across a line is merged too, a known limitation of
// working without the original line layout.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	// A pass can expose work for an earlier one: join chains like
	// "Anfor- de- rung" need repetition, and stripping a footer lodged
	// inside a broken word ("Anforde-Seite 1 von 2 rung") leaves a fresh
	// hyphen break behind. Every pass only removes characters, so
	// repeating the full sequence until the text is stable terminates;
	// that is what makes Clean idempotent.
	text := raw
	for {
		pass := hyphenBreak.ReplaceAllString(text, "$1$2")
		pass = pageFooter.ReplaceAllString(pass, "")
		pass = whitespaceRun.ReplaceAllString(pass, " ")
		if pass == text {
			break
		}
		text = pass
	}
	return strings.TrimSpace(text)
}
