// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs name catalog assets derived from titles (e.g. "silence-of-the-lambs").
// Accents are folded to ASCII before non-alphanumeric runs become hyphens.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separators matches every run of characters that cannot appear in a slug.
var separators = regexp.MustCompile(`[^a-z0-9]+`)

// foldAccents decomposes (é → e + U+0301), drops the combining marks and recomposes.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
// Letters outside ASCII that have no accent-free form are dropped.
func From(s string) string {
	folded, _, err := transform.String(foldAccents, s)
	if err != nil {
		folded = s
	}
	return strings.Trim(separators.ReplaceAllString(strings.ToLower(folded), "-"), "-")
}
