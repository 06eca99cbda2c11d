// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sanitize neutralizes characters that could enable script injection
// when a client renders echoed fields as HTML.
package sanitize

import "strings"

// htmlReplacer escapes the characters that are significant inside HTML
// elements and attribute values, plus the slash and backtick.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	"`", "&#96;",
)

// HTML returns s with unsafe characters replaced by HTML entities.
func HTML(s string) string {
	return htmlReplacer.Replace(s)
}
