// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

import "regexp"

// Escape prefixes every metacharacter of literal with "\".
//
// Escaped set: . + * \ $ ^ ? { } ( ) [ ] |
// "-" is not escaped.
func Escape(literal string) string {
	return regexp.QuoteMeta(literal)
}
