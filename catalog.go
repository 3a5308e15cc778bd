// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

import (
	"fmt"
	"maps"
	"slices"
)

// Catalog fragment sources. Accessors always return fresh builders.
const (
	digitText                 = `[0-9]`
	upperLetterText           = `[A-Z]`
	lowerLetterText           = `[a-z]`
	letterText                = `[a-zA-Z]`
	lowerLetterOrDigitText    = `[a-z0-9]`
	upperLetterOrDigitText    = `[A-Z0-9]`
	letterOrDigitText         = `[a-zA-Z0-9]`
	letterDigitUnderscoreText = `[a-zA-Z0-9_]`
	wordBoundaryText          = `\b`
	nonWordBoundaryText       = `\B`
	whitespaceText            = `\s`
	nonWhitespaceText         = `\S`
	wordCharText              = `\w`
	nonWordCharText           = `\W`
	anyButNewlineText         = `.`
	lineStartText             = `^`
	lineEndText               = `$`

	// hanText covers CJK unified ideographs U+4E00..U+9FA5.
	hanText = "[\u4e00-\u9fa5]"
)

// catalog maps fragment names used by recipes and CLI to fragment sources.
var catalog = map[string]string{
	"digit":        digitText,
	"upper":        upperLetterText,
	"lower":        lowerLetterText,
	"letter":       letterText,
	"lower_digit":  lowerLetterOrDigitText,
	"upper_digit":  upperLetterOrDigitText,
	"alnum":        letterOrDigitText,
	"word_class":   letterDigitUnderscoreText,
	"boundary":     wordBoundaryText,
	"non_boundary": nonWordBoundaryText,
	"space":        whitespaceText,
	"non_space":    nonWhitespaceText,
	"word":         wordCharText,
	"non_word":     nonWordCharText,
	"any":          anyButNewlineText,
	"line_start":   lineStartText,
	"line_end":     lineEndText,
	"han":          hanText,
}

// Fragment returns a fresh builder for named catalog fragment.
func Fragment(name string) (*Builder, error) {
	text, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFragment, name)
	}

	return FromString(text), nil
}

// FragmentNames returns catalog fragment names in sorted order.
func FragmentNames() []string {
	return slices.Sorted(maps.Keys(catalog))
}

// Digit matches one ASCII digit: [0-9].
func Digit() *Builder { return FromString(digitText) }

// UpperLetter matches one upper-case ASCII letter: [A-Z].
func UpperLetter() *Builder { return FromString(upperLetterText) }

// LowerLetter matches one lower-case ASCII letter: [a-z].
func LowerLetter() *Builder { return FromString(lowerLetterText) }

// Letter matches one ASCII letter: [a-zA-Z].
func Letter() *Builder { return FromString(letterText) }

// LowerLetterOrDigit matches [a-z0-9].
func LowerLetterOrDigit() *Builder { return FromString(lowerLetterOrDigitText) }

// UpperLetterOrDigit matches [A-Z0-9].
func UpperLetterOrDigit() *Builder { return FromString(upperLetterOrDigitText) }

// LetterOrDigit matches [a-zA-Z0-9].
func LetterOrDigit() *Builder { return FromString(letterOrDigitText) }

// LetterDigitUnderscore matches [a-zA-Z0-9_].
func LetterDigitUnderscore() *Builder { return FromString(letterDigitUnderscoreText) }

// WordBoundary matches a word boundary: \b.
func WordBoundary() *Builder { return FromString(wordBoundaryText) }

// NonWordBoundary matches a non-boundary position: \B.
func NonWordBoundary() *Builder { return FromString(nonWordBoundaryText) }

// Whitespace matches one whitespace character: \s.
func Whitespace() *Builder { return FromString(whitespaceText) }

// NonWhitespace matches one non-whitespace character: \S.
func NonWhitespace() *Builder { return FromString(nonWhitespaceText) }

// WordChar matches one word character: \w.
func WordChar() *Builder { return FromString(wordCharText) }

// NonWordChar matches one non-word character: \W.
func NonWordChar() *Builder { return FromString(nonWordCharText) }

// AnyButNewline matches any character except newline: ".".
func AnyButNewline() *Builder { return FromString(anyButNewlineText) }

// LineStart matches start of line: "^".
func LineStart() *Builder { return FromString(lineStartText) }

// LineEnd matches end of line: "$".
func LineEnd() *Builder { return FromString(lineEndText) }

// Han matches one CJK unified ideograph.
func Han() *Builder { return FromString(hanText) }
