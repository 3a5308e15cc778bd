// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Builder accumulates regular-expression source text.
//
// Every operation mutates the receiver and returns it for chaining.
// A Builder is not safe for concurrent mutation.
type Builder struct {
	// text is pattern source built so far.
	text []byte
	// err is the first invalid quantifier argument seen, nil when none.
	err error
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// FromString returns a builder holding pattern verbatim.
//
// No escaping is applied: pattern must already be valid pattern syntax.
func FromString(pattern string) *Builder {
	return &Builder{text: []byte(pattern)}
}

// From returns a builder holding a copy of src current text.
//
// Later mutation of either builder does not affect the other.
// A nil src yields an empty builder.
func From(src *Builder) *Builder {
	return FromString(src.String())
}

// Clone returns an independent copy of b including its recorded error.
func (b *Builder) Clone() *Builder {
	if b == nil {
		return New()
	}

	return &Builder{text: bytes.Clone(b.text), err: b.err}
}

// String returns current pattern text unmodified.
func (b *Builder) String() string {
	if b == nil {
		return ""
	}

	return string(b.text)
}

// Err returns the first invalid quantifier argument error, if any.
func (b *Builder) Err() error {
	if b == nil {
		return nil
	}

	return b.err
}

// Build returns current pattern text together with the recorded error.
func (b *Builder) Build() (string, error) {
	if b == nil {
		return "", nil
	}

	if b.err != nil {
		return "", b.err
	}

	return string(b.text), nil
}

// Compile compiles current pattern text with regexp.Compile.
func (b *Builder) Compile() (*regexp.Regexp, error) {
	src, err := b.Build()
	if err != nil {
		return nil, err
	}

	return compilePattern(src)
}

// CompileFull compiles current pattern text anchored to the whole input.
func (b *Builder) CompileFull() (*regexp.Regexp, error) {
	src, err := b.Build()
	if err != nil {
		return nil, err
	}

	return compilePattern(`^(?:` + src + `)$`)
}

// MatchFull reports whether current pattern matches input in full.
func (b *Builder) MatchFull(input string) (bool, error) {
	re, err := b.CompileFull()
	if err != nil {
		return false, err
	}

	return re.MatchString(input), nil
}

// Append concatenates other text verbatim.
func (b *Builder) Append(other *Builder) *Builder {
	return b.AppendString(other.String())
}

// AppendString concatenates pattern verbatim, without escaping or grouping.
func (b *Builder) AppendString(pattern string) *Builder {
	b.text = append(b.text, pattern...)
	return b
}

// Or combines current text with other text as a new alternative.
//
// other is treated as a literal, see OrString.
func (b *Builder) Or(other *Builder) *Builder {
	return b.OrString(other.String())
}

// OrString combines current text with literal as a new alternative.
//
// Enclosing "[...]" of current text is stripped, literal is escaped, then
// single-character literals are folded into the class while longer ones are
// added after "|". The result is always re-wrapped in "[...]".
//
// Length is counted in runes, so one non-ASCII character (even outside the
// Basic Multilingual Plane, e.g. an emoji) is folded, not alternated.
func (b *Builder) OrString(literal string) *Builder {
	body := b.text
	if isCharClass(body) {
		body = body[1 : len(body)-1]
	}

	escaped := Escape(literal)
	out := make([]byte, 0, len(body)+len(escaped)+3)
	out = append(out, '[')
	out = append(out, body...)
	if utf8.RuneCountInString(literal) > 1 {
		out = append(out, '|')
	}
	out = append(out, escaped...)
	out = append(out, ']')

	b.text = out
	return b
}

// Not replaces current text with negated class "[^text]".
//
// Existing brackets are kept, so negating "[abc]" yields "[^[abc]]".
func (b *Builder) Not() *Builder {
	out := make([]byte, 0, len(b.text)+3)
	out = append(out, '[', '^')
	out = append(out, b.text...)
	out = append(out, ']')

	b.text = out
	return b
}

// Optional applies "?" (zero or one) to the whole current text.
func (b *Builder) Optional() *Builder {
	return b.quantify("?")
}

// ZeroOrMore applies "*" to the whole current text.
func (b *Builder) ZeroOrMore() *Builder {
	return b.quantify("*")
}

// OneOrMore applies "+" to the whole current text.
func (b *Builder) OneOrMore() *Builder {
	return b.quantify("+")
}

// Exactly applies "{n}" to the whole current text.
func (b *Builder) Exactly(n int) *Builder {
	if n < 0 {
		return b.fail(fmt.Errorf("%w: exactly count %d is negative", ErrInvalidArgument, n))
	}

	return b.quantify("{" + strconv.Itoa(n) + "}")
}

// Between applies "{min,max}" to the whole current text.
func (b *Builder) Between(minCount, maxCount int) *Builder {
	if minCount < 0 {
		return b.fail(fmt.Errorf("%w: between min %d is negative", ErrInvalidArgument, minCount))
	}

	if maxCount < minCount {
		return b.fail(fmt.Errorf("%w: between max %d is less than min %d", ErrInvalidArgument, maxCount, minCount))
	}

	return b.quantify("{" + strconv.Itoa(minCount) + "," + strconv.Itoa(maxCount) + "}")
}

// AtLeast applies "{n,}" to the whole current text.
func (b *Builder) AtLeast(n int) *Builder {
	if n < 0 {
		return b.fail(fmt.Errorf("%w: at least count %d is negative", ErrInvalidArgument, n))
	}

	return b.quantify("{" + strconv.Itoa(n) + ",}")
}

// quantify groups current text when needed and appends quantifier token.
func (b *Builder) quantify(token string) *Builder {
	if !isCharClass(b.text) {
		// Repeated quantifiers nest groups: "(a)+" -> "((a)+)?".
		out := make([]byte, 0, len(b.text)+len(token)+2)
		out = append(out, '(')
		out = append(out, b.text...)
		out = append(out, ')')
		b.text = out
	}

	b.text = append(b.text, token...)
	return b
}

// fail records err unless an earlier error is already recorded.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}

	return b
}

// isCharClass reports whether text starts with "[" and ends with "]".
func isCharClass(text []byte) bool {
	return len(text) >= 2 && text[0] == '[' && text[len(text)-1] == ']'
}

// compilePattern compiles src wrapping failures with ErrInvalidPattern.
func compilePattern(src string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, src, err)
	}

	return re, nil
}
