// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

import "fmt"

// Build applies every part and appends the parts in order.
func (r Recipe) Build() (*Builder, error) {
	out := New()
	for i, part := range r.Parts {
		b, err := part.build()
		if err != nil {
			return nil, fmt.Errorf("recipe %q part %d: %w", r.Name, i, err)
		}

		out.Append(b)
	}

	return out, nil
}

// Verify builds recipe and checks that every Test sample matches in full.
func (r Recipe) Verify() error {
	b, err := r.Build()
	if err != nil {
		return err
	}

	re, err := b.CompileFull()
	if err != nil {
		return fmt.Errorf("recipe %q: %w", r.Name, err)
	}

	for _, sample := range r.Test {
		if !re.MatchString(sample) {
			return fmt.Errorf("%w: recipe %q, sample %q, pattern %q", ErrRecipeMismatch, r.Name, sample, b.String())
		}
	}

	return nil
}

// EmailRecipe returns the built-in "email" recipe:
// [a-zA-Z0-9_]+@[a-zA-Z0-9_\.-]+.[a-z]+
func EmailRecipe() Recipe {
	return Recipe{
		Name:        "email",
		Description: "mailbox of letters, digits and underscores; domain may contain dots and dashes",
		Parts: []Part{
			{Fragment: "word_class", Steps: []Step{{Op: OpOneOrMore}}},
			{Literal: "@"},
			{Fragment: "word_class", Steps: []Step{
				{Op: OpOr, Value: "."},
				{Op: OpOr, Value: "-"},
				{Op: OpOneOrMore},
			}},
			{Literal: "."},
			{Fragment: "lower", Steps: []Step{{Op: OpOneOrMore}}},
		},
		Test: []string{"78gary@vip.qq.com"},
	}
}

// build creates starting builder and applies steps.
func (p Part) build() (*Builder, error) {
	if p.Fragment != "" && p.Literal != "" {
		return nil, fmt.Errorf("%w: fragment %q and literal %q are mutually exclusive", ErrInvalidRecipe, p.Fragment, p.Literal)
	}

	b := FromString(p.Literal)
	if p.Fragment != "" {
		var err error
		b, err = Fragment(p.Fragment)
		if err != nil {
			return nil, err
		}
	}

	for i, step := range p.Steps {
		if err := step.apply(b); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}

	return b, nil
}

// apply runs step operation on b.
func (s Step) apply(b *Builder) error {
	if !s.Op.valid() {
		return fmt.Errorf("%w: unsupported op %q", ErrInvalidRecipe, s.Op)
	}

	if !s.Op.takesOperand() && (s.Value != "" || s.Fragment != "") {
		return fmt.Errorf("%w: op %q takes no value or fragment", ErrInvalidRecipe, s.Op)
	}

	switch s.Op {
	case OpOptional:
		b.Optional()
	case OpZeroOrMore:
		b.ZeroOrMore()
	case OpOneOrMore:
		b.OneOrMore()
	case OpExactly, OpAtLeast:
		if s.Count == nil {
			return fmt.Errorf("%w: op %q requires count", ErrInvalidRecipe, s.Op)
		}

		if s.Op == OpExactly {
			b.Exactly(*s.Count)
		} else {
			b.AtLeast(*s.Count)
		}
	case OpBetween:
		if s.Min == nil || s.Max == nil {
			return fmt.Errorf("%w: op %q requires min and max", ErrInvalidRecipe, s.Op)
		}

		b.Between(*s.Min, *s.Max)
	case OpNot:
		b.Not()
	case OpOr, OpAppend:
		operand, err := s.operand()
		if err != nil {
			return err
		}

		if s.Op == OpOr {
			b.OrString(operand)
		} else {
			b.AppendString(operand)
		}
	}

	return b.Err()
}

// operand resolves Value or Fragment into text.
func (s Step) operand() (string, error) {
	switch {
	case s.Value != "" && s.Fragment != "":
		return "", fmt.Errorf("%w: value %q and fragment %q are mutually exclusive", ErrInvalidRecipe, s.Value, s.Fragment)
	case s.Fragment != "":
		f, err := Fragment(s.Fragment)
		if err != nil {
			return "", err
		}

		return f.String(), nil
	case s.Value != "":
		return s.Value, nil
	default:
		return "", fmt.Errorf("%w: op %q requires value or fragment", ErrInvalidRecipe, s.Op)
	}
}
