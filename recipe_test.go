// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

import (
	"errors"
	"testing"
)

func intPtr(n int) *int {
	return &n
}

func TestEmailRecipe(t *testing.T) {
	t.Parallel()

	rec := EmailRecipe()
	b, err := rec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	const want = `[a-zA-Z0-9_]+@[a-zA-Z0-9_\.-]+.[a-z]+`
	if b.String() != want {
		t.Fatalf("email recipe=%q, want %q", b.String(), want)
	}

	if err := rec.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestRecipeVerifyMismatch(t *testing.T) {
	t.Parallel()

	rec := EmailRecipe()
	rec.Test = append(rec.Test, "x@y")

	if err := rec.Verify(); !errors.Is(err, ErrRecipeMismatch) {
		t.Fatalf("Verify err=%v, want ErrRecipeMismatch", err)
	}
}

func TestRecipeSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		part Part
		want string
	}{
		{"fragment append", Part{Fragment: "digit", Steps: []Step{{Op: OpAppend, Fragment: "lower"}}}, "[0-9][a-z]"},
		{"literal between", Part{Literal: "ab", Steps: []Step{{Op: OpBetween, Min: intPtr(1), Max: intPtr(2)}}}, "(ab){1,2}"},
		{"exactly", Part{Fragment: "digit", Steps: []Step{{Op: OpExactly, Count: intPtr(4)}}}, "[0-9]{4}"},
		{"at least", Part{Fragment: "digit", Steps: []Step{{Op: OpAtLeast, Count: intPtr(1)}}}, "[0-9]{1,}"},
		{"optional", Part{Literal: "-", Steps: []Step{{Op: OpOptional}}}, "(-)?"},
		{"zero or more", Part{Fragment: "space", Steps: []Step{{Op: OpZeroOrMore}}}, `(\s)*`},
		{"not", Part{Literal: "abc", Steps: []Step{{Op: OpNot}}}, "[^abc]"},
		{"or fragment", Part{Fragment: "lower", Steps: []Step{{Op: OpOr, Fragment: "any"}}}, `[a-z\.]`},
		{"empty base", Part{Steps: []Step{{Op: OpAppend, Value: "x"}}}, "x"},
	}

	for _, tt := range tests {
		b, err := Recipe{Name: tt.name, Parts: []Part{tt.part}}.Build()
		if err != nil {
			t.Fatalf("%s: Build: %v", tt.name, err)
		}

		if b.String() != tt.want {
			t.Fatalf("%s: got=%q, want %q", tt.name, b.String(), tt.want)
		}
	}
}

func TestRecipeBuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		part Part
		want error
	}{
		{"fragment and literal", Part{Fragment: "digit", Literal: "x"}, ErrInvalidRecipe},
		{"unknown fragment", Part{Fragment: "nope"}, ErrUnknownFragment},
		{"unknown op", Part{Literal: "a", Steps: []Step{{Op: "twice"}}}, ErrInvalidRecipe},
		{"or without operand", Part{Literal: "a", Steps: []Step{{Op: OpOr}}}, ErrInvalidRecipe},
		{"or with both operands", Part{Literal: "a", Steps: []Step{{Op: OpOr, Value: "b", Fragment: "digit"}}}, ErrInvalidRecipe},
		{"quantifier with operand", Part{Literal: "a", Steps: []Step{{Op: OpOneOrMore, Value: "b"}}}, ErrInvalidRecipe},
		{"unknown operand fragment", Part{Literal: "a", Steps: []Step{{Op: OpAppend, Fragment: "nope"}}}, ErrUnknownFragment},
		{"negative exactly", Part{Literal: "a", Steps: []Step{{Op: OpExactly, Count: intPtr(-1)}}}, ErrInvalidArgument},
		{"exactly without count", Part{Literal: "a", Steps: []Step{{Op: OpExactly}}}, ErrInvalidRecipe},
		{"at least without count", Part{Literal: "a", Steps: []Step{{Op: OpAtLeast}}}, ErrInvalidRecipe},
		{"between without max", Part{Literal: "a", Steps: []Step{{Op: OpBetween, Min: intPtr(1)}}}, ErrInvalidRecipe},
		{"between without min", Part{Literal: "a", Steps: []Step{{Op: OpBetween, Max: intPtr(1)}}}, ErrInvalidRecipe},
		{"reversed between", Part{Literal: "a", Steps: []Step{{Op: OpBetween, Min: intPtr(5), Max: intPtr(2)}}}, ErrInvalidArgument},
	}

	for _, tt := range tests {
		_, err := Recipe{Name: tt.name, Parts: []Part{tt.part}}.Build()
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: err=%v, want %v", tt.name, err, tt.want)
		}
	}
}
