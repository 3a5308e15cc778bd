// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

// Op names one builder operation applied by a recipe step.
type Op string

const (
	// OpOptional applies Builder.Optional.
	OpOptional Op = "optional"
	// OpZeroOrMore applies Builder.ZeroOrMore.
	OpZeroOrMore Op = "zero_or_more"
	// OpOneOrMore applies Builder.OneOrMore.
	OpOneOrMore Op = "one_or_more"
	// OpExactly applies Builder.Exactly with Step.Count.
	OpExactly Op = "exactly"
	// OpBetween applies Builder.Between with Step.Min and Step.Max.
	OpBetween Op = "between"
	// OpAtLeast applies Builder.AtLeast with Step.Count.
	OpAtLeast Op = "at_least"
	// OpNot applies Builder.Not.
	OpNot Op = "not"
	// OpOr applies Builder.OrString with the step operand.
	OpOr Op = "or"
	// OpAppend applies Builder.AppendString with the step operand.
	OpAppend Op = "append"
)

// RecipeSet is the root of a recipe document.
type RecipeSet struct {
	// Recipes are named builder chains in document order.
	Recipes []Recipe `json:"recipes" yaml:"recipes"`
}

// Recipe is a declarative builder chain.
type Recipe struct {
	// Name identifies recipe inside a document and on the command line.
	Name string `json:"name" yaml:"name"`
	// Description is free-form help text.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Parts are built independently and appended in order.
	Parts []Part `json:"parts" yaml:"parts"`
	// Test lists inputs the built pattern must match in full.
	Test []string `json:"test,omitempty" yaml:"test,omitempty"`
}

// Part is one appended piece of a recipe.
//
// Fragment and Literal are mutually exclusive; when both are empty the part
// starts from an empty builder.
type Part struct {
	// Fragment is a catalog fragment name used as starting text.
	Fragment string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	// Literal is raw pattern text used as starting text.
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
	// Steps are applied to the starting text in order.
	Steps []Step `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Step is one builder operation.
type Step struct {
	// Op is the operation name.
	Op Op `json:"op" yaml:"op"`
	// Value is a literal operand for "or" and "append".
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// Fragment is a catalog operand for "or" and "append".
	Fragment string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	// Count is the required bound for "exactly" and "at_least".
	Count *int `json:"count,omitempty" yaml:"count,omitempty"`
	// Min is the required lower bound for "between".
	Min *int `json:"min,omitempty" yaml:"min,omitempty"`
	// Max is the required upper bound for "between".
	Max *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// valid reports whether op value is supported.
func (o Op) valid() bool {
	switch o {
	case OpOptional, OpZeroOrMore, OpOneOrMore, OpExactly, OpBetween, OpAtLeast, OpNot, OpOr, OpAppend:
		return true
	default:
		return false
	}
}

// takesOperand reports whether op needs Value or Fragment.
func (o Op) takesOperand() bool {
	return o == OpOr || o == OpAppend
}
