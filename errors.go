// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

import "errors"

// Sentinel errors for regexfluent operations.
var (
	// ErrInvalidArgument indicates an out-of-range quantifier bound.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidPattern indicates built text rejected by regexp compilation.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrUnknownFragment indicates a catalog lookup by unsupported name.
	ErrUnknownFragment = errors.New("unknown fragment")
	// ErrInvalidRecipe indicates malformed or unsupported recipe input.
	ErrInvalidRecipe = errors.New("invalid recipe")
	// ErrRecipeMismatch indicates a recipe test sample not matched by its pattern.
	ErrRecipeMismatch = errors.New("recipe does not match sample")
)
