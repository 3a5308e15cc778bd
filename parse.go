// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseRecipes parses a YAML (or JSON) recipe document from reader.
//
// Semantics:
// - empty input yields no recipes
// - multiple "---" documents are concatenated in order
// - unknown fields are rejected
// - recipe names must be non-empty and unique across all documents
// - every recipe must build without error
func ParseRecipes(r io.Reader) ([]Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	// Each "---" separated document contributes its recipes in order.
	var all []Recipe
	for {
		var set RecipeSet
		if err := dec.Decode(&set); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("%w: decode: %v", ErrInvalidRecipe, err)
		}

		all = append(all, set.Recipes...)
	}

	seen := make(map[string]struct{}, len(all))
	for i := range all {
		rec := &all[i]
		rec.Name = strings.TrimSpace(rec.Name)
		if rec.Name == "" {
			return nil, fmt.Errorf("%w: recipe %d has empty name", ErrInvalidRecipe, i)
		}

		if _, ok := seen[rec.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate recipe name %q", ErrInvalidRecipe, rec.Name)
		}
		seen[rec.Name] = struct{}{}

		if _, err := rec.Build(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecipe, err)
		}
	}

	if all == nil {
		return []Recipe{}, nil
	}

	return all, nil
}

// ParseRecipesString parses recipes from string input.
func ParseRecipesString(src string) ([]Recipe, error) {
	return ParseRecipes(strings.NewReader(src))
}
