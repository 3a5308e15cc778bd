// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

import (
	"fmt"

	"github.com/spf13/afero"
)

// LoadRecipeFile reads and parses recipes from a file on fsys.
func LoadRecipeFile(fsys afero.Fs, path string) ([]Recipe, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recipe file: %w", err)
	}
	defer func() { _ = f.Close() }()

	recipes, err := ParseRecipes(f)
	if err != nil {
		return nil, fmt.Errorf("parse recipe file %s: %w", path, err)
	}

	return recipes, nil
}

// LoadRecipeFiles reads and merges recipes from files in the given order.
//
// A recipe from a later file replaces an earlier recipe with the same name,
// see MergeRecipes.
func LoadRecipeFiles(fsys afero.Fs, paths ...string) ([]Recipe, error) {
	sets := make([][]Recipe, 0, len(paths))
	for _, path := range paths {
		recipes, err := LoadRecipeFile(fsys, path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, recipes)
	}

	return MergeRecipes(sets...), nil
}
