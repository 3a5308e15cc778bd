// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package regexfluent

// MergeRecipes merges recipe slices preserving first-seen order.
//
// A later recipe with an already seen name replaces the earlier one in place.
func MergeRecipes(recipeSets ...[]Recipe) []Recipe {
	total := 0
	for _, set := range recipeSets {
		total += len(set)
	}

	out := make([]Recipe, 0, total)
	index := make(map[string]int, total)
	for _, set := range recipeSets {
		for _, rec := range set {
			if i, ok := index[rec.Name]; ok {
				out[i] = rec
				continue
			}

			index[rec.Name] = len(out)
			out = append(out, rec)
		}
	}

	return out
}

// FindRecipe returns the recipe named name.
func FindRecipe(recipes []Recipe, name string) (Recipe, bool) {
	for _, rec := range recipes {
		if rec.Name == name {
			return rec, true
		}
	}

	return Recipe{}, false
}
