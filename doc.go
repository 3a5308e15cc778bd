// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

/*
Package regexfluent builds regular-expression source strings from composable fragments.

A Builder holds pattern text and exposes chained operations, so callers can
assemble patterns without hand-writing raw syntax. The result of String is meant
to be handed to regexp.Compile (or any RE2/PCRE-like engine); the package does not
match anything itself.

Basic flow:
  - start from a catalog fragment (`Digit`, `LetterDigitUnderscore`, ...),
    a literal (`FromString`) or another builder (`From`)
  - combine (`Append` / `Or` / `Not`)
  - quantify (`Optional` / `ZeroOrMore` / `OneOrMore` / `Exactly` / `Between` / `AtLeast`)
  - read the result (`String` / `Build` / `Compile`)

Quantifiers bind to the whole current text: anything that is not a single
bracket class is wrapped in "(...)" first. Invalid quantifier bounds do not break
the chain; the first one is recorded and reported by `Err` and `Build`.

Catalog fragments are returned as fresh copies on every call, so building on
one never changes what the next caller gets.

For patterns described as data, use recipes:
  - parse YAML/JSON recipe documents (`ParseRecipes`)
  - optionally load them from files (`LoadRecipeFile`)
  - build (`Recipe.Build`) and self-check (`Recipe.Verify`)

Known quirks kept on purpose:
  - `Or` folds single-character literals into the class and adds "|" before
    longer ones, then re-wraps everything in "[...]", so `Or("ab")` yields
    "[...|ab]" rather than a real alternation
  - `Not` wraps the text as "[^...]" even when it is already a class
*/
package regexfluent
