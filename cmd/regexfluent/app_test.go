// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const testRecipes = `
recipes:
  - name: pin
    parts:
      - fragment: digit
        steps:
          - op: between
            min: 4
            max: 6
    test:
      - "1234"
      - "123456"
  - name: broken
    parts:
      - literal: "a"
    test:
      - "b"
`

func execute(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd(fs)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func recipesFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/recipes.yaml", []byte(testRecipes), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return fs
}

func TestDemoDefaultInput(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, afero.NewMemMapFs(), "demo")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}

	if !strings.Contains(out, `[a-zA-Z0-9_]+@[a-zA-Z0-9_\.-]+.[a-z]+`) {
		t.Fatalf("demo output lacks final pattern:\n%s", out)
	}

	if !strings.Contains(out, `[a-zA-Z0-9_\.]`) {
		t.Fatalf("demo output lacks intermediate pattern:\n%s", out)
	}

	if strings.Contains(out, "NO MATCH") || !strings.Contains(out, "MATCH 78gary@vip.qq.com") {
		t.Fatalf("demo must match default input:\n%s", out)
	}
}

func TestDemoNoMatch(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, afero.NewMemMapFs(), "demo", "not-an-email")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}

	if !strings.Contains(out, "NO MATCH not-an-email") {
		t.Fatalf("demo must report no match:\n%s", out)
	}
}

func TestFragments(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, afero.NewMemMapFs(), "fragments")
	if err != nil {
		t.Fatalf("fragments: %v", err)
	}

	for _, want := range []string{"digit", "[0-9]", "word_class", "[a-zA-Z0-9_]", "line_end"} {
		if !strings.Contains(out, want) {
			t.Fatalf("fragments output lacks %q:\n%s", want, out)
		}
	}
}

func TestBuildBuiltinRecipe(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, afero.NewMemMapFs(), "build", "email")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if out != "[a-zA-Z0-9_]+@[a-zA-Z0-9_\\.-]+.[a-z]+\n" {
		t.Fatalf("build email=%q", out)
	}
}

func TestBuildUnknownRecipe(t *testing.T) {
	t.Parallel()

	if _, _, err := execute(t, afero.NewMemMapFs(), "build", "nope"); err == nil {
		t.Fatalf("build nope must fail")
	}
}

func TestBuildFromRecipeFile(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, recipesFs(t), "--recipes", "/recipes.yaml", "build", "pin")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if out != "[0-9]{4,6}\n" {
		t.Fatalf("build pin=%q, want [0-9]{4,6}", out)
	}
}

func TestBuildMissingRecipeFile(t *testing.T) {
	t.Parallel()

	if _, _, err := execute(t, afero.NewMemMapFs(), "--recipes", "/missing.yaml", "build", "email"); err == nil {
		t.Fatalf("missing recipe file must fail")
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, afero.NewMemMapFs(), "match", "email", "78gary@vip.qq.com", "nope")
	if err == nil {
		t.Fatalf("match with failing input must return error")
	}

	if !strings.Contains(out, "MATCH 78gary@vip.qq.com") || !strings.Contains(out, "NO MATCH nope") {
		t.Fatalf("unexpected match output:\n%s", out)
	}

	if _, _, err := execute(t, afero.NewMemMapFs(), "match", "email", "a_b@c-d.example.com"); err != nil {
		t.Fatalf("match: %v", err)
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, afero.NewMemMapFs(), "verify")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if !strings.Contains(out, "email (1 samples)") {
		t.Fatalf("unexpected verify output:\n%s", out)
	}

	out, _, err = execute(t, recipesFs(t), "--recipes", "/recipes.yaml", "verify")
	if err == nil {
		t.Fatalf("verify with broken recipe must fail")
	}

	if !strings.Contains(out, "pin (2 samples)") || !strings.Contains(out, "NO MATCH broken") {
		t.Fatalf("unexpected verify output:\n%s", out)
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	fs := recipesFs(t)
	cfg := "verbose: true\nrecipes:\n  - /recipes.yaml\n"
	if err := afero.WriteFile(fs, "/regexfluent.yaml", []byte(cfg), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, errOut, err := execute(t, fs, "--config", "/regexfluent.yaml", "build", "pin")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if out != "[0-9]{4,6}\n" {
		t.Fatalf("build pin=%q", out)
	}

	if !strings.Contains(errOut, "[DEBUG]") {
		t.Fatalf("verbose from config must enable debug log, stderr:\n%s", errOut)
	}
}

func TestConfigFileMissing(t *testing.T) {
	t.Parallel()

	if _, _, err := execute(t, afero.NewMemMapFs(), "--config", "/missing.yaml", "fragments"); err == nil {
		t.Fatalf("explicit missing config must fail")
	}
}
