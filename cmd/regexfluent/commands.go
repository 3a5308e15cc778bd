// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/woozymasta/regexfluent"
)

const defaultDemoInput = "78gary@vip.qq.com"

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [input]",
		Short: "Build the e-mail pattern step by step and match it",
		Long: `Build the e-mail pattern with the fluent API, printing every
intermediate pattern, then match the input in full.

Examples:
  regexfluent demo
  regexfluent demo someone@example.org`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runDemo,
	}
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	input := defaultDemoInput
	if len(args) == 1 {
		input = args[0]
	}

	out := cmd.OutOrStdout()

	mailbox := regexfluent.LetterDigitUnderscore().OneOrMore()
	fmt.Fprintf(out, "mailbox:           %s\n", mailbox)

	domain := regexfluent.LetterDigitUnderscore().OrString(".")
	fmt.Fprintf(out, "domain or \".\":     %s\n", domain)
	domain.OrString("-")
	fmt.Fprintf(out, "domain or \"-\":     %s\n", domain)
	domain.OneOrMore()
	fmt.Fprintf(out, "domain repeated:   %s\n", domain)

	tld := regexfluent.LowerLetter().OneOrMore()
	fmt.Fprintf(out, "top-level domain:  %s\n", tld)

	email := regexfluent.New().
		Append(mailbox).
		AppendString("@").
		Append(domain).
		AppendString(".").
		Append(tld)

	pattern, err := email.Build()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "pattern:           %s\n", pattern)

	ok, err := email.MatchFull(input)
	if err != nil {
		return err
	}

	a.log.Debugf("demo input %q matched=%v", input, ok)
	fmt.Fprintf(out, "%s %s\n", a.styles.verdict(ok), input)

	return nil
}

func (a *app) fragmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fragments",
		Short: "List named catalog fragments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range regexfluent.FragmentNames() {
				f, err := regexfluent.Fragment(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s %s\n", a.styles.name.Render(name), f)
			}

			return nil
		},
	}
}

func (a *app) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <recipe>",
		Short: "Print the pattern built by a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.recipe(args[0])
			if err != nil {
				return err
			}

			b, err := rec.Build()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
}

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <recipe> <input>...",
		Short: "Match inputs in full against a recipe pattern",
		Args:  cobra.MinimumNArgs(2),
		RunE:  a.runMatch,
	}
}

func (a *app) runMatch(cmd *cobra.Command, args []string) error {
	rec, err := a.recipe(args[0])
	if err != nil {
		return err
	}

	b, err := rec.Build()
	if err != nil {
		return err
	}

	re, err := b.CompileFull()
	if err != nil {
		return err
	}

	a.log.Debugf("recipe %s pattern %s", rec.Name, b)

	out := cmd.OutOrStdout()
	inputs := args[1:]
	failed := 0
	for _, input := range inputs {
		ok := re.MatchString(input)
		if !ok {
			failed++
		}

		fmt.Fprintf(out, "%s %s\n", a.styles.verdict(ok), input)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs did not match recipe %q", failed, len(inputs), rec.Name)
	}

	return nil
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every recipe against its test samples",
		Args:  cobra.NoArgs,
		RunE:  a.runVerify,
	}
}

func (a *app) runVerify(cmd *cobra.Command, _ []string) error {
	recipes, err := a.recipes()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, rec := range recipes {
		if len(rec.Test) == 0 {
			a.log.Warnf("recipe %q has no test samples", rec.Name)
		}

		if err := rec.Verify(); err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", a.styles.verdict(false), rec.Name, err)
			continue
		}

		fmt.Fprintf(out, "%s %s (%d samples)\n", a.styles.verdict(true), rec.Name, len(rec.Test))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d recipes failed verification", failed, len(recipes))
	}

	return nil
}
