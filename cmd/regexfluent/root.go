// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/regexfluent

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/woozymasta/regexfluent"
)

// app carries state shared by all subcommands of one root command.
type app struct {
	fs     afero.Fs
	v      *viper.Viper
	log    *logger
	styles styles
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{
		fs: fs,
		v:  viper.New(),
	}

	root := &cobra.Command{
		Use:   "regexfluent",
		Short: "Build regular expressions from named fragments",
		Long: `Build regular expressions from named fragments and declarative recipes.

Recipes are YAML or JSON documents describing a builder chain. The built-in
"email" recipe is always available; --recipes adds more and may override it.

Examples:
  regexfluent demo
  regexfluent fragments
  regexfluent build email
  regexfluent match email 78gary@vip.qq.com
  regexfluent --recipes ./recipes.yaml verify`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	addGlobalFlags(root.PersistentFlags())
	_ = a.v.BindPFlags(root.PersistentFlags())

	root.AddCommand(
		a.demoCmd(),
		a.fragmentsCmd(),
		a.buildCmd(),
		a.matchCmd(),
		a.verifyCmd(),
	)

	return root
}

// addGlobalFlags registers flags shared by every subcommand.
func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default ./regexfluent.yaml or ~/.config/regexfluent/regexfluent.yaml)")
	flags.StringSlice("recipes", nil, "recipe file (YAML or JSON), may be repeated")
	flags.BoolP("verbose", "v", false, "enable debug logging")
}

// init reads configuration and prepares logger and styles.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetFs(a.fs)
	a.v.SetEnvPrefix("REGEXFLUENT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
	} else {
		a.v.SetConfigName("regexfluent")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "regexfluent"))
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	a.log = newLogger(cmd.ErrOrStderr(), a.v.GetBool("verbose"))
	a.styles = newStyles(cmd.OutOrStdout())

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debugf("using config file %s", used)
	}

	return nil
}

// recipes returns the built-in recipes merged with configured recipe files.
func (a *app) recipes() ([]regexfluent.Recipe, error) {
	paths := a.v.GetStringSlice("recipes")

	loaded, err := regexfluent.LoadRecipeFiles(a.fs, paths...)
	if err != nil {
		return nil, err
	}

	a.log.Debugf("loaded %d recipes from %d files", len(loaded), len(paths))

	return regexfluent.MergeRecipes([]regexfluent.Recipe{regexfluent.EmailRecipe()}, loaded), nil
}

// recipe returns one recipe by name.
func (a *app) recipe(name string) (regexfluent.Recipe, error) {
	recipes, err := a.recipes()
	if err != nil {
		return regexfluent.Recipe{}, err
	}

	rec, ok := regexfluent.FindRecipe(recipes, name)
	if !ok {
		return regexfluent.Recipe{}, fmt.Errorf("unknown recipe %q", name)
	}

	return rec, nil
}
