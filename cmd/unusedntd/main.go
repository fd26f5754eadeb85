// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package main implements the standalone driver for the unusedntd analyzer.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"

	"fillmore-labs.com/unusedntd/analyzer"
)

const (
	exitUnusedFound = 1
	exitError       = 2
)

// Set via ldflags during build.
var version = "dev"

// Config holds all command-line configuration options.
type Config struct {
	ConfigFile    string   // YAML configuration file
	Dir           string   // directory to load packages from
	CheckedTypes  string   // qualified type names to check
	Generated     bool     // check generated files
	Destructuring bool     // check declarations unpacking multiple values
	Exclude       []string // glob patterns of files to skip
	Concurrency   int      // variables analyzed in parallel per function
	Tests         bool     // analyze test files
	JSON          bool     // enables JSON output format
	Verbose       bool     // enables detailed logging
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err.Error())
		}

		var cErr *codedError
		if errors.As(err, &cErr) {
			os.Exit(cErr.code)
		}

		os.Exit(exitError)
	}
}

func newRootCmd() *cobra.Command {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "unusedntd [packages...]",
		Short: "Find discarded values of checked types",
		Long: `unusedntd reports local variables of checked types (by default error)
whose value is overwritten before being read or never read after the last assignment.`,
		Example: `  unusedntd ./...                                    # Analyze all packages
  unusedntd --checked-types 'error;example.com/status.Status' ./...
  unusedntd --json . > report.json                   # JSON output`,
		Args:              cobra.ArbitraryArgs,
		RunE:              cfg.runCommand,
		PersistentPreRunE: cfg.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.ConfigFile, "config", defaultConfigFile, "YAML configuration file")
	flags.StringVarP(&cfg.Dir, "dir", "C", "", "Load packages from this directory")
	flags.StringVar(&cfg.CheckedTypes, "checked-types", "error", "Semicolon or comma separated qualified type names to check")
	flags.BoolVar(&cfg.Generated, "generated", false, "Check generated files")
	flags.BoolVar(&cfg.Destructuring, "destructuring", false, "Check declarations unpacking multiple values")
	flags.StringArrayVar(&cfg.Exclude, "exclude", nil, "Glob pattern of files to skip (repeatable)")
	flags.IntVar(&cfg.Concurrency, "concurrency", 1, "Maximum number of variables analyzed in parallel per function")
	flags.BoolVar(&cfg.Tests, "tests", false, "Analyze test files")
	flags.BoolVar(&cfg.JSON, "json", false, "Output in JSON format")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose logging")

	return rootCmd
}

func (c *Config) setup(cmd *cobra.Command, _ []string) error {
	// Disable logger unless verbose flag is set.
	slog.SetDefault(slog.New(slog.DiscardHandler))

	if c.Verbose {
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}

		var handler slog.Handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
		if c.JSON {
			handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
		}

		slog.SetDefault(slog.New(handler))
	}

	return nil
}

func (c *Config) runCommand(cmd *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	file, err := loadFileConfig(c.ConfigFile, cmd.Flags().Changed("config"))
	if err != nil {
		return errWithCode(fmt.Errorf("config: %w", err), exitError)
	}

	opts, err := c.options(file, cmd.Flags().Changed)
	if err != nil {
		return errWithCode(fmt.Errorf("options: %w", err), exitError)
	}

	slog.LogAttrs(cmd.Context(), slog.LevelInfo, "starting analysis", slog.Any("packages", patterns), opts.LogAttr())

	tests := c.Tests
	if file.Tests != nil && !cmd.Flags().Changed("tests") {
		tests = *file.Tests
	}

	pkgs, err := loadPackages(cmd.Context(), c.Dir, tests, patterns)
	if err != nil {
		return errWithCode(fmt.Errorf("load: %w", err), exitError)
	}

	slog.Info("loaded packages", "num", len(pkgs))

	graph, err := checker.Analyze([]*analysis.Analyzer{analyzer.New(opts)}, pkgs, &checker.Options{})
	if err != nil {
		return errWithCode(fmt.Errorf("analyze: %w", err), exitError)
	}

	findings, err := collectFindings(graph)
	if err != nil {
		return errWithCode(fmt.Errorf("analyze: %w", err), exitError)
	}

	slog.Info("analysis completed", "findings", len(findings))

	if c.JSON {
		err = writeJSON(cmd.OutOrStdout(), findings)
	} else {
		err = writeText(cmd.OutOrStdout(), findings)
	}

	if err != nil {
		return errWithCode(fmt.Errorf("format results: %w", err), exitError)
	}

	if len(findings) > 0 {
		return errWithCode(nil, exitUnusedFound)
	}

	return nil
}

func errWithCode(err error, code int) error {
	return &codedError{err: err, code: code}
}

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	return ""
}

func (e *codedError) Unwrap() error {
	return e.err
}
