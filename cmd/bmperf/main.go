// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bmperf summarizes and charts the results of Boyer-Moore majority
// vote benchmarks.
//
// Usage:
//
//	bmperf [report] [--input file] [--out-dir dir] [--format text|csv|html] [--show=false]
//	bmperf export [--out file] [--derived]
//	bmperf config init [file]
//
// The input is a CSV file with the columns ArraySize, InputType,
// HasMajority, Time(ns), Comparisons and ArrayAccess, one row per
// benchmark run, as written by the benchmark harness. By default it is
// read from benchmark_results.csv in the current directory.
//
// The report command, which is also the default, prints the number of
// runs and the distinct array sizes and input types, followed by a
// statistical summary of the run times: mean, standard deviation and
// range per array size, mean and standard deviation per input type,
// the correlation between array size and time, and the mean time per
// array element. The -format flag selects plain text, CSV or HTML for
// the summary.
//
// It then writes two charts. performance_analysis.png is a grid of
// four panels: time against array size on log-log axes, comparisons
// per input type, array accesses with and without a majority element,
// and box plots of the time per input type at array size 10000.
// theory_vs_practice.png plots the measured time of the RANDOM inputs
// against a linear cost of 100ns per element.
//
// If the input file does not exist, bmperf says so and exits without
// writing any charts.
//
// The export command writes the input records back out as CSV with
// the canonical column order, optionally adding the TimePerElement
// column.
//
// Settings are taken from, in increasing order of precedence, built-in
// defaults, the YAML file named by --config (or bmperf.yaml in the
// current directory), BMPERF_* environment variables such as
// BMPERF_OUT_DIR, and command-line flags. Environment variables may
// also be set in a .env file in the current directory.
// "bmperf config init" writes a configuration file with the defaults.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := bmperf(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bmperf: %v\n", err)
		os.Exit(1)
	}
}

// bmperf runs the command line args, writing its output to stdout and
// diagnostics to stderr.
func bmperf(stdout, stderr io.Writer, args []string) error {
	root := newRootCmd(stderr)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := &cobra.Command{
		Use:   "bmperf",
		Short: "Summarize and chart Boyer-Moore majority vote benchmarks",
		Long: `Bmperf loads majority vote benchmark results, prints descriptive
statistics about them, and writes a performance chart and a chart that
compares the measured times with linear cost.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, logger, level)
		},
	}
	addGlobalFlags(root.PersistentFlags())
	addReportFlags(root.Flags())

	root.AddCommand(newReportCmd(logger, level))
	root.AddCommand(newExportCmd(logger, level))
	root.AddCommand(newConfigCmd())
	return root
}

// setup loads the configuration of cmd and applies its log level.
func setup(cmd *cobra.Command, level *slog.LevelVar) (*Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	l, err := cfg.level()
	if err != nil {
		return nil, err
	}
	level.Set(l)
	return cfg, nil
}
