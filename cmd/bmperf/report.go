// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bmvote/bmperf/benchchart"
	"github.com/bmvote/bmperf/benchrec"
	"github.com/bmvote/bmperf/benchstat"
	"github.com/bmvote/bmperf/internal/display"
)

// openChart shows a written chart. Tests replace it.
var openChart = display.Open

func newReportCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a statistical summary and write the charts (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, logger, level)
		},
	}
	addReportFlags(cmd.Flags())
	return cmd
}

func runReport(cmd *cobra.Command, logger *slog.Logger, level *slog.LevelVar) error {
	cfg, err := setup(cmd, level)
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), logger, cfg)
}

// report runs the whole analysis described by cfg, writing the
// console report to w.
func report(w io.Writer, logger *slog.Logger, cfg *Config) error {
	fmt.Fprintln(w, "Boyer-Moore Majority Vote Performance Analysis")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	ds, err := benchrec.Load(cfg.Input)
	if errors.Is(err, benchrec.ErrMissingInput) {
		// Nothing to analyze yet. This is not a failure.
		fmt.Fprintln(w, err)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("loaded benchmark results", "path", ds.Path, "records", ds.Len())
	if err := ds.Describe(w); err != nil {
		return err
	}

	s := benchstat.Summarize(ds)
	fmt.Fprintln(w)
	switch cfg.Format {
	case "csv":
		err = benchstat.FormatCSV(w, s)
	case "html":
		err = benchstat.FormatHTML(w, s)
	default:
		err = benchstat.FormatText(w, s)
	}
	if err != nil {
		return err
	}
	if cfg.Format != "text" {
		// The text summary shows warnings inline.
		for _, warn := range s.Warnings {
			logger.Warn("summary", "warning", warn)
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0o777); err != nil {
		return err
	}
	perf := filepath.Join(cfg.OutDir, cfg.PerformancePNG)
	if err := benchchart.WritePerformance(perf, benchchart.PerformancePanels(ds)); err != nil {
		return fmt.Errorf("writing performance chart: %w", err)
	}
	logger.Debug("wrote chart", "path", perf)

	theory := filepath.Join(cfg.OutDir, cfg.TheoryPNG)
	if err := benchchart.WriteTheory(theory, benchchart.TheoryCurves(ds)); err != nil {
		return fmt.Errorf("writing theory chart: %w", err)
	}
	logger.Debug("wrote chart", "path", theory)

	fmt.Fprintf(w, "\nPlots saved as '%s' and '%s'\n", perf, theory)

	if cfg.Show {
		for _, path := range []string{perf, theory} {
			if err := openChart(path); err != nil {
				logger.Debug("not showing chart", "path", path, "err", err)
			}
		}
	}
	return nil
}
