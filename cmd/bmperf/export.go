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

	"github.com/spf13/cobra"

	"github.com/bmvote/bmperf/benchrec"
)

func newExportCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var (
		out     string
		derived bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the benchmark records as CSV in canonical column order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup(cmd, level)
			if err != nil {
				return err
			}
			ds, err := benchrec.Load(cfg.Input)
			if errors.Is(err, benchrec.ErrMissingInput) {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				return nil
			}
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				return export(cmd.OutOrStdout(), ds, derived)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := export(f, ds, derived); err != nil {
				f.Close()
				return err
			}
			logger.Debug("exported records", "records", ds.Len(), "path", out)
			return f.Close()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "-", "write records to `file` (- for standard output)")
	flags.BoolVar(&derived, "derived", false, "add the derived TimePerElement column")
	return cmd
}

func export(w io.Writer, ds *benchrec.Dataset, derived bool) error {
	bw := benchrec.NewWriter(w, derived)
	for i := range ds.Records {
		if err := bw.Write(&ds.Records[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
