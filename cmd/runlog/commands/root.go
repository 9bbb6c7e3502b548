// SPDX-License-Identifier: AGPL-3.0-or-later

/*
runlog - turns detector test-stand run logs into Elog entries and CSV summaries.
It decodes the run metadata encoded in each log's file name, the header readings and TMB counter
dump in its body, and renders logbook and spreadsheet-ready reports from them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the runlog root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("RUNLOG_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "runlog",
		Short:         "runlog - test stand run log reports",
		Long:          "runlog decodes detector test-stand run logs and renders Elog entries, CSV rows and summaries from them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.String("config", "", "path to a runlog.yaml config file (default: ./runlog.yaml if present)")
	pf.CountP("verbose", "v", "increase diagnostic output (-v info, -vv debug)")
	pf.Bool("html", false, "render the Elog with HTML styling and links")
	pf.Bool("remove-duplicates", false, "replace repeated Layers/HV values in the CSV with a ditto mark")
	pf.Int("max-files", 0, "process at most this many run logs (0: no limit)")
	pf.Bool("keep-going", false, "skip run logs that fail to decode instead of aborting")
	pf.String("output-dir", "output", "directory the report files are written to")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of runlog",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "runlog version %s\n", version)
		},
	})

	cmd.AddCommand(NewElogCommand())
	cmd.AddCommand(NewCSVCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewSummaryCommand())
	cmd.AddCommand(NewInspectCommand())

	return cmd
}
