// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/runlog/internal/config"
	"github.com/bartekus/runlog/internal/report"
	"github.com/bartekus/runlog/internal/runlog"
)

// output is one report file produced from the decoded records.
type output struct {
	file   func(cfg *config.Config) string
	render func(records []runlog.Record, opts report.Options) string
}

var (
	elogOutput = output{
		file:   func(cfg *config.Config) string { return cfg.ElogFile },
		render: report.RenderElog,
	}
	csvOutput = output{
		file:   func(cfg *config.Config) string { return cfg.CSVFile },
		render: report.RenderCSV,
	}
)

// NewElogCommand returns the `runlog elog` command.
func NewElogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elog <dir>",
		Short: "Write the Elog entry for the run logs in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, args[0], elogOutput)
		},
	}
	cmd.Flags().String("elog-file", config.DefaultConfig().ElogFile, "Elog file name, relative to --output-dir")
	return cmd
}

// NewCSVCommand returns the `runlog csv` command.
func NewCSVCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv <dir>",
		Short: "Write the CSV summary for the run logs in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, args[0], csvOutput)
		},
	}
	cmd.Flags().String("csv-file", config.DefaultConfig().CSVFile, "CSV file name, relative to --output-dir")
	return cmd
}

// NewReportCommand returns the `runlog report` command, writing both outputs.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <dir>",
		Short: "Write the Elog entry and the CSV summary",
		Long: `Decode every run log (r<run>-...txt) in the directory, in run-number order,
and write the Elog entry and the CSV summary into the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, args[0], elogOutput, csvOutput)
		},
	}
	cmd.Flags().String("elog-file", config.DefaultConfig().ElogFile, "Elog file name, relative to --output-dir")
	cmd.Flags().String("csv-file", config.DefaultConfig().CSVFile, "CSV file name, relative to --output-dir")
	return cmd
}

// generate decodes dir and writes each output. Under --keep-going the
// reports cover the logs that decoded and the decode error is still returned.
func generate(cmd *cobra.Command, dir string, outputs ...output) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	records, decodeErr := s.records(dir)
	if decodeErr != nil && len(records) == 0 {
		return decodeErr
	}

	opts := s.cfg.ReportOptions()
	for _, out := range outputs {
		if err := s.write(out.file(s.cfg), out.render(records, opts)); err != nil {
			return err
		}
	}
	return decodeErr
}
