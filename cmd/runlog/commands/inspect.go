// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/runlog/cmd/runlog/internal/clierr"
	"github.com/bartekus/runlog/internal/report"
	"github.com/bartekus/runlog/internal/runlog"
)

// NewInspectCommand returns the `runlog inspect` command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the decoded contents of one run log as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			rec, err := s.decoder().DecodeFile(args[0])
			if err != nil {
				return clierr.Failure("inspect", err)
			}
			out, err := report.RenderYAML([]runlog.Record{rec})
			if err != nil {
				return clierr.Failure("inspect", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
