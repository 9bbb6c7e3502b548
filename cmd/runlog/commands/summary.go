// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/runlog/internal/report"
)

// NewSummaryCommand returns the `runlog summary` command.
func NewSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <dir>",
		Short: "Print a Markdown table of the run logs in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			records, decodeErr := s.records(args[0])
			if decodeErr != nil && len(records) == 0 {
				return decodeErr
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), report.RenderSummary(records))
			return decodeErr
		},
	}
}
