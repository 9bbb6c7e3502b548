// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bartekus/runlog/cmd/runlog/internal/clierr"
	"github.com/bartekus/runlog/internal/config"
	"github.com/bartekus/runlog/internal/diag"
	"github.com/bartekus/runlog/internal/projection"
	"github.com/bartekus/runlog/internal/runlog"
	"github.com/bartekus/runlog/internal/scanner"
)

// session is the resolved state shared by the report commands.
type session struct {
	cfg    *config.Config
	logger *log.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, clierr.Usage("reading --config", err)
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, clierr.Usage("loading config", err)
	}
	return &session{
		cfg:    cfg,
		logger: diag.NewLogger(cmd.ErrOrStderr(), cfg.Verbosity),
	}, nil
}

func (s *session) decoder() *runlog.Decoder {
	return &runlog.Decoder{Logger: s.logger}
}

// records scans dir and decodes its run logs. With keep-going, a partial
// failure returns the decoded records together with a non-nil error.
func (s *session) records(dir string) ([]runlog.Record, error) {
	opts := scanner.DefaultFilterOptions()
	opts.MaxFiles = s.cfg.MaxFiles

	paths, err := scanner.New(dir, s.logger).RunFiles(opts)
	if err != nil {
		return nil, clierr.Usage("scanning run logs", err)
	}
	if len(paths) == 0 {
		s.logger.Warn("no run logs found", "dir", dir)
	}

	records, err := s.decoder().Aggregate(paths, s.cfg.AggregateOptions())
	if err != nil {
		return records, clierr.Failure("decoding run logs", err)
	}
	return records, nil
}

func (s *session) outputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.cfg.OutputDir, name)
}

func (s *session) write(name, content string) error {
	path := s.outputPath(name)
	if err := projection.AtomicWrite(path, []byte(content)); err != nil {
		return clierr.Failure("writing report", err)
	}
	s.logger.Info("wrote report", "path", path)
	return nil
}
