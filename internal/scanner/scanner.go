// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scanner finds run logs in a directory.
package scanner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Scanner lists the run logs of one directory.
type Scanner struct {
	dir    string
	logger *log.Logger
}

// New creates a new Scanner for the given log directory. A nil logger discards output.
func New(dir string, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scanner{
		dir:    dir,
		logger: logger,
	}
}

// RunFiles returns the paths of the run logs in the directory matching opts,
// ordered by run number. Subdirectories are not descended into.
func (s *Scanner) RunFiles(opts FilterOptions) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing run logs: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}

	selected := FilterFiles(names, opts)
	paths := make([]string, 0, len(selected))
	for _, name := range selected {
		s.logger.Info("will process", "file", name)
		paths = append(paths, filepath.Join(s.dir, name))
	}
	s.logger.Debug("scanned directory", "dir", s.dir, "entries", len(names), "selected", len(paths))
	return paths, nil
}
