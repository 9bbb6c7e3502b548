// SPDX-License-Identifier: AGPL-3.0-or-later

package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFiles(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		opts     FilterOptions
		expected []string
	}{
		{
			name:     "numeric run order",
			names:    []string{"r10-a.txt", "r2-a.txt", "r1-a.txt"},
			opts:     DefaultFilterOptions(),
			expected: []string{"r1-a.txt", "r2-a.txt", "r10-a.txt"},
		},
		{
			name:     "non run files dropped",
			names:    []string{"notes.txt", "rx-a.txt", "r3-a.log", "r-a.txt", "run4-a.txt", "r5-a.txt"},
			opts:     DefaultFilterOptions(),
			expected: []string{"r5-a.txt"},
		},
		{
			name:     "ties broken by name",
			names:    []string{"r7-b.txt", "r7-a.txt"},
			opts:     DefaultFilterOptions(),
			expected: []string{"r7-a.txt", "r7-b.txt"},
		},
		{
			name:  "max files",
			names: []string{"r3-a.txt", "r1-a.txt", "r2-a.txt"},
			opts: FilterOptions{
				Prefix:            "r",
				IncludeExtensions: []string{".txt"},
				MaxFiles:          2,
			},
			expected: []string{"r1-a.txt", "r2-a.txt"},
		},
		{
			name:     "empty",
			names:    nil,
			opts:     DefaultFilterOptions(),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFiles(tt.names, tt.opts)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRunNumber(t *testing.T) {
	run, ok := RunNumber("r42-mcsc1-L1-h1-cd109-27s-3600V-5000event.txt", "r")
	assert.True(t, ok)
	assert.Equal(t, 42, run)

	_, ok = RunNumber("r4a-mcsc1.txt", "r")
	assert.False(t, ok)
}

func TestScanner_RunFiles(t *testing.T) {
	dir := t.TempDir()

	createFile(t, dir, "r12-mcsc1-L1-h1-cd109-27s-3600V-5000event.txt")
	createFile(t, dir, "r3-mcsc1-L2-h1-cd109-27s-3600V-5000event.txt")
	createFile(t, dir, "README.md")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "r1-output.txt"), 0o755))

	s := New(dir, nil)
	paths, err := s.RunFiles(DefaultFilterOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "r3-mcsc1-L2-h1-cd109-27s-3600V-5000event.txt"),
		filepath.Join(dir, "r12-mcsc1-L1-h1-cd109-27s-3600V-5000event.txt"),
	}, paths)
}

func TestScanner_MissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent"), nil)
	_, err := s.RunFiles(DefaultFilterOptions())
	require.Error(t, err)
}

func createFile(t *testing.T, dir, path string, content ...string) {
	fullPath := filepath.Join(dir, path)
	err := os.MkdirAll(filepath.Dir(fullPath), 0755)
	require.NoError(t, err)

	data := ""
	if len(content) > 0 {
		data = content[0]
	}
	err = os.WriteFile(fullPath, []byte(data), 0644)
	require.NoError(t, err)
}
