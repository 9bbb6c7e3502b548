// SPDX-License-Identifier: AGPL-3.0-or-later
package projection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "output", "compiled_elog.txt")
	content := []byte("Both Layers HV3600 (Cd-109 @ Hole #1) 5000 Events\n")

	require.NoError(t, AtomicWrite(target, content))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, string(content), string(got))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestAtomicWrite_Overwrites(t *testing.T) {
	target := filepath.Join(t.TempDir(), "compiled_data.csv")
	require.NoError(t, AtomicWrite(target, []byte("old\n")))
	require.NoError(t, AtomicWrite(target, []byte("new\n")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}

func TestRenderTable(t *testing.T) {
	got := RenderTable([]string{"Run", "Layers"}, [][]string{{"r5", "L1+2"}, {"r6", "a|b"}})
	want := "| Run | Layers |\n" +
		"| --- | --- |\n" +
		"| r5 | L1+2 |\n" +
		"| r6 | a\\|b |\n"
	assert.Equal(t, want, got)
}

func TestRenderHeader(t *testing.T) {
	assert.Equal(t, "## Runs\n\n", RenderHeader(2, "Runs"))
}
