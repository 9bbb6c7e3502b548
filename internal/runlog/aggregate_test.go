// SPDX-License-Identifier: AGPL-3.0-or-later

package runlog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestAggregate_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeLog(t, dir, "r9-mcsc1-L2-h2-fe55-27s-3500V-100event.txt", "Counters\n--\n1 9\n"),
		writeLog(t, dir, "r10-mcsc1-L1-h1-cd109-27s-3600V-200event.txt", "Counters\n--\n1 10\n"),
	}

	var d Decoder
	records, err := d.Aggregate(paths, AggregateOptions{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "r9", records[0].Title.Run)
	assert.Equal(t, []int{9}, records[0].Body.Counters)
	assert.Equal(t, "r10", records[1].Title.Run)
	assert.Equal(t, paths[1], records[1].Path)
}

func TestAggregate_FailureAbortsBatch(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeLog(t, dir, "r1-mcsc1-L1-h1-cd109-27s-3600V-200event.txt", "no sentinel here\n"),
		writeLog(t, dir, "r2-mcsc1-L1-h1-cd109-27s-3600V-200event.txt", "Counters\n--\n1 2\n"),
	}

	var d Decoder
	records, err := d.Aggregate(paths, AggregateOptions{})
	require.Error(t, err)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, ErrNoCounters)

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, paths[0], fe.Path)
	assert.Contains(t, err.Error(), "r1-mcsc1")
}

func TestAggregate_KeepGoing(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeLog(t, dir, "r1-bad.txt", "Counters\n--\n1 2\n"),
		writeLog(t, dir, "r2-mcsc1-L1-h1-cd109-27s-3600V-200event.txt", "Counters\n--\n1 2\n"),
		writeLog(t, dir, "r3-mcsc1-L1-h1-cd109-27s-3600V-200event.txt", "nothing\n"),
	}

	var d Decoder
	records, err := d.Aggregate(paths, AggregateOptions{KeepGoing: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedFilename)
	assert.ErrorIs(t, err, ErrNoCounters)

	require.Len(t, records, 1)
	assert.Equal(t, "r2", records[0].Title.Run)
}
