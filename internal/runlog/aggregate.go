// SPDX-License-Identifier: AGPL-3.0-or-later

package runlog

import (
	"errors"
	"fmt"
)

// Record pairs the file-name metadata and body values of one run log.
type Record struct {
	Path  string `yaml:"path"`
	Title Title  `yaml:"title"`
	Body  Body   `yaml:"body"`
}

// FileError ties a decoding failure to the run log it came from.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// AggregateOptions control batch behaviour of Aggregate.
type AggregateOptions struct {
	// KeepGoing skips files that fail to decode instead of aborting the batch.
	KeepGoing bool
}

// DecodeFile reads a single run log into a Record.
func (d *Decoder) DecodeFile(path string) (Record, error) {
	title, err := ParseTitle(path)
	if err != nil {
		return Record{}, &FileError{Path: path, Err: err}
	}
	body, err := d.ParseBody(path)
	if err != nil {
		return Record{}, &FileError{Path: path, Err: err}
	}
	return Record{Path: path, Title: title, Body: body}, nil
}

// Aggregate decodes paths in order. Without KeepGoing the first failure is
// returned and no records are produced. With KeepGoing the failures are
// joined into the returned error alongside the records that did decode.
func (d *Decoder) Aggregate(paths []string, opts AggregateOptions) ([]Record, error) {
	records := make([]Record, 0, len(paths))
	var errs []error

	for _, path := range paths {
		rec, err := d.DecodeFile(path)
		if err != nil {
			if !opts.KeepGoing {
				return nil, err
			}
			d.logger().Error("skipping run log", "file", path, "err", err)
			errs = append(errs, err)
			continue
		}
		d.logger().Info("decoded run log", "file", path, "run", rec.Title.Run, "counters", len(rec.Body.Counters))
		records = append(records, rec)
	}
	return records, errors.Join(errs...)
}
