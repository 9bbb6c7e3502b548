// SPDX-License-Identifier: AGPL-3.0-or-later

/*
runlog - turns detector test-stand run logs into Elog entries and CSV summaries.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package report renders decoded run logs as Elog entries, CSV rows, Markdown
// summaries and YAML dumps. Renderers are pure: the same records and options
// always produce the same bytes.
package report

import (
	"strconv"

	"github.com/bartekus/runlog/internal/runlog"
)

// Options are the rendering switches shared by all renderers.
type Options struct {
	// HTML wraps Elog blocks in <pre>, bolds titles and links URLs.
	HTML bool
	// RemoveDuplicates replaces a CSV Layers or HV value equal to the one
	// above it with a ditto mark.
	RemoveDuplicates bool
}

// acquisitionWindow is the counter integration time in seconds.
const acquisitionWindow = 10.0

// NamedCounter is a counter dump entry reported as a rate.
type NamedCounter struct {
	Name  string
	Index int
}

// NamedCounters are the dump rows reported in every output, in column order.
var NamedCounters = []NamedCounter{
	{Name: "ALCT", Index: 0},
	{Name: "CLCT", Index: 20},
	{Name: "TMB", Index: 32},
}

// Rates returns the NamedCounters rates in Hz, one decimal. A dump too short
// for any named index yields NotMeasured for all of them.
func Rates(counters []int) (rates []string, measured bool) {
	rates = make([]string, len(NamedCounters))
	for _, nc := range NamedCounters {
		if nc.Index >= len(counters) {
			for i := range rates {
				rates[i] = runlog.NotMeasured
			}
			return rates, false
		}
	}
	for i, nc := range NamedCounters {
		rates[i] = strconv.FormatFloat(float64(counters[nc.Index])/acquisitionWindow, 'f', 1, 64)
	}
	return rates, true
}
