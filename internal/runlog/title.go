// SPDX-License-Identifier: AGPL-3.0-or-later

/*
runlog - turns detector test-stand run logs into Elog entries and CSV summaries.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package runlog decodes test-stand run-log files: the metadata encoded in the
// file name, the header values and counter dump found in the file body, and the
// per-file record that combines both.
package runlog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleFieldCount is the number of dash-delimited segments in a run file name.
const titleFieldCount = 8

// eventsSuffixLen is the length of the "event.txt" unit text closing the last segment.
const eventsSuffixLen = len("event.txt")

// NoSource is the Source value for runs taken without a radiation source.
const NoSource = "NA"

// ErrMalformedFilename reports a file name with fewer than eight segments.
var ErrMalformedFilename = errors.New("malformed run file name")

var layerPositions = map[string]string{
	"L1":    "Bottom Layer",
	"L2":    "Top Layer",
	"L1+2":  "Both Layers",
	"L1+L2": "Both Layers",
}

var noSourceTokens = map[string]bool{
	"":         true,
	"na":       true,
	"none":     true,
	"nosource": true,
}

// Title is the metadata encoded in a run file name, e.g.
// r5-mcsc1-L1+2-h1-cd109-27s-3600V-5000event.txt.
type Title struct {
	Run           string `yaml:"run"`
	Chamber       string `yaml:"chamber"`
	Layers        string `yaml:"layers"`
	LayerPosition string `yaml:"layer_position"`
	Hole          string `yaml:"hole"`
	Source        string `yaml:"source"`
	Test          string `yaml:"test"`
	HV            string `yaml:"hv"`
	Events        string `yaml:"events"`
}

// ParseTitle decodes the final path segment of path by position.
func ParseTitle(path string) (Title, error) {
	name := filepath.Base(path)
	fields := strings.Split(name, "-")
	if len(fields) < titleFieldCount {
		return Title{}, fmt.Errorf("%w: %q has %d of %d segments", ErrMalformedFilename, name, len(fields), titleFieldCount)
	}

	t := Title{
		Run:     fields[0],
		Chamber: fields[1],
		Layers:  fields[2],
		Hole:    fields[3],
		Source:  isotope(fields[4]),
		Test:    fields[5],
		HV:      fields[6],
		Events:  trimEnd(fields[7], eventsSuffixLen),
	}
	t.LayerPosition = layerPositions[t.Layers]
	return t, nil
}

// HasSource reports whether the run was taken with a radiation source.
func (t Title) HasSource() bool {
	return t.Source != NoSource
}

// HVValue returns the bias voltage without its trailing unit letter.
func (t Title) HVValue() string {
	return trimEnd(t.HV, 1)
}

// HoleNumber returns the digits of the hole index ("h3" -> "3").
func (t Title) HoleNumber() string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, t.Hole)
}

// isotope turns an isotope token such as "cd109" into "Cd-109". Every letter
// run is title-cased on its own, so "am241be" keeps both symbols: "AmBe-241".
func isotope(token string) string {
	if noSourceTokens[strings.ToLower(token)] {
		return NoSource
	}

	caser := cases.Title(language.Und)
	var symbol, weight, run strings.Builder
	flush := func() {
		symbol.WriteString(caser.String(run.String()))
		run.Reset()
	}
	for _, r := range token {
		switch {
		case unicode.IsLetter(r):
			run.WriteRune(r)
			continue
		case unicode.IsDigit(r):
			weight.WriteRune(r)
		}
		flush()
	}
	flush()
	return symbol.String() + "-" + weight.String()
}

// trimEnd drops the last n bytes of s, returning "" when s is shorter.
func trimEnd(s string, n int) string {
	if len(s) < n {
		return ""
	}
	return s[:len(s)-n]
}
