// SPDX-License-Identifier: AGPL-3.0-or-later

package runlog

import "strings"

// NotAvailable is the URL value used when a log carries no data file entry.
const NotAvailable = "NA"

// minPlotsSegments is the number of "/" segments a data URL needs for the
// plots insertions at positions 4 and 5 to land before the file name.
// "http://host/dir/run.raw" splits into five.
const minPlotsSegments = 5

// segmentRule is one step of a URL rewrite over its "/"-separated segments.
type segmentRule struct {
	name  string
	apply func(segs []string) []string
}

// legacyPathRules turn a DAQ host path such as
// "csc-daq.cern.ch:/data/daq/current/run5.raw" into an http URL.
var legacyPathRules = []segmentRule{
	dropSegment("daq"),
	dropSegment("current"),
	{name: "trim host separator", apply: func(segs []string) []string {
		segs[0] = trimEnd(segs[0], 1)
		return segs
	}},
	insertSegment(0, "http:/"),
}

// hostRules repair a "host.cern.ch:" artifact left in the authority part.
var hostRules = []segmentRule{
	{name: "strip cern.ch port colon", apply: func(segs []string) []string {
		for i := 0; i < len(segs) && i < 3; i++ {
			segs[i] = strings.Replace(segs[i], "cern.ch:", "cern.ch", 1)
		}
		return segs
	}},
}

// plotsRules map a data-file URL onto its plots browser page.
var plotsRules = []segmentRule{
	insertSegment(4, "Tests_results"),
	insertSegment(5, "Test_27_Cosmics"),
	{name: "plots directory", apply: func(segs []string) []string {
		last := len(segs) - 1
		segs[last] = trimEnd(segs[last], 4) + ".plots"
		return segs
	}},
	insertSegment(-1, "browse.html"),
}

func dropSegment(seg string) segmentRule {
	return segmentRule{name: "drop " + seg, apply: func(segs []string) []string {
		for i, s := range segs {
			if s == seg {
				return append(segs[:i:i], segs[i+1:]...)
			}
		}
		return segs
	}}
}

// insertSegment inserts seg at pos, clamped to the end; pos < 0 appends.
func insertSegment(pos int, seg string) segmentRule {
	return segmentRule{name: "insert " + seg, apply: func(segs []string) []string {
		at := pos
		if at < 0 || at > len(segs) {
			at = len(segs)
		}
		out := make([]string, 0, len(segs)+1)
		out = append(out, segs[:at]...)
		out = append(out, seg)
		return append(out, segs[at:]...)
	}}
}

func applyRules(url string, rules ...[]segmentRule) string {
	segs := strings.Split(url, "/")
	for _, set := range rules {
		for _, r := range set {
			segs = r.apply(segs)
		}
	}
	return strings.Join(segs, "/")
}

// RewriteDataURL normalises the raw "Data files" value to an absolute URL.
func RewriteDataURL(raw string) string {
	if raw == "" || raw == NotAvailable {
		return NotAvailable
	}
	if strings.HasPrefix(raw, "http") {
		return applyRules(raw, hostRules)
	}
	return applyRules(raw, legacyPathRules, hostRules)
}

// PlotsURL derives the plots browser URL from a data-file URL.
func PlotsURL(dataURL string) string {
	if dataURL == "" || dataURL == NotAvailable {
		return NotAvailable
	}
	return applyRules(dataURL, plotsRules)
}

// PlotsPreconditionMet reports whether dataURL is long enough for PlotsURL to
// place its directories inside the path rather than after the file name.
func PlotsPreconditionMet(dataURL string) bool {
	return len(strings.Split(dataURL, "/")) >= minPlotsSegments
}
