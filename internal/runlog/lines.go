// SPDX-License-Identifier: AGPL-3.0-or-later

package runlog

import "strings"

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineKeyword
	lineData
)

// Header keywords, in matching priority order.
const (
	keyStart     = "Start"
	keyStop      = "Stop"
	keyPressure  = "Pressure"
	keyTemp      = "Temp"
	keyDataFiles = "Data files"
)

var headerKeywords = []string{keyStart, keyStop, keyPressure, keyTemp, keyDataFiles}

// counterSentinel marks the counter table; rows start two lines below it.
const (
	counterSentinel    = "Counters"
	counterStartOffset = 2
)

type classifiedLine struct {
	kind    lineKind
	keyword string
	text    string
}

// lineIndex is the first pass over a body: every line classified, and the
// position of the counter sentinel if any.
type lineIndex struct {
	lines    []classifiedLine
	sentinel int
}

func (ix lineIndex) hasSentinel() bool {
	return ix.sentinel >= 0
}

// counterRegion reports whether line i falls inside the counter table.
func (ix lineIndex) counterRegion(i int) bool {
	return ix.hasSentinel() && i >= ix.sentinel+counterStartOffset
}

// valueAfter returns the trimmed line following i, or "" at end of input.
func (ix lineIndex) valueAfter(i int) string {
	if i+1 >= len(ix.lines) {
		return ""
	}
	return strings.TrimSpace(ix.lines[i+1].text)
}

func classifyLines(raw []string) lineIndex {
	ix := lineIndex{
		lines:    make([]classifiedLine, 0, len(raw)),
		sentinel: -1,
	}
	for i, text := range raw {
		cl := classifyLine(text)
		if ix.sentinel < 0 && cl.kind == lineData && strings.Contains(text, counterSentinel) {
			ix.sentinel = i
		}
		ix.lines = append(ix.lines, cl)
	}
	return ix
}

// classifyLine applies the per-line rules. Keywords match as bare substrings
// anywhere in the line, so "Run Start time" is a Start header.
func classifyLine(text string) classifiedLine {
	text = strings.TrimRight(text, "\r\n")
	cl := classifiedLine{text: text}

	switch {
	case len(text) == 0:
		cl.kind = lineBlank
	case text[0] == '#' || (len(text) > 1 && text[1] == '#'):
		cl.kind = lineComment
	default:
		cl.kind = lineData
		for _, kw := range headerKeywords {
			if strings.Contains(text, kw) {
				cl.kind = lineKeyword
				cl.keyword = kw
				break
			}
		}
	}
	return cl
}
