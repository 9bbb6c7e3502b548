// SPDX-License-Identifier: AGPL-3.0-or-later

package runlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NotMeasured is the value of a header reading missing from the log.
const NotMeasured = "Not Measured"

// Unit suffixes appended to measured environmental readings.
const (
	PressureUnit    = " mbar"
	TemperatureUnit = " °C"
)

// ErrNoCounters reports a log without a "Counters" section.
var ErrNoCounters = errors.New("counter sentinel not found")

// Body holds the values read from the text of a run log.
type Body struct {
	Start        string `yaml:"start"`
	Stop         string `yaml:"stop"`
	Pressure     string `yaml:"pressure"`
	Temp         string `yaml:"temp"`
	DataFilesURL string `yaml:"data_files_url"`
	DataPlotsURL string `yaml:"data_plots_url"`
	Counters     []int  `yaml:"counters,flow"`
}

func newBody() Body {
	return Body{
		Start:        NotMeasured,
		Stop:         NotMeasured,
		Pressure:     NotMeasured,
		Temp:         NotMeasured,
		DataFilesURL: NotAvailable,
		DataPlotsURL: NotAvailable,
	}
}

// Decoder reads run-log bodies. The zero value is ready to use.
type Decoder struct {
	Logger *log.Logger
}

func (d *Decoder) logger() *log.Logger {
	if d == nil || d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// ParseBody opens path and decodes its header values and counter dump.
func (d *Decoder) ParseBody(path string) (Body, error) {
	f, err := os.Open(path) //nolint:gosec // run log path supplied by caller
	if err != nil {
		return Body{}, fmt.Errorf("opening run log: %w", err)
	}
	defer func() { _ = f.Close() }()

	return d.Decode(f)
}

// Decode reads a run-log body from r.
func (d *Decoder) Decode(r io.Reader) (Body, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Body{}, fmt.Errorf("reading run log: %w", err)
	}

	return d.resolve(classifyLines(raw))
}

// resolve is the second pass: keyword values by lookahead, then counters.
func (d *Decoder) resolve(ix lineIndex) (Body, error) {
	b := newBody()
	if !ix.hasSentinel() {
		return Body{}, ErrNoCounters
	}

	for i, cl := range ix.lines {
		switch cl.kind {
		case lineKeyword:
			d.applyHeader(&b, cl.keyword, ix.valueAfter(i))
		case lineData:
			if !ix.counterRegion(i) {
				continue
			}
			if v, ok := parseCounterToken(cl.text); ok {
				b.Counters = append(b.Counters, v)
			} else {
				d.logger().Debug("skipping counter row", "line", i+1, "text", cl.text)
			}
		}
	}
	return b, nil
}

func (d *Decoder) applyHeader(b *Body, keyword, value string) {
	if value == "" {
		d.logger().Debug("header without value", "keyword", keyword)
		return
	}

	switch keyword {
	case keyStart:
		b.Start = value
	case keyStop:
		b.Stop = value
	case keyPressure:
		b.Pressure = value + PressureUnit
	case keyTemp:
		b.Temp = value + TemperatureUnit
	case keyDataFiles:
		b.DataFilesURL = RewriteDataURL(value)
		if b.DataFilesURL != NotAvailable && !PlotsPreconditionMet(b.DataFilesURL) {
			d.logger().Warn("data URL too short for plots path", "url", b.DataFilesURL)
		}
		b.DataPlotsURL = PlotsURL(b.DataFilesURL)
	}
}
