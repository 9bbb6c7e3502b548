// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"strings"

	"github.com/bartekus/runlog/internal/runlog"
)

// DittoMark stands in for a value repeated from the row above.
const DittoMark = `"`

// timestampUnitLen is the width of the zone suffix trimmed from Start/Stop.
const timestampUnitLen = 4

// dittoTracker remembers the last emitted value of one column.
type dittoTracker struct {
	prev string
	seen bool
}

func (d *dittoTracker) next(v string) string {
	if d.seen && v == d.prev {
		return DittoMark
	}
	d.prev, d.seen = v, true
	return v
}

// RenderCSV renders one header-less comma-separated row per record.
//
// Values are joined verbatim: the ditto mark is a bare quote character and
// must not be escaped.
func RenderCSV(records []runlog.Record, opts Options) string {
	var layers, hv dittoTracker

	var b strings.Builder
	for _, rec := range records {
		row := csvRow(rec)
		if opts.RemoveDuplicates {
			row[1] = layers.next(row[1])
			row[2] = hv.next(row[2])
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func csvRow(rec runlog.Record) []string {
	t, body := rec.Title, rec.Body
	rates, _ := Rates(body.Counters)

	row := []string{
		t.Run,
		t.Layers,
		t.HVValue(),
		t.Source,
		t.HoleNumber(),
	}
	row = append(row, rates...)
	return append(row,
		body.DataFilesURL,
		body.DataPlotsURL,
		trimTimestamp(body.Start),
		trimTimestamp(body.Stop),
		t.Events,
		strings.TrimSuffix(body.Pressure, runlog.PressureUnit),
		strings.TrimSuffix(body.Temp, runlog.TemperatureUnit),
	)
}

func trimTimestamp(ts string) string {
	if ts == runlog.NotMeasured || len(ts) < timestampUnitLen {
		return ts
	}
	return ts[:len(ts)-timestampUnitLen]
}
