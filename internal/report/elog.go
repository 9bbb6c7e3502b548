// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/bartekus/runlog/internal/runlog"
)

// RenderElog renders one logbook block per record, separated by blank lines.
func RenderElog(records []runlog.Record, opts Options) string {
	var b strings.Builder
	for _, rec := range records {
		if opts.HTML {
			writeElogHTML(&b, rec)
		} else {
			writeElogText(&b, rec)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ElogTitle is the headline of a record's logbook block, e.g.
// "Both Layers HV3600 (Cd-109 @ Hole #1) 5000 Events".
func ElogTitle(t runlog.Title) string {
	source := "(No Radiation Source)"
	if t.HasSource() {
		source = fmt.Sprintf("(%s @ Hole #%s)", t.Source, t.HoleNumber())
	}

	parts := make([]string, 0, 4)
	if t.LayerPosition != "" {
		parts = append(parts, t.LayerPosition)
	}
	parts = append(parts, "HV"+t.HVValue(), source, t.Events+" Events")
	return strings.Join(parts, " ")
}

type elogField struct {
	label string
	value string
}

func elogFields(rec runlog.Record) []elogField {
	fields := []elogField{
		{"Start", rec.Body.Start},
		{"Stop", rec.Body.Stop},
		{"Pressure", rec.Body.Pressure},
		{"Temperature", rec.Body.Temp},
	}

	rates, measured := Rates(rec.Body.Counters)
	for i, nc := range NamedCounters {
		v := rates[i]
		if measured {
			v += " Hz"
		}
		fields = append(fields, elogField{nc.Name + " Rate", v})
	}
	return fields
}

func writeElogText(b *strings.Builder, rec runlog.Record) {
	b.WriteString(ElogTitle(rec.Title) + "\n")
	for _, f := range elogFields(rec) {
		fmt.Fprintf(b, "%s: %s\n", f.label, f.value)
	}
	fmt.Fprintf(b, "Plots: %s\n", rec.Body.DataPlotsURL)
	fmt.Fprintf(b, "Data: %s\n", rec.Body.DataFilesURL)
}

func writeElogHTML(b *strings.Builder, rec runlog.Record) {
	b.WriteString("<pre>\n")
	fmt.Fprintf(b, "<b>%s</b>\n", html.EscapeString(ElogTitle(rec.Title)))
	for _, f := range elogFields(rec) {
		fmt.Fprintf(b, "%s: %s\n", f.label, html.EscapeString(f.value))
	}
	fmt.Fprintf(b, "Plots: %s\n", anchor(rec.Body.DataPlotsURL))
	fmt.Fprintf(b, "Data: %s\n", anchor(rec.Body.DataFilesURL))
	b.WriteString("</pre>\n")
}

func anchor(url string) string {
	if url == runlog.NotAvailable {
		return url
	}
	u := html.EscapeString(url)
	return fmt.Sprintf(`<a href="%s">%s</a>`, u, u)
}
