// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/runlog/internal/projection"
	"github.com/bartekus/runlog/internal/runlog"
)

// RenderSummary renders the records as a Markdown table, one row per run.
func RenderSummary(records []runlog.Record) string {
	headers := []string{"Run", "Chamber", "Layers", "HV", "Source", "Hole", "Events"}
	for _, nc := range NamedCounters {
		headers = append(headers, nc.Name+" (Hz)")
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		t := rec.Title
		rates, _ := Rates(rec.Body.Counters)
		row := []string{t.Run, t.Chamber, t.Layers, t.HVValue(), t.Source, t.HoleNumber(), t.Events}
		rows = append(rows, append(row, rates...))
	}

	var b strings.Builder
	b.WriteString(projection.RenderHeader(1, "Run Summary"))
	fmt.Fprintf(&b, "%d runs\n\n", len(records))
	b.WriteString(projection.RenderTable(headers, rows))
	return b.String()
}

// yamlRecord is a decoded record plus the rates the other renderers derive.
type yamlRecord struct {
	runlog.Record `yaml:",inline"`
	Rates         map[string]string `yaml:"rates"`
}

// RenderYAML renders the records, including their derived rates, as a YAML list.
func RenderYAML(records []runlog.Record) (string, error) {
	out := make([]yamlRecord, 0, len(records))
	for _, rec := range records {
		rates, _ := Rates(rec.Body.Counters)
		named := make(map[string]string, len(NamedCounters))
		for i, nc := range NamedCounters {
			named[nc.Name] = rates[i]
		}
		out = append(out, yamlRecord{Record: rec, Rates: named})
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshaling records: %w", err)
	}
	return string(data), nil
}
