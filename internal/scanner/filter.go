// SPDX-License-Identifier: AGPL-3.0-or-later

package scanner

import (
	"sort"
	"strconv"
	"strings"
)

// FilterOptions defines criteria for selecting run logs.
type FilterOptions struct {
	// Prefix is the leading character of the run segment (e.g. "r" in "r12-...").
	Prefix string

	// IncludeExtensions is a list of extensions to include (e.g., ".txt").
	// If empty, all extensions are included.
	IncludeExtensions []string

	// MaxFiles keeps only the first MaxFiles runs after sorting. Zero means no limit.
	MaxFiles int
}

// DefaultFilterOptions returns the naming convention of the test stand logs.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Prefix:            "r",
		IncludeExtensions: []string{".txt"},
	}
}

// RunNumber extracts the run number from a name like "r12-mcsc1-...txt".
// ok is false when the first segment is not the prefix followed by digits.
func RunNumber(name, prefix string) (run int, ok bool) {
	first, _, _ := strings.Cut(name, "-")
	digits, found := strings.CutPrefix(first, prefix)
	if !found || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FilterFiles applies the filter options to a list of file names.
// It returns a new slice ordered by run number, ties broken by name.
func FilterFiles(names []string, opts FilterOptions) []string {
	if len(names) == 0 {
		return nil
	}

	type candidate struct {
		name string
		run  int
	}

	var kept []candidate
	for _, name := range names {
		if !shouldIncludeExtension(name, opts.IncludeExtensions) {
			continue
		}
		run, ok := RunNumber(name, opts.Prefix)
		if !ok {
			continue
		}
		kept = append(kept, candidate{name: name, run: run})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].run != kept[j].run {
			return kept[i].run < kept[j].run
		}
		return kept[i].name < kept[j].name
	})

	if opts.MaxFiles > 0 && len(kept) > opts.MaxFiles {
		kept = kept[:opts.MaxFiles]
	}

	filtered := make([]string, 0, len(kept))
	for _, c := range kept {
		filtered = append(filtered, c.name)
	}
	return filtered
}

// shouldIncludeExtension returns true if length is 0 OR path matches one extension.
func shouldIncludeExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
