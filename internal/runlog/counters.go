// SPDX-License-Identifier: AGPL-3.0-or-later

package runlog

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// parseCounterToken reads the counter value of one dump row: the last
// whitespace-separated token as an integer, falling back to its first run of
// digits (some rows carry a glued suffix like "1234)"). ok is false when the
// row has no usable value.
func parseCounterToken(row string) (value int, ok bool) {
	fields := strings.Fields(row)
	if len(fields) == 0 {
		return 0, false
	}
	token := fields[len(fields)-1]

	if v, err := strconv.Atoi(token); err == nil {
		return v, true
	}

	salvage := digitRun.FindString(token)
	if salvage == "" {
		return 0, false
	}
	v, err := strconv.Atoi(salvage)
	if err != nil {
		// Out of int range.
		return 0, false
	}
	return v, true
}
