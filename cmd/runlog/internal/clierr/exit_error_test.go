// SPDX-License-Identifier: AGPL-3.0-or-later

package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	base := errors.New("counter sentinel not found")

	assert.Equal(t, 0, ExitCodeOf(nil))
	assert.Equal(t, CodeFailure, ExitCodeOf(base))
	assert.Equal(t, CodeUsage, ExitCodeOf(Usage("loading config", base)))
	assert.Equal(t, CodeFailure, ExitCodeOf(Failure("decoding run logs", base)))
	assert.Equal(t, CodeUsage, ExitCodeOf(fmt.Errorf("outer: %w", Usage("bad flag", nil))))
	assert.Equal(t, CodeFailure, ExitCodeOf(New(0, "zero code")))
}

func TestExitError_Wrapping(t *testing.T) {
	base := errors.New("counter sentinel not found")
	err := Failure("decoding run logs", base)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "decoding run logs: counter sentinel not found", err.Error())
	assert.Equal(t, "bad flag", Usage("bad flag", nil).Error())
}
