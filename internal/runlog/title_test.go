// SPDX-License-Identifier: AGPL-3.0-or-later

package runlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTitle(t *testing.T) {
	got, err := ParseTitle("/data/logs/r5-mcsc1-L1+2-h1-cd109-27s-3600V-5000event.txt")
	require.NoError(t, err)

	assert.Equal(t, Title{
		Run:           "r5",
		Chamber:       "mcsc1",
		Layers:        "L1+2",
		LayerPosition: "Both Layers",
		Hole:          "h1",
		Source:        "Cd-109",
		Test:          "27s",
		HV:            "3600V",
		Events:        "5000",
	}, got)
	assert.Equal(t, "3600", got.HVValue())
	assert.Equal(t, "1", got.HoleNumber())
	assert.True(t, got.HasSource())
}

func TestParseTitle_LayerPosition(t *testing.T) {
	tests := []struct {
		layers string
		want   string
	}{
		{"L1", "Bottom Layer"},
		{"L2", "Top Layer"},
		{"L1+2", "Both Layers"},
		{"L1+L2", "Both Layers"},
		{"L3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.layers, func(t *testing.T) {
			got, err := ParseTitle("r1-c-" + tt.layers + "-h2-fe55-27s-3500V-100event.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.layers, got.Layers)
			assert.Equal(t, tt.want, got.LayerPosition)
		})
	}
}

func TestIsotope(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"cd109", "Cd-109"},
		{"CD109", "Cd-109"},
		{"fe55", "Fe-55"},
		{"cd", "Cd-"},
		{"cd_109", "Cd-109"},
		{"am241be", "AmBe-241"},
		{"AM241BE", "AmBe-241"},
		{"NA", NoSource},
		{"none", NoSource},
		{"", NoSource},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, isotope(tt.token))
		})
	}
}

func TestParseTitle_NoSource(t *testing.T) {
	got, err := ParseTitle("r12-mcsc1-L1-h0-na-cosmics-3600V-20000event.txt")
	require.NoError(t, err)
	assert.Equal(t, NoSource, got.Source)
	assert.False(t, got.HasSource())
	assert.Equal(t, "20000", got.Events)
	assert.Equal(t, "0", got.HoleNumber())
}

func TestParseTitle_Malformed(t *testing.T) {
	_, err := ParseTitle("r5-mcsc1-L1-h1-cd109.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedFilename)
}

func TestParseTitle_ExtraSegmentsIgnored(t *testing.T) {
	got, err := ParseTitle("r7-mcsc1-L2-h3-cd109-27s-3600V-5000event.txt-old")
	require.NoError(t, err)
	assert.Equal(t, "5000", got.Events)
	assert.Equal(t, "Top Layer", got.LayerPosition)
}
