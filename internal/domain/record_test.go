package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDurationInfo(t *testing.T) {
	tests := []struct {
		name          string
		totalMinutes  int
		wantFormatted string
	}{
		{"hours and minutes", 445, "7h 25m"},
		{"exact hours", 120, "2h"},
		{"minutes only", 45, "45m"},
		{"zero", 0, "0m"},
		{"negative clamped to zero", -30, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDurationInfo(tt.totalMinutes)
			assert.Equal(t, tt.wantFormatted, d.Formatted)
			assert.GreaterOrEqual(t, d.TotalMinutes, 0)
		})
	}
}

func TestUpstreamError(t *testing.T) {
	base := assert.AnError

	withStatus := NewUpstreamError("flight-offers", 502, base)
	assert.Contains(t, withStatus.Error(), "flight-offers")
	assert.Contains(t, withStatus.Error(), "502")
	assert.ErrorIs(t, withStatus, base)

	noStatus := NewUpstreamError("locations", 0, base)
	assert.NotContains(t, noStatus.Error(), "status")
	assert.ErrorIs(t, noStatus, base)
}
