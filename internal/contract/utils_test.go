package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPlainLabel tests influence score bucketing.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{1.2, CentralValue},
		{0.8, CentralValue},
		{0.79, ConnectedValue},
		{0.5, ConnectedValue},
		{0.49, PeripheralValue},
		{0.2, PeripheralValue},
		{0.19, FringeValue},
		{0, FringeValue},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetPlainLabel(tt.score), "score %v", tt.score)
	}
}

// TestGetColorLabel verifies colored labels keep the plain text inside.
func TestGetColorLabel(t *testing.T) {
	for _, score := range []float64{0.9, 0.6, 0.3, 0.1} {
		assert.Contains(t, GetColorLabel(score), GetPlainLabel(score))
	}
}

// TestTruncateName tests display name truncation.
func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{name: "short name untouched", input: "Alex", maxWidth: 10, expected: "Alex"},
		{name: "exact width untouched", input: "AlexPatel", maxWidth: 9, expected: "AlexPatel"},
		{name: "long name truncated", input: "Alexandria Fernandes", maxWidth: 10, expected: "Alexand..."},
		{name: "tiny width untouched", input: "Alexandria", maxWidth: 3, expected: "Alexandria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.maxWidth))
		})
	}
}

// TestParseBoolString tests boolean flag parsing.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
