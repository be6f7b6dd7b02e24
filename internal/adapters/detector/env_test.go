package detector_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildgate/internal/adapters/detector"
)

func TestDetectEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
		noColor bool
	}{
		{name: "CI=true", ciValue: "true"},
		{name: "CI=1", ciValue: "1"},
		{name: "no CI", ciValue: ""},
		{name: "NO_COLOR", ciValue: "", noColor: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			if tt.noColor {
				t.Setenv("NO_COLOR", "1")
			}

			// A buffer is never a terminal.
			assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(&bytes.Buffer{}))
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{
			name:         "auto respects auto-detection (styled)",
			autoDetected: detector.ModeStyled,
			userFlag:     "auto",
			expected:     detector.ModeStyled,
		},
		{
			name:         "auto respects auto-detection (plain)",
			autoDetected: detector.ModePlain,
			userFlag:     "auto",
			expected:     detector.ModePlain,
		},
		{
			name:         "empty flag respects auto-detection",
			autoDetected: detector.ModeStyled,
			userFlag:     "",
			expected:     detector.ModeStyled,
		},
		{
			name:         "always overrides auto-detection",
			autoDetected: detector.ModePlain,
			userFlag:     "always",
			expected:     detector.ModeStyled,
		},
		{
			name:         "never overrides auto-detection",
			autoDetected: detector.ModeStyled,
			userFlag:     "never",
			expected:     detector.ModePlain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestIsValidFlag(t *testing.T) {
	for _, f := range []string{"", "auto", "always", "never"} {
		assert.True(t, detector.IsValidFlag(f), f)
	}
	assert.False(t, detector.IsValidFlag("tui"))
}
