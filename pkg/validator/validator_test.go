package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneColorPattern(t *testing.T) {
	cases := []struct {
		name  string
		color string
		valid bool
	}{
		{"uppercase hex", "#3498DB", true},
		{"lowercase hex", "#3498db", true},
		{"mixed case hex", "#3498Db", true},
		{"named color", "blue", false},
		{"missing hash", "3498DB", false},
		{"too short", "#12345", false},
		{"too long", "#1234567", false},
		{"non-hex digits", "#GGGGGG", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, zoneColorPattern.MatchString(tc.color))
		})
	}
}
