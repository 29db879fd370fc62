package money

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"letters", "abc", 0},
		{"decimal string", "12.5", 12.5},
		{"padded string", "  42 ", 42},
		{"negative string", "-3.25", -3.25},
		{"int", 7, 7},
		{"float", 2.75, 2.75},
		{"infinity string", "Infinity", 0},
		{"nan", math.NaN(), 0},
		{"positive inf", math.Inf(1), 0},
		{"whitespace only", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToNumber(tt.input))
		})
	}
}

func TestToNumber_Idempotent(t *testing.T) {
	for _, v := range []any{"", "12.5", "abc", nil, 3, "1e3", -0.5} {
		once := ToNumber(v)
		assert.Equal(t, once, ToNumber(once), "input %v", v)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "₹0.00"},
		{-5, "-₹5.00"},
		{5.5, "₹5.50"},
		{999, "₹999.00"},
		{1000, "₹1,000.00"},
		{100000, "₹1,00,000.00"},
		{1234567.891, "₹12,34,567.89"},
		{-98765432.1, "-₹9,87,65,432.10"},
		{-0.001, "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,180.00", FormatAmount(1180))
	assert.Equal(t, "0.00", FormatAmount(math.NaN()))
	assert.Equal(t, "-12,345.60", FormatAmount(-12345.6))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12.5", FormatNumber(12.5))
	assert.Equal(t, "100", FormatNumber(100))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestTodayISO(t *testing.T) {
	now := time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-07", TodayISO(now))
}
