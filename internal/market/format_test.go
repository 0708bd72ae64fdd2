package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLongDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2025-01-17", want: "January 17, 2025"},
		{in: "2025-12-05", want: "December 05, 2025"},
		{in: "not-a-date", want: "not-a-date"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLongDate(tt.in), "input %q", tt.in)
	}
}

func TestFormatClock12(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "08:00", want: "8:00 AM"},
		{in: "08:00:00", want: "8:00 AM"},
		{in: "00:30", want: "12:30 AM"},
		{in: "12:00", want: "12:00 PM"},
		{in: "13:05", want: "1:05 PM"},
		{in: "23:59", want: "11:59 PM"},
		{in: "noon", want: "noon"},
		{in: "25:00", want: "25:00"},
		{in: "aa:bb", want: "aa:bb"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock12(tt.in), "input %q", tt.in)
	}
}

func TestClockOf(t *testing.T) {
	assert.Equal(t, "08:00:00", ClockOf("2025-01-17 08:00:00"))
	assert.Equal(t, "08:00", ClockOf("08:00"))
	assert.Equal(t, "", ClockOf(""))
}
