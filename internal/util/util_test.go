package util

import (
	"testing"
)

func TestFormatClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{name: "zero", seconds: 0, expected: "00:00:00"},
		{name: "seconds only", seconds: 45, expected: "00:00:45"},
		{name: "hours minutes seconds", seconds: 3723, expected: "01:02:03"},
		{name: "over a day", seconds: 90000, expected: "25:00:00"},
		{name: "negative", seconds: -61, expected: "-00:01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatClock(tt.seconds); got != tt.expected {
				t.Fatalf("FormatClock(%d) = %s, want %s", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{name: "hours and minutes", value: "09:30", expected: "09:30:00"},
		{name: "full clock", value: "14:05:59", expected: "14:05:59"},
		{name: "single digits", value: "7:5", expected: "07:05:00"},
		{name: "surrounding spaces", value: " 23:59 ", expected: "23:59:00"},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "10:60", wantErr: true},
		{name: "not a number", value: "aa:bb", wantErr: true},
		{name: "too many parts", value: "10:00:00:00", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeClock(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeClock(%q) expected error, got %s", tt.value, got)
				}

				return
			}
			if err != nil {
				t.Fatalf("NormalizeClock(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.expected {
				t.Fatalf("NormalizeClock(%q) = %s, want %s", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		places   int
		expected string
	}{
		{name: "zero", value: 0, places: 2, expected: "0,00"},
		{name: "liters of one kilogram", value: 956, places: 2, expected: "956,00"},
		{name: "thousands", value: 1234.5, places: 2, expected: "1.234,50"},
		{name: "millions", value: 1234567.891, places: 3, expected: "1.234.567,891"},
		{name: "no places", value: 1500, places: 0, expected: "1.500"},
		{name: "negative", value: -2.5, places: 1, expected: "-2,5"},
		{name: "negative rounds to zero", value: -0.001, places: 2, expected: "0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDecimal(tt.value, tt.places); got != tt.expected {
				t.Fatalf("FormatDecimal(%v, %d) = %s, want %s", tt.value, tt.places, got, tt.expected)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	if got := FormatCurrency(290); got != "R$ 290,00" {
		t.Fatalf("FormatCurrency(290) = %s, want R$ 290,00", got)
	}
}
