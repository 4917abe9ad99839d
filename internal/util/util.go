package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FormatClock renders a number of seconds as HH:MM:SS. Hours are not capped at 24.
func FormatClock(totalSeconds int) string {
	sign := ""
	if totalSeconds < 0 {
		sign = "-"
		totalSeconds = -totalSeconds
	}

	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// NormalizeClock validates a time of day given as HH:MM or HH:MM:SS and
// returns it as HH:MM:SS.
func NormalizeClock(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", errors.Errorf("invalid time %q: want HH:MM or HH:MM:SS", value)
	}

	limits := []int{23, 59, 59}
	fields := []int{0, 0, 0}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || len(part) > 2 || n < 0 || n > limits[i] {
			return "", errors.Errorf("invalid time %q", value)
		}
		fields[i] = n
	}

	return fmt.Sprintf("%02d:%02d:%02d", fields[0], fields[1], fields[2]), nil
}

// FormatDecimal renders v with the given number of places using the
// Brazilian separators, e.g. 1234.5 -> "1.234,50".
func FormatDecimal(v float64, places int) string {
	if places < 0 {
		places = 0
	}

	neg := v < 0
	raw := strconv.FormatFloat(math.Abs(v), 'f', places, 64)

	intPart, fracPart, _ := strings.Cut(raw, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	out := grouped.String()
	if fracPart != "" {
		out += "," + fracPart
	}
	if neg && strings.Trim(out, "0.,") != "" {
		out = "-" + out
	}

	return out
}

// FormatCurrency renders v as Brazilian reais, e.g. "R$ 290,00".
func FormatCurrency(v float64) string {
	return "R$ " + FormatDecimal(v, 2)
}
