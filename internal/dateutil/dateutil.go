// Package dateutil resolves "auto" date values in configuration fields.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length to prevent abuse.
const MaxFormatLength = 50

// defaultFormat is used for a bare "auto" value.
const defaultFormat = "YYYY-MM-DD"

// tokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var tokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// presets provides named shortcuts for common date formats.
var presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ResolveAuto handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" resolves to the current date in YYYY-MM-DD format
//   - "auto:FORMAT" resolves using a token format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset" resolves using a named preset (iso, european, us, long)
//   - any other value is returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveAuto(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := defaultFormat
	switch {
	case lower == "auto":
		// keep default
	case strings.HasPrefix(lower, "auto:"):
		format = value[len("auto:"):]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := presets[strings.ToLower(format)]; ok {
			format = preset
		}
	default:
		// Values like "autograph" are not auto syntax - passthrough.
		return value, nil
	}

	goFmt, err := parseFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}

// parseFormat converts a token format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Non-token characters are
// preserved as literals.
func parseFormat(format string) (string, error) {
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 8)

	i := 0
	for i < len(format) {
		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}
