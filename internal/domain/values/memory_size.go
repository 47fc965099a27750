package values

import (
	"fmt"
	"math"
	"strings"
)

// MemorySize represents an exact number of bytes.
// Enforces positive quantities; the zero value means "not set".
type MemorySize struct {
	bytes int64
}

// Memory units in bytes.
const (
	Byte     int64 = 1
	Kibibyte int64 = 1024 * Byte
	Mebibyte int64 = 1024 * Kibibyte
	Gibibyte int64 = 1024 * Mebibyte
	Tebibyte int64 = 1024 * Gibibyte
)

// unitMultipliers maps a unit suffix to its byte multiplier.
// A missing suffix defaults to mebibytes.
var unitMultipliers = map[string]int64{
	"":   Mebibyte,
	"b":  Byte,
	"k":  Kibibyte,
	"kb": Kibibyte,
	"m":  Mebibyte,
	"mb": Mebibyte,
	"g":  Gibibyte,
	"gb": Gibibyte,
	"t":  Tebibyte,
	"tb": Tebibyte,
}

// InvalidMemorySizeError indicates a memory quantity that could not be parsed.
type InvalidMemorySizeError struct {
	Text   string // Original input
	Reason string // Why parsing failed
}

func (e *InvalidMemorySizeError) Error() string {
	return fmt.Sprintf("invalid memory size %q: %s", e.Text, e.Reason)
}

// ParseMemorySize parses a human-friendly memory quantity such as "1024",
// "2048m" or "1g" into an exact byte count. The unit suffix is
// case-insensitive; without a suffix the value is read as mebibytes.
func ParseMemorySize(text string) (MemorySize, error) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return MemorySize{}, &InvalidMemorySizeError{Text: text, Reason: "empty input"}
	}

	pos := 0
	for pos < len(trimmed) && trimmed[pos] >= '0' && trimmed[pos] <= '9' {
		pos++
	}

	digits := trimmed[:pos]
	suffix := strings.TrimSpace(trimmed[pos:])

	if digits == "" {
		return MemorySize{}, &InvalidMemorySizeError{Text: text, Reason: "missing numeric part"}
	}

	var value int64
	for _, d := range digits {
		digit := int64(d - '0')
		if value > (math.MaxInt64-digit)/10 {
			return MemorySize{}, &InvalidMemorySizeError{Text: text, Reason: "value overflows int64"}
		}
		value = value*10 + digit
	}

	multiplier, ok := unitMultipliers[suffix]
	if !ok {
		return MemorySize{}, &InvalidMemorySizeError{
			Text:   text,
			Reason: fmt.Sprintf("unknown unit %q (expected one of b, k, kb, m, mb, g, gb, t, tb)", suffix),
		}
	}

	if value <= 0 {
		return MemorySize{}, &InvalidMemorySizeError{Text: text, Reason: "value must be positive"}
	}
	if value > math.MaxInt64/multiplier {
		return MemorySize{}, &InvalidMemorySizeError{Text: text, Reason: "value overflows int64"}
	}

	return MemorySize{bytes: value * multiplier}, nil
}

// MustParseMemorySize parses a memory quantity or panics (for tests/constants).
func MustParseMemorySize(text string) MemorySize {
	m, err := ParseMemorySize(text)
	if err != nil {
		panic(err)
	}
	return m
}

// MemorySizeOfMebibytes creates a MemorySize from whole mebibytes.
func MemorySizeOfMebibytes(mb int64) MemorySize {
	return MemorySize{bytes: mb * Mebibyte}
}

// Bytes returns the exact byte count.
func (m MemorySize) Bytes() int64 {
	return m.bytes
}

// Mebibytes returns the quantity in whole mebibytes, rounding down.
func (m MemorySize) Mebibytes() int64 {
	return m.bytes / Mebibyte
}

// IsZero returns true if this is the zero value.
func (m MemorySize) IsZero() bool {
	return m.bytes == 0
}

// Equals checks if two memory sizes are equal.
func (m MemorySize) Equals(other MemorySize) bool {
	return m.bytes == other.bytes
}

// String renders the quantity in the largest unit that divides it evenly,
// so that the result can be parsed back into an equal MemorySize.
func (m MemorySize) String() string {
	units := []struct {
		multiplier int64
		suffix     string
	}{
		{Tebibyte, "t"},
		{Gibibyte, "g"},
		{Mebibyte, "m"},
		{Kibibyte, "k"},
	}
	for _, u := range units {
		if m.bytes%u.multiplier == 0 && m.bytes/u.multiplier > 0 {
			return fmt.Sprintf("%d%s", m.bytes/u.multiplier, u.suffix)
		}
	}
	return fmt.Sprintf("%db", m.bytes)
}

// MarshalJSON implements json.Marshaler.
func (m MemorySize) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MemorySize) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid memory size JSON")
	}
	parsed, err := ParseMemorySize(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for goccy/go-yaml.
func (m MemorySize) MarshalYAML() (any, error) {
	return m.String(), nil
}
