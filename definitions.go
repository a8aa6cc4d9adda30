package grid

import (
	"strconv"
	"strings"
)

// Axis selects the rows or the columns of a grid.
type Axis uint8

const (
	AxisRow    Axis = iota // Row tracks, top to bottom
	AxisColumn             // Column tracks, left to right
)

// String returns "row" or "column".
func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// ParseLength parses a single size token. Tokens are trimmed and
// case-insensitive:
//
//	auto  size to content
//	*     Star(1)
//	2.5*  Star(2.5); the weight must be a positive finite number
//
// Anything else, including the empty string, yields Auto.
func ParseLength(token string) Value {
	s := strings.ToLower(strings.TrimSpace(token))
	switch {
	case s == "auto":
		return Auto()
	case s == "*":
		return Star(1)
	case strings.HasSuffix(s, "*"):
		weight, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
		if err != nil {
			return Auto()
		}
		return Star(weight)
	default:
		return Auto()
	}
}

// ParseDefinitions splits a comma-separated definition string into one
// Value per token, in order. The token count always equals the track
// count, so "" yields a single Auto track.
func ParseDefinitions(s string) []Value {
	tokens := strings.Split(s, ",")
	defs := make([]Value, len(tokens))
	for i, token := range tokens {
		defs[i] = ParseLength(token)
	}
	return defs
}

// FormatLength renders v in definition-string form. Fixed and percent
// values, which the parser does not produce, render as "3" and "50%".
func FormatLength(v Value) string {
	switch v.Unit {
	case UnitStar:
		if v.Amount == 1 {
			return "*"
		}
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "*"
	case UnitFixed:
		return strconv.Itoa(int(v.Amount))
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "%"
	default:
		return "auto"
	}
}

// FormatDefinitions renders defs as a comma-separated definition string.
func FormatDefinitions(defs []Value) string {
	parts := make([]string, len(defs))
	for i, v := range defs {
		parts[i] = FormatLength(v)
	}
	return strings.Join(parts, ",")
}
