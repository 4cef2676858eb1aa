// Package parse converts loosely typed request values (query strings, form
// fields, decoded JSON) into ints and bools with a caller supplied fallback.
package parse

import (
	"math"
	"strconv"
	"strings"
)

// Int converts v to an int. Strings are trimmed and parsed as base 10, floats
// are truncated toward zero and bools map to 1 and 0. Anything that cannot be
// converted yields def.
func Int(v any, def int) int {
	switch t := v.(type) {
	case int:
		return t
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		if t > math.MaxInt || t < math.MinInt {
			return def
		}
		return int(t)
	case uint:
		if t > math.MaxInt {
			return def
		}
		return int(t)
	case uint8:
		return int(t)
	case uint16:
		return int(t)
	case uint32:
		return int(t)
	case uint64:
		if t > math.MaxInt {
			return def
		}
		return int(t)
	case float32:
		return floatToInt(float64(t), def)
	case float64:
		return floatToInt(t, def)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 0)
		if err != nil {
			return def
		}
		return int(n)
	case []byte:
		return Int(string(t), def)
	}
	return def
}

func floatToInt(f float64, def int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	f = math.Trunc(f)
	if f >= math.MaxInt || f < math.MinInt {
		return def
	}
	return int(f)
}

// affirmatives are the lowercase words Bool accepts as true.
var affirmatives = map[string]struct{}{
	"true": {}, "yes": {}, "t": {}, "y": {}, "claro": {}, "aro": {}, "aha": {},
	"mhm": {}, "sure": {}, "yep": {}, "yup": {}, "sip": {}, "sipi": {}, "dale": {},
	"enga": {}, "check": {}, "100%": {}, "bet": {}, "ok": {}, "k": {},
	"letsago": {}, "fap": {}, "lemme_smash": {},
}

// Affirmatives returns the words Bool treats as true, in no particular order.
func Affirmatives() []string {
	out := make([]string, 0, len(affirmatives))
	for w := range affirmatives {
		out = append(out, w)
	}
	return out
}

// Bool converts v to a bool.
//
// Empty strings and nil return def. Strings made only of digits are true when
// their value is greater than zero. Any other string is true only if it is one
// of the affirmative words (case-insensitive), so unknown words are false, not
// def. Zero numbers return def; other numbers are true when positive.
func Bool(v any, def bool) bool {
	switch t := v.(type) {
	case nil:
		return def
	case bool:
		return t
	case string:
		return boolFromString(t, def)
	case []byte:
		return boolFromString(string(t), def)
	case float32:
		return boolFromFloat(float64(t), def)
	case float64:
		return boolFromFloat(t, def)
	}
	// remaining integer kinds
	n := Int(v, 0)
	if n == 0 {
		return def
	}
	return n > 0
}

func boolFromString(s string, def bool) bool {
	if s == "" {
		return def
	}
	if isNumeric(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		return f > 0
	}
	_, ok := affirmatives[strings.ToLower(s)]
	return ok
}

func boolFromFloat(f float64, def bool) bool {
	if f == 0 || math.IsNaN(f) {
		return def
	}
	return f > 0
}

// isNumeric reports whether s is all ASCII digits. Other Unicode digits are
// treated as words.
func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
