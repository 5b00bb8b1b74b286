package schemalabel

import (
	"math"
	"strconv"
	"strings"
)

// IsNumeric reports whether s is a finite number once surrounding white
// space is removed. Decimal, exponent and 0x/0o/0b integer forms are
// accepted; "Infinity" and "NaN" are not.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || !startsNumeric(s) {
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	}
	// prefixed integers are unsigned only
	if _, err := strconv.ParseUint(s, 0, 64); err == nil {
		return !strings.Contains(s, "_")
	}
	return false
}

// startsNumeric rejects spellings such as "inf" and "nan" that ParseFloat
// accepts but are not numbers.
func startsNumeric(s string) bool {
	c := s[0]
	if c == '+' || c == '-' {
		if len(s) == 1 {
			return false
		}
		c = s[1]
	}
	return (c >= '0' && c <= '9') || c == '.'
}
