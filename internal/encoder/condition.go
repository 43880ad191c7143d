package encoder

import (
	"strings"

	"arm64asm/internal/asmerr"
)

// condValues maps condition-code suffixes (without the leading '.') to
// their 4-bit encoding.
var condValues = map[string]uint32{
	"eq": 0, "ne": 1, "hs": 2, "lo": 3,
	"hi": 8, "ls": 9, "ge": 10, "lt": 11,
	"gt": 12, "le": 13,
}

// CondValue resolves a condition suffix to its 4-bit value.
func CondValue(suffix string) (uint32, error) {
	v, ok := condValues[strings.ToLower(suffix)]
	if !ok {
		return 0, asmerr.Newf(asmerr.UnknownCondition, "unknown condition: %q", suffix)
	}
	return v, nil
}
