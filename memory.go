package envx

import (
	"strconv"
	"strings"
)

// Power-of-1024 multipliers for the recognized memory size suffixes.
const (
	kibibyte int64 = 1024
	mebibyte       = kibibyte * 1024
	gibibyte       = mebibyte * 1024
)

// memorySizeKey is the key reported in the ParseError returned by
// ParseMemorySize, which parses a raw string rather than a named variable.
const memorySizeKey = "memory_size"

// ParseMemorySize converts a human-readable size such as "10MB" or "512KB"
// into a byte count. The input is trimmed and upper-cased first; recognized
// suffixes are KB, MB and GB with power-of-1024 multipliers, and a string
// without a suffix is a plain byte count. The numeric part must be a
// non-negative integer with no sign, decimal point or embedded whitespace.
// On failure the ParseError carries the normalized input, not the original.
func ParseMemorySize(input string) (int64, error) {
	normalized := strings.ToUpper(strings.TrimSpace(input))

	numPart := normalized
	multiplier := int64(1)
	switch {
	case strings.HasSuffix(normalized, "KB"):
		numPart, multiplier = normalized[:len(normalized)-2], kibibyte
	case strings.HasSuffix(normalized, "MB"):
		numPart, multiplier = normalized[:len(normalized)-2], mebibyte
	case strings.HasSuffix(normalized, "GB"):
		numPart, multiplier = normalized[:len(normalized)-2], gibibyte
	}

	// bitSize 63 keeps the int64 conversion below lossless.
	n, err := strconv.ParseUint(numPart, 10, 63)
	if err != nil {
		return 0, ParseError{Key: memorySizeKey, Value: normalized}
	}
	return int64(n) * multiplier, nil
}
