package envx

import (
	"strconv"
	"time"
)

// Value enumerates the types Parse can produce. The set is closed on
// purpose: each type maps to its canonical string parser in parseAs, with
// no reflection involved.
type Value interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		time.Duration
}

// Parse reads key from src and converts the value with the canonical parser
// for T: strconv for numeric and bool types, time.ParseDuration for
// durations. An absent variable yields a MissingError; a present but
// unconvertible value yields a ParseError carrying the raw value.
func Parse[T Value](src Source, key string) (T, error) {
	var zero T
	raw, ok := src.Lookup(key)
	if !ok {
		return zero, MissingError{Key: key}
	}
	v, err := parseAs[T](raw)
	if err != nil {
		return zero, ParseError{Key: key, Value: raw}
	}
	return v, nil
}

// ParseOrDefault reads key from src and returns fallback when the variable
// is unset or its value does not parse. Failures are swallowed by contract;
// use Parse when errors must surface.
func ParseOrDefault[T Value](src Source, key string, fallback T) T {
	v, err := Parse[T](src, key)
	if err != nil {
		return fallback
	}
	return v
}

func parseAs[T Value](raw string) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *bool:
		*p, err = strconv.ParseBool(raw)
	case *time.Duration:
		*p, err = time.ParseDuration(raw)
	case *int:
		var n int64
		n, err = strconv.ParseInt(raw, 10, 0)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(raw, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(raw, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(raw, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(raw, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(raw, 10, 0)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(raw, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(raw, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(raw, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(raw, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(raw, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(raw, 64)
	}
	return out, err
}
