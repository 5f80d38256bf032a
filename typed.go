package envx

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Int returns the value of key parsed as a base-10 integer.
func (e *Env) Int(key string) (int, error) {
	return Parse[int](e.src, key)
}

// Int64 returns the value of key parsed as a base-10 64-bit integer.
func (e *Env) Int64(key string) (int64, error) {
	return Parse[int64](e.src, key)
}

// Uint64 returns the value of key parsed as a base-10 unsigned integer.
func (e *Env) Uint64(key string) (uint64, error) {
	return Parse[uint64](e.src, key)
}

// Float64 returns the value of key parsed as a floating point number.
func (e *Env) Float64(key string) (float64, error) {
	return Parse[float64](e.src, key)
}

// Duration returns the value of key parsed with time.ParseDuration,
// accepting values such as "15s" or "2h45m".
func (e *Env) Duration(key string) (time.Duration, error) {
	return Parse[time.Duration](e.src, key)
}

// URL returns the value of key parsed as a URL. An unset variable yields a
// MissingError; a malformed value yields a ParseError.
func (e *Env) URL(key string) (*url.URL, error) {
	raw, err := e.Required(key)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, ParseError{Key: key, Value: raw}
	}
	return u, nil
}

// UUID returns the value of key parsed as a canonical UUID. An unset
// variable yields a MissingError; a malformed value yields a ParseError.
func (e *Env) UUID(key string) (uuid.UUID, error) {
	raw, err := e.Required(key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ParseError{Key: key, Value: raw}
	}
	return id, nil
}
