package envx

import "strings"

// Tokens recognized as boolean true by Bool, compared case-insensitively.
var truthyTokens = map[string]struct{}{
	"true": {},
	"1":    {},
	"yes":  {},
	"on":   {},
}

// Env reads typed values from a Source. Construct it with New; the zero
// value has no source and is not usable.
type Env struct {
	src Source
}

// New returns an Env reading from src. A nil src falls back to the live
// process environment.
func New(src Source) *Env {
	if src == nil {
		src = OS()
	}
	return &Env{src: src}
}

// Required returns the raw value of key, or a MissingError when the
// variable is not set. The value is returned verbatim, without trimming or
// validation.
func (e *Env) Required(key string) (string, error) {
	v, ok := e.src.Lookup(key)
	if !ok {
		return "", MissingError{Key: key}
	}
	return v, nil
}

// OrDefault returns the raw value of key, or fallback verbatim when the
// variable is not set. It never fails.
func (e *Env) OrDefault(key, fallback string) string {
	if v, ok := e.src.Lookup(key); ok {
		return v
	}
	return fallback
}

// Bool interprets key as a boolean. A set variable is true iff its
// lower-cased value is exactly one of "true", "1", "yes" or "on"; any other
// value, including "false", "0" and garbage, yields false rather than
// fallback. Only an unset variable yields fallback.
func (e *Env) Bool(key string, fallback bool) bool {
	v, ok := e.src.Lookup(key)
	if !ok {
		return fallback
	}
	_, truthy := truthyTokens[strings.ToLower(v)]
	return truthy
}

// List splits the value of key on commas, trimming leading and trailing
// whitespace from each element. Empty segments are preserved, so a trailing
// comma yields a trailing empty element; order and duplicates match the
// input. Returns a MissingError when the variable is not set.
func (e *Env) List(key string) ([]string, error) {
	v, ok := e.src.Lookup(key)
	if !ok {
		return nil, MissingError{Key: key}
	}
	parts := strings.Split(v, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, nil
}
