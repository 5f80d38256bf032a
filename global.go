package envx

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// processEnv backs the package-level functions. It reads through OS(), so
// external mutation of the process environment is observed on every call.
var processEnv = New(OS())

// Required returns the raw value of key from the process environment.
// See Env.Required.
func Required(key string) (string, error) {
	return processEnv.Required(key)
}

// OrDefault returns the value of key from the process environment, or
// fallback when it is not set. See Env.OrDefault.
func OrDefault(key, fallback string) string {
	return processEnv.OrDefault(key, fallback)
}

// Bool interprets key from the process environment as a boolean.
// See Env.Bool.
func Bool(key string, fallback bool) bool {
	return processEnv.Bool(key, fallback)
}

// List splits the value of key from the process environment on commas.
// See Env.List.
func List(key string) ([]string, error) {
	return processEnv.List(key)
}

// Int returns key from the process environment parsed as an integer.
func Int(key string) (int, error) {
	return processEnv.Int(key)
}

// Int64 returns key from the process environment parsed as a 64-bit integer.
func Int64(key string) (int64, error) {
	return processEnv.Int64(key)
}

// Uint64 returns key from the process environment parsed as an unsigned integer.
func Uint64(key string) (uint64, error) {
	return processEnv.Uint64(key)
}

// Float64 returns key from the process environment parsed as a float.
func Float64(key string) (float64, error) {
	return processEnv.Float64(key)
}

// Duration returns key from the process environment parsed as a duration.
func Duration(key string) (time.Duration, error) {
	return processEnv.Duration(key)
}

// URL returns key from the process environment parsed as a URL.
func URL(key string) (*url.URL, error) {
	return processEnv.URL(key)
}

// UUID returns key from the process environment parsed as a UUID.
func UUID(key string) (uuid.UUID, error) {
	return processEnv.UUID(key)
}

// Parsed reads key from the process environment and converts it with the
// canonical parser for T. See Parse.
func Parsed[T Value](key string) (T, error) {
	return Parse[T](OS(), key)
}

// ParsedOrDefault reads key from the process environment, returning fallback
// when the variable is unset or unparseable. See ParseOrDefault.
func ParsedOrDefault[T Value](key string, fallback T) T {
	return ParseOrDefault[T](OS(), key, fallback)
}
