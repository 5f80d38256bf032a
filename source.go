package envx

import "os"

// Source supplies environment values by key. Implementations report whether
// the key was present, so absence can be distinguished from an empty value.
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(key string) (string, bool)

// Lookup implements the Source interface.
func (f SourceFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// Map is an in-memory Source backed by a plain map. It is intended for
// tests, where mutating the real process environment would leak state
// between parallel test cases.
type Map map[string]string

// Lookup implements the Source interface.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// OS returns a Source backed by the live process environment. Every Lookup
// re-reads the current value; nothing is cached, so external mutation is
// observed on the next call.
func OS() Source {
	return osSource{}
}

type osSource struct{}

func (osSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
