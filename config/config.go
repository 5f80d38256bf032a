package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg based on its `env` struct
// tags. A .env file in the working directory is loaded once per process
// before the first parse; its absence is not an error. Each configuration
// type is parsed only once: subsequent Loads of the same type receive a
// copy of the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Missing .env file is the normal case outside local development.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)

	cacheMu.RLock()
	cached, ok := cache[typ]
	cacheMu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to load %s from environment: %w", typ, err)
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	// A concurrent Load of the same type may have won the race; keep the
	// first stored value so repeated loads stay identical.
	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}
	cache[typ] = *cfg

	return nil
}

// MustLoad is Load that panics on failure, intended for application startup
// where a missing required variable should halt the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
