// Package config provides type-safe loading of whole configuration structs
// from environment variables using Go generics. Each configuration type is
// parsed once and cached for subsequent calls.
//
// The package loads a .env file on first use (if one exists) and uses the
// caarlos0/env library to parse environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/envx/config"
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Username string `env:"DB_USER,required"`
//		Password string `env:"DB_PASS,required"`
//	}
//
//	func main() {
//		var db DatabaseConfig
//
//		// Load with error handling
//		if err := config.Load(&db); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&db)
//	}
//
// # Caching Behavior
//
// Each configuration type is parsed from the environment only once per
// process; later Loads of the same type receive a copy of the cached value,
// so every caller observes identical configuration regardless of
// environment changes in between:
//
//	var cfg1 DatabaseConfig
//	config.Load(&cfg1) // parses the environment
//
//	var cfg2 DatabaseConfig
//	config.Load(&cfg2) // cached, cfg1 == cfg2
//
// Different types are cached independently. For per-key read-through access
// without caching, use the parent envx package instead.
package config
