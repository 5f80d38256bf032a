// Package envx provides typed access to process environment variables:
// required and defaulted lookups, canonical parsing into primitive types,
// boolean coercion with a fixed truthy token set, comma-separated lists,
// and human-readable memory sizes.
//
// The package never logs, never panics on bad input, and never caches:
// every call re-reads the live environment, so values set or unset by the
// hosting process are observed immediately.
//
// # Basic Usage
//
// Package-level functions read the process environment directly:
//
//	dsn, err := envx.Required("DATABASE_URL")
//	if err != nil {
//		return err
//	}
//
//	host := envx.OrDefault("HOST", "127.0.0.1")
//	debug := envx.Bool("DEBUG", false)
//	origins, err := envx.List("CORS_ORIGINS")
//
// Typed parsing uses the canonical parser for the target type:
//
//	port, err := envx.Parsed[int]("PORT")
//	timeout := envx.ParsedOrDefault[time.Duration]("TIMEOUT", 15*time.Second)
//
// Memory sizes accept KB, MB and GB suffixes with power-of-1024 multipliers:
//
//	limit, err := envx.ParseMemorySize("512MB") // 536870912
//
// # Sources
//
// All accessors are also available as methods on an Env bound to a Source,
// so tests can substitute a deterministic in-memory map instead of mutating
// real process state:
//
//	env := envx.New(envx.Map{"PORT": "8080"})
//	port, err := env.Int("PORT")
//
// Passing a nil Source to New binds the Env to the process environment.
//
// # Error Handling
//
// Fallible accessors return one of two error kinds: a MissingError when the
// variable is absent, or a ParseError when it is present but malformed.
// Both match their sentinel with errors.Is and expose the key and offending
// value through errors.As:
//
//	if _, err := envx.Required("API_KEY"); errors.Is(err, envx.ErrMissing) {
//		// variable not set
//	}
//
// The defaulting variants (OrDefault, ParsedOrDefault, Bool) swallow
// failures and return the caller-supplied fallback instead. This is their
// contract: callers wanting strict behavior use the non-defaulting
// variants. Note the asymmetry in Bool: a present but unrecognized value is
// false, not the fallback; only an unset variable yields the fallback.
package envx
