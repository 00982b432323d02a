// File: lixenwraith/env/doc.go

// Package env provides thread-safe, cached access to process configuration
// values that may come from the live environment or from registered
// override files.
//
// Lookups prefer the live process environment. Names missing from the
// environment fall back to the override files registered with
// AddOverridePath, consulted in registration order. Every result, including
// "not found", is memoized so repeated lookups are cheap; registering a new
// override file clears the cache so later lookups see the new source.
//
// Override files default to a plain line format:
//
//	KEY=VALUE
//
// Everything before the first '=' is the key and everything after it is the
// value, kept verbatim (no quoting, comments or escapes). Lines without '='
// are ignored. An empty value marks the variable as explicitly unset rather
// than set-to-empty-string. Files with a recognized extension are parsed as
// structured formats instead: .toml/.tml, .json, .yaml/.yml and .env, with
// nested tables flattened into SCREAMING_SNAKE variable names.
//
// Quick Start:
//
//	env.AddOverridePath("/etc/myapp/overrides.env")
//
//	listen, ok := env.Get("MYAPP_LISTEN")
//	if !ok {
//	    listen = ":8080"
//	}
//	debug, _ := env.GetBool("MYAPP_DEBUG")
//
// Lookups never return an error: unreadable files, malformed lines and
// undecodable values all degrade to "not found", and supplying a default is
// the caller's job.
//
// Thread Safety:
// All operations are safe for concurrent use. A lookup that misses the
// cache performs file IO while holding the cache lock, which serializes
// concurrent cold lookups; the package is built for startup-time
// configuration reads, not hot paths.
package env
