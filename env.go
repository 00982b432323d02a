// File: lixenwraith/env/env.go
package env

import (
	"fmt"
	"os"
	"sync"
	"unicode/utf8"
)

// entry is a cached lookup result. found=false records a variable known to
// be absent, which is distinct from the name missing from the cache map
// entirely (not yet looked up).
type entry struct {
	value string
	found bool
}

// Env resolves variable lookups against the live process environment with
// fallback to registered override files, memoizing every result.
//
// The registry of override paths and the lookup cache are guarded by
// separate mutexes. The two are never held at the same time: registering a
// path mutates the registry first, then clears the cache as a self-contained
// second step.
type Env struct {
	pathMu sync.RWMutex
	paths  []string

	cacheMu sync.Mutex
	cache   map[string]entry
}

// New creates an Env with an empty override registry and cache.
func New() *Env {
	return &Env{
		cache: make(map[string]entry),
	}
}

var (
	defaultEnv  *Env
	defaultOnce sync.Once
)

// Default returns the process-wide Env used by the package-level functions.
// It is created lazily on first use and lives for the process lifetime.
func Default() *Env {
	defaultOnce.Do(func() {
		defaultEnv = New()
	})
	return defaultEnv
}

// AddOverridePath registers an override file to be consulted by lookups
// that miss both the cache and the live environment. Files are consulted in
// registration order. Registering the same path twice has no effect.
//
// Adding a path clears the whole lookup cache, including entries unrelated
// to the new file, so that subsequent lookups re-resolve against the new
// source. That makes this a slow call with locks and a linear scan; it is
// best made while initializing the application.
//
// AddOverridePath panics if path does not name an existing regular file.
func (e *Env) AddOverridePath(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		panic(fmt.Sprintf("env: override path %q is not a regular file", path))
	}

	e.pathMu.Lock()
	for _, p := range e.paths {
		if p == path {
			e.pathMu.Unlock()
			return
		}
	}
	e.paths = append(e.paths, path)
	e.pathMu.Unlock()

	// The registry lock is released before the cache lock is taken, so the
	// two guards are never held together.
	e.cacheMu.Lock()
	e.cache = make(map[string]entry)
	e.cacheMu.Unlock()
}

// OverridePaths returns a copy of the registered override file paths in
// registration order.
func (e *Env) OverridePaths() []string {
	e.pathMu.RLock()
	defer e.pathMu.RUnlock()

	out := make([]string, len(e.paths))
	copy(out, e.paths)
	return out
}

// lookup is the single resolution algorithm shared by every getter. It runs
// under the cache mutex for the whole operation: concurrent lookups
// serialize, and a cold lookup performs file IO while holding the lock.
//
// Amortized cost is O(1) thanks to the cache. A cold miss costs O(n*m) with
// n the number of registered files and m the lines scanned per file.
func (e *Env) lookup(name string) (string, bool) {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	// Attempt to pull from the cache, including cached absence.
	if ent, ok := e.cache[name]; ok {
		return ent.value, ent.found
	}

	// Not in cache, try the live process environment. An empty environment
	// value is a present empty string; the unset policy applies only to
	// override file entries.
	if val, ok := os.LookupEnv(name); ok {
		e.cache[name] = entry{value: val, found: true}
		return val, true
	}

	// Still nothing, walk the override files in registration order. The
	// registry is snapshotted under a brief read lock so the scan itself
	// only holds the cache lock.
	e.pathMu.RLock()
	paths := make([]string, len(e.paths))
	copy(paths, e.paths)
	e.pathMu.RUnlock()

	for _, path := range paths {
		if e.scanFile(path, name) {
			ent := e.cache[name]
			return ent.value, ent.found
		}
	}

	// Everything failed; record the absence so the next lookup is cheap.
	e.cache[name] = entry{}
	return "", false
}

// insert caches one override pair, applying the empty-value policy: an
// override entry with an empty value records the variable as explicitly
// unset. Called with the cache mutex held.
func (e *Env) insert(key, value string) {
	if value == "" {
		e.cache[key] = entry{}
	} else {
		e.cache[key] = entry{value: value, found: true}
	}
}

// GetRaw returns the value of a variable, preferring the live process
// environment over registered override files. The value bytes are returned
// unmodified and are not required to be valid UTF-8.
func (e *Env) GetRaw(name string) (string, bool) {
	return e.lookup(name)
}

// Get is GetRaw restricted to text: it reports not found when the resolved
// value is not valid UTF-8. A variable that exists with undecodable content
// is therefore indistinguishable from one that does not exist.
func (e *Env) Get(name string) (string, bool) {
	val, ok := e.lookup(name)
	if !ok || !utf8.ValidString(val) {
		return "", false
	}
	return val, true
}

// Package-level convenience wrappers over Default().

// AddOverridePath registers an override file with the process-wide Env.
// See Env.AddOverridePath.
func AddOverridePath(path string) { Default().AddOverridePath(path) }

// OverridePaths returns the override files registered with the process-wide
// Env.
func OverridePaths() []string { return Default().OverridePaths() }

// GetRaw looks up a variable in the process-wide Env. See Env.GetRaw.
func GetRaw(name string) (string, bool) { return Default().GetRaw(name) }

// Get looks up a variable in the process-wide Env. See Env.Get.
func Get(name string) (string, bool) { return Default().Get(name) }
