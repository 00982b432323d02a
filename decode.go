// FILE: lixenwraith/env/decode.go
package env

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

// Snapshot returns the merged view of every variable the resolver can see:
// the live process environment layered over the override files in
// registration order. For names defined by more than one override file the
// earliest registered file wins, matching direct lookup order, and entries
// recorded as explicitly unset block later files. The shared lookup cache
// is neither consulted nor populated.
func (e *Env) Snapshot() map[string]string {
	result := make(map[string]string)
	unset := make(map[string]bool)

	for _, path := range e.OverridePaths() {
		for key, value := range readPairs(path) {
			if _, seen := result[key]; seen || unset[key] {
				continue
			}
			if value == "" {
				unset[key] = true
			} else {
				result[key] = value
			}
		}
	}

	// The environment wins over every file entry, including unset markers.
	for _, kv := range os.Environ() {
		if pos := strings.IndexByte(kv, '='); pos >= 0 {
			result[kv[:pos]] = kv[pos+1:]
		}
	}

	return result
}

// Scan decodes every variable carrying the given prefix into target, which
// must be a non-nil pointer to a struct or map. The prefix is stripped and
// the remainder lowercased to form the decode key, so with prefix "MYAPP_"
// the variable MYAPP_SERVER_PORT maps to a field tagged `env:"server_port"`.
// Decoding is weakly typed with duration and comma-separated slice hooks.
func (e *Env) Scan(prefix string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	values := make(map[string]any)
	for name, value := range e.Snapshot() {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, prefix))
		if key == "" {
			continue
		}
		values[key] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "env",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to scan prefix %q into %T: %w", prefix, target, err)
	}

	return nil
}

// Dump writes the current Snapshot to w in TOML format with keys sorted by
// the encoder. Useful for inspecting what the resolver would see.
func (e *Env) Dump(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(e.Snapshot()); err != nil {
		return fmt.Errorf("failed to marshal snapshot to TOML: %w", err)
	}
	return nil
}

// Snapshot returns the merged variable view of the process-wide Env. See
// Env.Snapshot.
func Snapshot() map[string]string { return Default().Snapshot() }

// Scan decodes prefixed variables from the process-wide Env. See Env.Scan.
func Scan(prefix string, target any) error { return Default().Scan(prefix, target) }

// Dump writes the process-wide Env snapshot to w. See Env.Dump.
func Dump(w io.Writer) error { return Default().Dump(w) }
