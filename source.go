// File: lixenwraith/env/source.go
package env

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// detectFileFormat determines the override file format from its extension.
// Anything unrecognized is the plain KEY=VALUE line format.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".env":
		return "dotenv"
	default:
		return "plain"
	}
}

// scanFile feeds one override file into the cache and reports whether the
// requested name is resolved afterwards. Called with the cache mutex held.
// Every failure mode is non-fatal: a file that cannot be opened or parsed
// contributes nothing and the scan moves on to the next source.
func (e *Env) scanFile(path, name string) bool {
	if detectFileFormat(path) == "plain" {
		return e.scanPlain(path, name)
	}
	return e.scanStructured(path, name)
}

// scanPlain streams KEY=VALUE lines, caching every pair it passes on the
// way to the requested name. Keys cached as a byproduct serve later lookups
// without re-reading the file. Lines without a separator are skipped; a
// read error abandons the remainder of this file only. A final line without
// a trailing newline is still processed. Lines have no length limit.
func (e *Env) scanPlain(path, name string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		if pos := bytes.IndexByte(line, '='); pos >= 0 {
			e.insert(string(line[:pos]), string(trimLineEnding(line[pos+1:])))
			if _, ok := e.cache[name]; ok {
				return true
			}
		}
		if err != nil {
			// EOF, or the tail of the file was unreadable. Pairs already
			// cached stay cached.
			return false
		}
	}
}

// trimLineEnding strips a trailing LF or CRLF from a line.
func trimLineEnding(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}

// scanStructured parses a whole structured override file, flattens it into
// variable names, and caches every resulting pair. Called with the cache
// mutex held.
func (e *Env) scanStructured(path, name string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	pairs, err := parseStructured(detectFileFormat(path), data)
	if err != nil {
		return false
	}

	for key, value := range pairs {
		e.insert(key, value)
	}

	_, ok := e.cache[name]
	return ok
}

// parseStructured decodes one structured override file into raw variable
// pairs, before the empty-value policy is applied. Nested tables are
// flattened and their dot-paths mapped to variable names, so a TOML
// [server] table with port = 8080 yields SERVER_PORT=8080.
func parseStructured(format string, data []byte) (map[string]string, error) {
	if format == "dotenv" {
		return godotenv.UnmarshalBytes(data)
	}

	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}

	pairs := make(map[string]string)
	for path, value := range flattenMap(raw, "") {
		pairs[envName(path)] = formatValue(value)
	}
	return pairs, nil
}

// readPairs collects every pair one override file yields, before the
// empty-value policy is applied. Used by Snapshot, which builds its own
// merged view instead of going through the shared cache. Unreadable or
// unparsable files yield nothing.
func readPairs(path string) map[string]string {
	if detectFileFormat(path) != "plain" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		pairs, err := parseStructured(detectFileFormat(path), data)
		if err != nil {
			return nil
		}
		return pairs
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	pairs := make(map[string]string)
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		if pos := bytes.IndexByte(line, '='); pos >= 0 {
			pairs[string(line[:pos])] = string(trimLineEnding(line[pos+1:]))
		}
		if err != nil {
			return pairs
		}
	}
}
