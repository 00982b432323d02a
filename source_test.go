// File: lixenwraith/env/source_test.go
package env_test

import (
	"testing"

	"github.com/lixenwraith/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredOverrideFiles(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		e := env.New()
		e.AddOverridePath(writeOverride(t, t.TempDir(), "over.toml",
			"envtest_debug = \"on\"\n\n[envtest]\nhost = \"tomlhost\"\nport = 8080\n"+
				"ratio = 0.25\ntags = [\"a\", \"b\"]\ngone = \"\"\n"))

		val, ok := e.GetRaw("ENVTEST_HOST")
		require.True(t, ok)
		assert.Equal(t, "tomlhost", val)

		port, ok := e.GetInt64("ENVTEST_PORT")
		require.True(t, ok)
		assert.Equal(t, int64(8080), port)

		ratio, ok := e.GetFloat64("ENVTEST_RATIO")
		require.True(t, ok)
		assert.Equal(t, 0.25, ratio)

		// Arrays join with commas.
		tags, ok := e.GetRaw("ENVTEST_TAGS")
		require.True(t, ok)
		assert.Equal(t, "a,b", tags)

		debug, ok := e.GetBool("ENVTEST_DEBUG")
		require.True(t, ok)
		assert.True(t, debug)

		// The unset policy applies to structured values too.
		_, ok = e.GetRaw("ENVTEST_GONE")
		assert.False(t, ok)
	})

	t.Run("YAML", func(t *testing.T) {
		e := env.New()
		e.AddOverridePath(writeOverride(t, t.TempDir(), "over.yaml",
			"envtest:\n  mode: fast\n  retries: 3\n  flags:\n    - x\n    - y\n"))

		val, ok := e.GetRaw("ENVTEST_MODE")
		require.True(t, ok)
		assert.Equal(t, "fast", val)

		retries, ok := e.GetInt64("ENVTEST_RETRIES")
		require.True(t, ok)
		assert.Equal(t, int64(3), retries)

		flags, ok := e.GetRaw("ENVTEST_FLAGS")
		require.True(t, ok)
		assert.Equal(t, "x,y", flags)
	})

	t.Run("JSON", func(t *testing.T) {
		e := env.New()
		e.AddOverridePath(writeOverride(t, t.TempDir(), "over.json",
			`{"envtest": {"retries": 3, "rate": 2.5, "name": "jsonname"}}`))

		// Numbers keep their literal form via json.Number.
		retries, ok := e.GetInt64("ENVTEST_RETRIES")
		require.True(t, ok)
		assert.Equal(t, int64(3), retries)

		rate, ok := e.GetFloat64("ENVTEST_RATE")
		require.True(t, ok)
		assert.Equal(t, 2.5, rate)

		val, ok := e.GetRaw("ENVTEST_NAME")
		require.True(t, ok)
		assert.Equal(t, "jsonname", val)
	})

	t.Run("Dotenv", func(t *testing.T) {
		e := env.New()
		e.AddOverridePath(writeOverride(t, t.TempDir(), "over.env",
			"# a comment\nENVTEST_QUOTED=\"hello world\"\nENVTEST_PLAIN=bare\nENVTEST_GONE=\n"))

		// Dotenv quoting is honored, unlike the plain line format.
		val, ok := e.GetRaw("ENVTEST_QUOTED")
		require.True(t, ok)
		assert.Equal(t, "hello world", val)

		val, ok = e.GetRaw("ENVTEST_PLAIN")
		require.True(t, ok)
		assert.Equal(t, "bare", val)

		_, ok = e.GetRaw("ENVTEST_GONE")
		assert.False(t, ok)
	})

	t.Run("Unparsable File Is Skipped", func(t *testing.T) {
		dir := t.TempDir()
		e := env.New()
		e.AddOverridePath(writeOverride(t, dir, "bad.toml", "::: not toml :::\n"))
		e.AddOverridePath(writeOverride(t, dir, "plain", "ENVTEST_AFTER_BAD=still-works\n"))

		val, ok := e.GetRaw("ENVTEST_AFTER_BAD")
		require.True(t, ok)
		assert.Equal(t, "still-works", val)
	})

	t.Run("Unrecognized Extension Is Plain Format", func(t *testing.T) {
		e := env.New()
		// Plain format: no quoting, value taken verbatim after the first '='.
		e.AddOverridePath(writeOverride(t, t.TempDir(), "over.conf",
			"ENVTEST_VERBATIM=\"not unquoted\"\n"))

		val, ok := e.GetRaw("ENVTEST_VERBATIM")
		require.True(t, ok)
		assert.Equal(t, `"not unquoted"`, val)
	})
}
