// File: lixenwraith/env/type.go
package env

import (
	"strconv"
	"time"
)

// GetBool interprets a variable as a boolean. The recognized spellings are
// off, OFF, FALSE, false and 0 for false, and on, ON, TRUE, true and 1 for
// true. Anything else, including an unset variable, reports not found.
func (e *Env) GetBool(name string) (bool, bool) {
	val, ok := e.Get(name)
	if !ok {
		return false, false
	}

	switch val {
	case "off", "OFF", "FALSE", "false", "0":
		return false, true
	case "on", "ON", "TRUE", "true", "1":
		return true, true
	default:
		return false, false
	}
}

// GetInt64 interprets a variable as an integer. Base is auto-detected, so
// "0x1F" and "0o17" parse as well as decimal. An unset or unparsable value
// reports not found.
func (e *Env) GetInt64(name string) (int64, bool) {
	val, ok := e.Get(name)
	if !ok {
		return 0, false
	}

	i, err := strconv.ParseInt(val, 0, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// GetFloat64 interprets a variable as a float. An unset or unparsable value
// reports not found.
func (e *Env) GetFloat64(name string) (float64, bool) {
	val, ok := e.Get(name)
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// GetDuration interprets a variable as a time.Duration in Go duration
// syntax ("300ms", "2h45m"). An unset or unparsable value reports not
// found.
func (e *Env) GetDuration(name string) (time.Duration, bool) {
	val, ok := e.Get(name)
	if !ok {
		return 0, false
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, false
	}
	return d, true
}

// GetOr returns the decoded value of a variable, or fallback when it is
// unset or not valid text.
func (e *Env) GetOr(name, fallback string) string {
	if val, ok := e.Get(name); ok {
		return val
	}
	return fallback
}

// GetBool looks up a boolean variable in the process-wide Env. See
// Env.GetBool.
func GetBool(name string) (bool, bool) { return Default().GetBool(name) }

// GetInt64 looks up an integer variable in the process-wide Env. See
// Env.GetInt64.
func GetInt64(name string) (int64, bool) { return Default().GetInt64(name) }

// GetFloat64 looks up a float variable in the process-wide Env. See
// Env.GetFloat64.
func GetFloat64(name string) (float64, bool) { return Default().GetFloat64(name) }

// GetDuration looks up a duration variable in the process-wide Env. See
// Env.GetDuration.
func GetDuration(name string) (time.Duration, bool) { return Default().GetDuration(name) }

// GetOr looks up a variable in the process-wide Env, falling back to the
// given default. See Env.GetOr.
func GetOr(name, fallback string) string { return Default().GetOr(name, fallback) }
