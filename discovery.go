// FILE: lixenwraith/env/discovery.go
package env

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoveryOptions configures automatic override file discovery
type DiscoveryOptions struct {
	// Base name of the override file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths checked before the defaults
	Paths []string

	// Environment variable naming an explicit override file
	EnvVar string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults for an application name
func DefaultDiscoveryOptions(appName string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".env", ".conf"},
		EnvVar:        strings.ToUpper(appName) + "_OVERRIDES",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// Discover searches the configured locations for override files and
// registers every regular file it finds, in discovery order: the explicit
// environment variable first, then custom paths, the current directory and
// XDG config directories. It returns the paths it registered. Finding
// nothing is not an error - the environment alone may be enough.
func (e *Env) Discover(opts DiscoveryOptions) []string {
	var found []string

	register := func(path string) {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return
		}
		// The file can vanish between the check and the registration;
		// discovery stays non-fatal either way.
		defer func() { _ = recover() }()
		e.AddOverridePath(path)
		found = append(found, path)
	}

	// Explicit path from the environment (highest priority)
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			register(path)
		}
	}

	// Build search paths
	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths(opts.Name)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			register(filepath.Join(dir, opts.Name+ext))
		}
	}

	return found
}

// Discover searches for override files and registers them with the
// process-wide Env. See Env.Discover.
func Discover(opts DiscoveryOptions) []string { return Default().Discover(opts) }

// xdgConfigPaths returns XDG-compliant override search paths
func xdgConfigPaths(appName string) []string {
	var paths []string

	// XDG_CONFIG_HOME
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	// XDG_CONFIG_DIRS
	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		// Default system paths
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
