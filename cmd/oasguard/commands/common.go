// Package commands provides CLI command handlers for oasguard: one
// FlagSet, one Handle function, one Usage block per subcommand, all
// dispatched from main.go by the first positional argument.
package commands

import (
	"github.com/oasguard/oasguard/config"
	"github.com/oasguard/oasguard/internal/cliutil"
	"github.com/oasguard/oasguard/problems"
)

// Output format constants shared by every subcommand that renders lint
// results.
const (
	FormatStylish    = "stylish"
	FormatJSON       = "json"
	FormatCheckstyle = "checkstyle"
)

// Writef writes formatted output to w, logging to stderr on write failure
// rather than panicking.
var Writef = cliutil.Writef

// LoadConfig resolves a Config from configPath. An empty configPath falls
// back to a bare "recommended" extends, the same default-to-recommended
// behavior config.Config.RecommendedFallback documents for a styleguide
// with no rules of its own.
func LoadConfig(configPath string) (*config.Config, error) {
	raw := &config.RawConfig{Styleguide: config.StyleguideConfig{Extends: []string{"recommended"}}}
	var loader config.SourceLoader
	if configPath != "" {
		var err error
		raw, err = config.LoadRawConfig(configPath)
		if err != nil {
			return nil, err
		}
		loader = &config.FileLoader{BaseDir: dirOf(configPath)}
	}
	return config.Resolve(raw, loader)
}

// LoadIgnores reads an ignore file if ignorePath is non-empty, otherwise
// returns an empty set.
func LoadIgnores(ignorePath string) (problems.Ignores, error) {
	if ignorePath == "" {
		return nil, nil
	}
	return config.LoadIgnoreFile(ignorePath)
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

// ExitCode returns the process exit code a totals-driven run should use:
// 0 on success, 1 when any error was reported.
func ExitCode(totals problems.Totals) int {
	if totals.Errors > 0 {
		return 1
	}
	return 0
}

