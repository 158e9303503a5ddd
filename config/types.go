// Package config implements the configuration resolver (component G): it
// merges a cascade of style-guide configs (extends chains, plugins,
// per-API overrides, assertions) into a final rule set bound to the
// walker.
package config

// RuleSeverity is a rule's configured severity, including "off" to
// disable an inherited rule.
type RuleSeverity string

const (
	SeverityError RuleSeverity = "error"
	SeverityWarn  RuleSeverity = "warn"
	SeverityOff   RuleSeverity = "off"
)

// RuleEntry is one rule's resolved configuration.
type RuleEntry struct {
	Severity RuleSeverity
	Options  map[string]any
}

// RawAssertion is a declarative assertion as written in a config file.
type RawAssertion struct {
	Subject     string         `koanf:"subject"`
	Property    string         `koanf:"property"`
	Message     string         `koanf:"message"`
	Severity    string         `koanf:"severity"`
	AssertionID string         `koanf:"assertionId"`
	Predicates  map[string]any `koanf:"-"`
}

// StyleguideConfig is the `styleguide` key of a config file, also usable
// standalone as the body of an extended config document.
type StyleguideConfig struct {
	Rules         map[string]any `koanf:"rules"`
	Assertions    []RawAssertion `koanf:"assertions"`
	Preprocessors []string       `koanf:"preprocessors"`
	Decorators    []string       `koanf:"decorators"`
	Extends       []string       `koanf:"extends"`
	Plugins       []string       `koanf:"plugins"`
}

// APIConfig is one entry of the top-level `apis` mapping.
type APIConfig struct {
	Root       string            `koanf:"root"`
	Styleguide *StyleguideConfig `koanf:"styleguide"`
}

// RawConfig is the parsed shape of a root config file (`redocly.yaml`
// equivalent).
type RawConfig struct {
	Apis         map[string]APIConfig `koanf:"apis"`
	Styleguide   StyleguideConfig     `koanf:"styleguide"`
	Extends      []string             `koanf:"extends"`
	Plugins      []string             `koanf:"plugins"`
	Theme        map[string]any       `koanf:"theme"`
	Organization string               `koanf:"organization"`
	Region       string               `koanf:"region"`
}

// CompiledAssertion is a RawAssertion after predicate compilation and
// default-severity resolution, ready to be attached to the walker as a
// synthetic rule.
type CompiledAssertion struct {
	AssertionID string
	Subject     string
	Property    string
	Message     string
	Severity    RuleSeverity
	Predicates  map[string]any
}

// Config is the fully resolved style guide bound to a walk.
type Config struct {
	Rules               map[string]RuleEntry
	Assertions          []CompiledAssertion
	Preprocessors       []string
	Decorators          []string
	PluginIDs           []string
	ExtendPaths         []string
	PluginPaths         []string
	RecommendedFallback bool
	extendsUsed         bool
}

func emptyConfig() *Config {
	return &Config{Rules: make(map[string]RuleEntry)}
}

// merge right-folds override on top of base: entries in override replace
// same-id entries from base; everything else from base is kept. This is
// the "later entries override earlier" extends-merge rule, applied
// both across an extends list and for the root's own rules (which always
// fold in last).
func merge(base, override *Config) *Config {
	out := emptyConfig()
	for id, entry := range base.Rules {
		out.Rules[id] = entry
	}
	for id, entry := range override.Rules {
		out.Rules[id] = entry
	}
	out.Assertions = append(append([]CompiledAssertion{}, base.Assertions...), override.Assertions...)
	out.Preprocessors = dedupAppend(base.Preprocessors, override.Preprocessors...)
	out.Decorators = dedupAppend(base.Decorators, override.Decorators...)
	out.PluginIDs = dedupAppend(base.PluginIDs, override.PluginIDs...)
	out.ExtendPaths = dedupAppend(base.ExtendPaths, override.ExtendPaths...)
	out.PluginPaths = dedupAppend(base.PluginPaths, override.PluginPaths...)
	out.extendsUsed = base.extendsUsed || override.extendsUsed
	return out
}

func dedupAppend(existing []string, items ...string) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, len(existing)+len(items))
	for _, e := range existing {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	for _, e := range items {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

func ruleEntryFromAny(v any) (RuleEntry, bool) {
	switch val := v.(type) {
	case string:
		return RuleEntry{Severity: RuleSeverity(val)}, true
	case map[string]any:
		entry := RuleEntry{Options: make(map[string]any)}
		for k, v := range val {
			if k == "severity" {
				if s, ok := v.(string); ok {
					entry.Severity = RuleSeverity(s)
				}
				continue
			}
			entry.Options[k] = v
		}
		return entry, true
	default:
		return RuleEntry{}, false
	}
}

func rulesFromStyleguide(sg *StyleguideConfig) map[string]RuleEntry {
	out := make(map[string]RuleEntry, len(sg.Rules))
	for id, raw := range sg.Rules {
		if entry, ok := ruleEntryFromAny(raw); ok {
			out[id] = entry
		}
	}
	return out
}
