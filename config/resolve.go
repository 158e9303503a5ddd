package config

import (
	"strings"

	"github.com/oasguard/oasguard/oaserrors"
)

// resolver drives the depth-first, memoized extends-chain fold: each
// distinct source (preset name, file path, or URL) is resolved at most
// once, and a source that is still being visited when it is requested
// again indicates a cycle.
type resolver struct {
	presets  map[string]*StyleguideConfig
	loader   SourceLoader
	memo     map[string]*Config
	visiting map[string]bool
}

// SourceLoader fetches and parses a non-preset extends/plugin target: a
// relative/absolute file path or an http(s) URL. Kept as an interface so
// tests can resolve extends chains without touching the filesystem or
// network.
type SourceLoader interface {
	LoadStyleguide(source string) (*StyleguideConfig, error)
}

// Resolve builds the final Config for a root config document. Relative
// extends paths are resolved by the loader implementation (for example
// FileLoader.BaseDir); this package treats extends targets as opaque keys.
func Resolve(raw *RawConfig, loader SourceLoader) (*Config, error) {
	presets, err := loadPresets()
	if err != nil {
		return nil, err
	}
	r := &resolver{
		presets:  presets,
		loader:   loader,
		memo:     make(map[string]*Config),
		visiting: make(map[string]bool),
	}

	root := &StyleguideConfig{
		Rules:         raw.Styleguide.Rules,
		Assertions:    raw.Styleguide.Assertions,
		Preprocessors: raw.Styleguide.Preprocessors,
		Decorators:    raw.Styleguide.Decorators,
		Extends:       append(append([]string{}, raw.Extends...), raw.Styleguide.Extends...),
		Plugins:       append(append([]string{}, raw.Plugins...), raw.Styleguide.Plugins...),
	}

	cfg, err := r.resolveStyleguide("<root>", root)
	if err != nil {
		return nil, err
	}

	// Any user-specified rule or extends anywhere — root or any API —
	// suppresses the recommended fallback.
	if !apisDefineRules(raw) {
		applyRecommendedFallback(cfg)
	}
	return cfg, nil
}

// ResolveStyleguide resolves a standalone styleguide (no surrounding root
// config document): its extends chain is folded the same way Resolve folds
// the root's, but no recommended fallback is synthesized — a bare
// styleguide with no rules stays empty.
func ResolveStyleguide(sg *StyleguideConfig, loader SourceLoader) (*Config, error) {
	presets, err := loadPresets()
	if err != nil {
		return nil, err
	}
	r := &resolver{
		presets:  presets,
		loader:   loader,
		memo:     make(map[string]*Config),
		visiting: make(map[string]bool),
	}
	return r.resolveStyleguide("<styleguide>", sg)
}

func apisDefineRules(raw *RawConfig) bool {
	for _, api := range raw.Apis {
		if api.Styleguide == nil {
			continue
		}
		if len(api.Styleguide.Rules) > 0 || len(api.Styleguide.Extends) > 0 {
			return true
		}
	}
	return false
}

// resolveStyleguide folds a styleguide's own extends chain (in listed
// order, each overriding the one before) and then folds the styleguide's
// own rules/assertions on top, which always win: a config's local rules
// take precedence over anything it extends. Applied at every level of
// the chain, not only the true root, since an extended config is itself a
// root relative to what it extends.
func (r *resolver) resolveStyleguide(key string, sg *StyleguideConfig) (*Config, error) {
	if r.visiting[key] {
		return nil, &oaserrors.ConfigError{Option: "extends", Value: key, Message: "circular extends chain detected"}
	}
	if cached, ok := r.memo[key]; ok {
		return cached, nil
	}
	r.visiting[key] = true
	defer delete(r.visiting, key)

	base := emptyConfig()
	if len(sg.Extends) > 0 {
		base.extendsUsed = true
	}
	for _, ext := range sg.Extends {
		parent, err := r.resolveSource(ext)
		if err != nil {
			return nil, err
		}
		base = merge(base, parent)
		if !isPresetName(ext) {
			base.ExtendPaths = dedupAppend(base.ExtendPaths, ext)
		}
	}

	own := emptyConfig()
	own.Rules = rulesFromStyleguide(sg)
	for _, a := range sg.Assertions {
		own.Assertions = append(own.Assertions, compileAssertion(a))
	}
	own.Preprocessors = append(own.Preprocessors, sg.Preprocessors...)
	own.Decorators = append(own.Decorators, sg.Decorators...)
	own.PluginIDs = append(own.PluginIDs, sg.Plugins...)
	own.PluginPaths = append(own.PluginPaths, sg.Plugins...)

	result := merge(base, own)
	r.memo[key] = result
	return result, nil
}

func (r *resolver) resolveSource(source string) (*Config, error) {
	if cached, ok := r.memo[source]; ok {
		return cached, nil
	}
	if preset, ok := r.presets[source]; ok {
		return r.resolveStyleguide(source, preset)
	}
	if r.loader == nil {
		return nil, &oaserrors.ConfigError{Option: "extends", Value: source, Message: "no source loader configured"}
	}
	sg, err := r.loader.LoadStyleguide(source)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "extends", Value: source, Message: "loading extends target", Cause: err}
	}
	return r.resolveStyleguide(source, sg)
}

func compileAssertion(a RawAssertion) CompiledAssertion {
	sev := RuleSeverity(strings.ToLower(a.Severity))
	if sev == "" {
		sev = SeverityError
	}
	id := a.AssertionID
	if id == "" {
		id = "assertion/" + a.Subject + "/" + a.Property
	}
	return CompiledAssertion{
		AssertionID: id,
		Subject:     a.Subject,
		Property:    a.Property,
		Message:     a.Message,
		Severity:    sev,
		Predicates:  a.Predicates,
	}
}

// applyRecommendedFallback implements the S5 scenario: when the resolved
// style guide names no extends anywhere in the chain and defines no rules
// of its own, silently fall back to the "recommended" preset rather than
// linting with an empty rule set.
func applyRecommendedFallback(cfg *Config) {
	if len(cfg.Rules) > 0 || cfg.extendsUsed {
		return
	}
	presets, err := loadPresets()
	if err != nil {
		return
	}
	recommended := presets["recommended"]
	if recommended == nil {
		return
	}
	fallback := rulesFromStyleguide(recommended)
	for id, entry := range fallback {
		cfg.Rules[id] = entry
	}
	cfg.RecommendedFallback = true
}
