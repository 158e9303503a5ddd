// Package pluginapi defines the contract a plugin exports and the two real
// ways a host process can obtain one: compiled-`.so` loading via the
// standard library's plugin package, or direct in-process registration.
package pluginapi

import "github.com/oasguard/oasguard/walker"

// AssertionFunc evaluates one named predicate against a subject value,
// returning a failure message (empty means the assertion passed).
type AssertionFunc func(value any, options map[string]any) (failureMessage string, err error)

// PreprocessorFunc rewrites a node before rule visitors see it.
type PreprocessorFunc func(node any) (any, error)

// DecoratorFunc rewrites a node for emission (bundling/dereferencing).
type DecoratorFunc func(node any) (any, error)

// Plugin is the shape a plugin module exports:
// { id, rules?, preprocessors?, decorators?, assertions?, configs? }.
type Plugin struct {
	ID            string
	Rules         map[string]*walker.Rule
	Preprocessors map[string]PreprocessorFunc
	Decorators    map[string]DecoratorFunc
	Assertions    map[string]AssertionFunc
	Configs       map[string]any
}

// NamespacedRuleID returns the namespaced id a plugin's rule is addressed
// by in configuration: "<pluginId>/<name>".
func (p *Plugin) NamespacedRuleID(name string) string {
	return p.ID + "/" + name
}
