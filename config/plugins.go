package config

import (
	"fmt"
	"strings"

	"github.com/oasguard/oasguard/oaserrors"
	"github.com/oasguard/oasguard/pluginapi"
)

// ResolvedPlugins holds the plugin modules a Config's PluginIDs resolved
// to, keyed by plugin id, plus the rule ids they contributed under their
// namespace.
type ResolvedPlugins struct {
	ByID  map[string]*pluginapi.Plugin
	Rules map[string]*pluginapi.Plugin // namespaced rule id -> owning plugin
}

// ResolvePlugins loads every plugin named in cfg.PluginPaths, preferring
// an in-process registration (pluginapi.Lookup) and falling back to
// compiled-.so loading (pluginapi.Load) for filesystem paths. It then
// validates that every plugin-namespaced assertion predicate in
// cfg.Assertions names a function the plugin actually exports, per
// a fatal config error naming the missing function.
func ResolvePlugins(cfg *Config) (*ResolvedPlugins, error) {
	resolved := &ResolvedPlugins{
		ByID:  make(map[string]*pluginapi.Plugin),
		Rules: make(map[string]*pluginapi.Plugin),
	}

	for _, ref := range cfg.PluginPaths {
		plugin, err := loadOnePlugin(ref)
		if err != nil {
			return nil, err
		}
		resolved.ByID[plugin.ID] = plugin
		for name := range plugin.Rules {
			resolved.Rules[plugin.NamespacedRuleID(name)] = plugin
		}
	}

	for _, a := range cfg.Assertions {
		for predName := range a.Predicates {
			pluginID, fnName, ok := splitNamespaced(predName)
			if !ok {
				continue
			}
			plugin, found := resolved.ByID[pluginID]
			if !found {
				return nil, &oaserrors.ConfigError{
					Option:  "assertions",
					Value:   predName,
					Message: fmt.Sprintf("Plugin %s is not loaded", pluginID),
				}
			}
			if _, exported := plugin.Assertions[fnName]; !exported {
				return nil, &oaserrors.ConfigError{
					Option: "assertions",
					Value:  predName,
					Message: fmt.Sprintf(
						"Plugin %s doesn't export assertions function with name %s", pluginID, fnName),
				}
			}
		}
	}

	return resolved, nil
}

func loadOnePlugin(ref string) (*pluginapi.Plugin, error) {
	if plugin, ok := pluginapi.Lookup(ref); ok {
		return plugin, nil
	}
	plugin, err := pluginapi.Load(ref)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "plugins", Value: ref, Message: "loading plugin", Cause: err}
	}
	return plugin, nil
}

// splitNamespaced splits a "<pluginId>/<fn>" predicate name. Predicates
// with no "/" are built-in (defined, pattern, minLength, ...) and are not
// namespaced.
func splitNamespaced(predName string) (pluginID, fnName string, ok bool) {
	idx := strings.Index(predName, "/")
	if idx < 0 {
		return "", "", false
	}
	return predName[:idx], predName[idx+1:], true
}
