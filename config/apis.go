package config

// ResolveApis returns, for every alias under the root config's `apis` key,
// the fully resolved per-API Config: the root's own resolved Config with
// that API's `styleguide` override folded on top. An API entry with no
// styleguide override simply inherits the root's resolved Config
// unchanged.
func ResolveApis(raw *RawConfig, loader SourceLoader) (root *Config, apis map[string]*Config, err error) {
	root, err = Resolve(raw, loader)
	if err != nil {
		return nil, nil, err
	}

	apis = make(map[string]*Config, len(raw.Apis))
	presets, presetErr := loadPresets()
	if presetErr != nil {
		return nil, nil, presetErr
	}

	for alias, api := range raw.Apis {
		if api.Styleguide == nil {
			apis[alias] = root
			continue
		}
		r := &resolver{
			presets:  presets,
			loader:   loader,
			memo:     make(map[string]*Config),
			visiting: make(map[string]bool),
		}
		override, resolveErr := r.resolveStyleguide("<api:"+alias+">", api.Styleguide)
		if resolveErr != nil {
			return nil, nil, resolveErr
		}
		merged := merge(root, override)
		applyRecommendedFallback(merged)
		apis[alias] = merged
	}

	return root, apis, nil
}
