package config

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/oasguard/oasguard/oaserrors"
	"github.com/oasguard/oasguard/problems"
)

// FileLoader resolves extends/plugin targets that are filesystem paths
// (relative to BaseDir) or http(s) URLs, backed by koanf.
type FileLoader struct {
	BaseDir string
	Client  *http.Client
}

func (l *FileLoader) httpClient() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return &http.Client{Timeout: 30 * time.Second}
}

// LoadStyleguide implements SourceLoader.
func (l *FileLoader) LoadStyleguide(source string) (*StyleguideConfig, error) {
	k := koanf.New(".")
	if isURL(source) {
		body, err := l.fetch(source)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(body), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", source, err)
		}
	} else {
		path := source
		if !filepath.IsAbs(path) {
			path = filepath.Join(l.BaseDir, path)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
	}

	var sg StyleguideConfig
	// An extended document may itself be a full root config (with a
	// `styleguide` key) or a bare styleguide body (just `rules`/`extends`
	// directly at the top level); koanf.Unmarshal of a missing key leaves
	// the field zero, so trying the nested form first is safe.
	var nested struct {
		Styleguide StyleguideConfig `koanf:"styleguide"`
	}
	if err := k.Unmarshal("", &nested); err == nil && len(nested.Styleguide.Rules) > 0 {
		sg = nested.Styleguide
		attachPredicates(sg.Assertions, k.Get("styleguide.assertions"))
	} else if err := k.Unmarshal("", &sg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	} else {
		attachPredicates(sg.Assertions, k.Get("assertions"))
	}
	return &sg, nil
}

// assertionCoreKeys are the fields of an assertion object that are part of
// its addressing/metadata; every other key on the object is a predicate.
var assertionCoreKeys = map[string]bool{
	"subject":     true,
	"property":    true,
	"message":     true,
	"severity":    true,
	"assertionId": true,
}

// attachPredicates copies each raw assertion object's non-core keys into
// the matching RawAssertion's Predicates map. Predicates are free-form
// keys on the assertion object (defined, pattern, minLength, casing,
// "<pluginId>/<fn>", ...) and so cannot be bound by struct tags; raw is
// the generically decoded form of the same assertions list the typed
// slice was unmarshaled from, index-aligned by construction.
func attachPredicates(assertions []RawAssertion, raw any) {
	list, ok := raw.([]any)
	if !ok {
		return
	}
	for i := range assertions {
		if i >= len(list) {
			return
		}
		obj, ok := list[i].(map[string]any)
		if !ok {
			continue
		}
		for key, val := range obj {
			if assertionCoreKeys[key] {
				continue
			}
			if assertions[i].Predicates == nil {
				assertions[i].Predicates = make(map[string]any)
			}
			assertions[i].Predicates[key] = val
		}
	}
}

func (l *FileLoader) fetch(url string) ([]byte, error) {
	resp, err := l.httpClient().Get(url)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "extends", Value: url, Message: "fetching remote config", Cause: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, &oaserrors.ConfigError{Option: "extends", Value: url, Message: fmt.Sprintf("remote config returned status %d", resp.StatusCode)}
	}
	return io.ReadAll(resp.Body)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// LoadRawConfig reads and parses a root config document (the
// oasguard.yaml equivalent) from a local file path.
func LoadRawConfig(path string) (*RawConfig, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "reading config file", Cause: err}
	}
	var raw RawConfig
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "decoding config file", Cause: err}
	}
	attachPredicates(raw.Styleguide.Assertions, k.Get("styleguide.assertions"))
	if apisRaw, ok := k.Get("apis").(map[string]any); ok {
		for alias, v := range apisRaw {
			api, found := raw.Apis[alias]
			if !found || api.Styleguide == nil {
				continue
			}
			m, _ := v.(map[string]any)
			sgRaw, _ := m["styleguide"].(map[string]any)
			if sgRaw != nil {
				attachPredicates(api.Styleguide.Assertions, sgRaw["assertions"])
			}
		}
	}
	return &raw, nil
}

// LoadIgnoreFile reads an ignore file, mapping sourceFile -> [pointer,
// ...], into the problems.Ignores shape the Collector expects.
func LoadIgnoreFile(path string) (problems.Ignores, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, &oaserrors.ConfigError{Option: "ignore", Value: path, Message: "reading ignore file", Cause: err}
	}
	var raw map[string][]string
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, &oaserrors.ConfigError{Option: "ignore", Value: path, Message: "decoding ignore file", Cause: err}
	}

	ignores := make(problems.Ignores, len(raw))
	for sourceURI, pointers := range raw {
		set := make(map[string]bool, len(pointers))
		for _, p := range pointers {
			set[p] = true
		}
		ignores[sourceURI] = set
	}
	return ignores, nil
}
