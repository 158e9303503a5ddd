package rules

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/oasguard/oasguard/config"
	"github.com/oasguard/oasguard/internal/jsonpath"
	"github.com/oasguard/oasguard/internal/maputil"
	"github.com/oasguard/oasguard/internal/naming"
	"github.com/oasguard/oasguard/pluginapi"
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/walker"
)

// CompileAssertion turns one resolved, declarative config.CompiledAssertion
// into a synthetic walker.Rule: the rule's single visitor
// is attached to the assertion's Subject NodeType, and on enter it reads
// Property (or the node itself) and evaluates every predicate in
// Predicates. plugins resolves any "<pluginId>/<fn>"-namespaced predicate;
// it may be nil if the assertion uses only built-in predicates.
func CompileAssertion(a config.CompiledAssertion, plugins *config.ResolvedPlugins) *walker.Rule {
	sevDefault := problems.SeverityError
	if a.Severity == config.SeverityWarn {
		sevDefault = problems.SeverityWarn
	}

	return &walker.Rule{
		ID:              a.AssertionID,
		SeverityDefault: sevDefault,
		Visitors: map[string]walker.Visitor{
			a.Subject: {Enter: assertionEnter(a, plugins)},
		},
	}
}

func assertionEnter(a config.CompiledAssertion, plugins *config.ResolvedPlugins) func(*walker.Context, any) {
	return func(ctx *walker.Context, node any) {
		value, present := propertyValue(node, a.Property)

		for _, name := range maputil.SortedKeys(a.Predicates) {
			opt := a.Predicates[name]
			failure, err := evalPredicate(name, value, present, opt, plugins)
			if err != nil {
				// A predicate that cannot be evaluated (bad regex, missing
				// plugin function at runtime, ...) is a RuleError concern,
				// not a document problem; the walker's caller is expected
				// to have already fatal-checked plugin predicates at
				// config-resolve time (see config.ResolvePlugins / S6).
				continue
			}
			if failure == "" {
				continue
			}
			message := a.Message
			if message == "" {
				message = failure
			}
			reportOnKey := !present
			if a.Property == "" {
				ctx.Report(message, reportOnKey)
				continue
			}
			ctx.ReportAt(ctx.Pointer()+"/"+a.Property, message, reportOnKey)
		}
	}
}

// propertyValue resolves the assertion's subject: the node itself when
// Property is empty, or the JSONPath-selected field value otherwise.
// Typed parser structs are round-tripped through encoding/json into a
// generic tree so internal/jsonpath (which operates on map[string]any/
// []any/scalar trees, not reflected struct fields) can select the value,
// the same document shape the bundler already treats as the canonical
// generic form of a parsed document.
func propertyValue(node any, property string) (value any, present bool) {
	if property == "" {
		return node, true
	}

	data, err := json.Marshal(node)
	if err != nil {
		return nil, false
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, false
	}

	expr := property
	if !strings.HasPrefix(expr, "$") {
		expr = "$." + expr
	}
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, false
	}
	results := path.Get(generic)
	if len(results) == 0 {
		return nil, false
	}
	return results[0], true
}

// evalPredicate evaluates one named predicate field against value,
// returning a non-empty failure message when the predicate fails, or an
// error if the predicate itself is malformed (bad regex, wrong option
// shape) or plugin-namespaced but unresolvable.
func evalPredicate(name string, value any, present bool, opt any, plugins *config.ResolvedPlugins) (string, error) {
	switch name {
	case "defined":
		want, _ := opt.(bool)
		if want && !present {
			return "must be defined", nil
		}
		if !want && present {
			return "must not be defined", nil
		}
		return "", nil

	case "pattern":
		pat, _ := opt.(string)
		if !present {
			return "", nil
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return "", fmt.Errorf("rules: compiling pattern %q: %w", pat, err)
		}
		str := fmt.Sprint(value)
		if !re.MatchString(str) {
			return fmt.Sprintf("must match the pattern %q", pat), nil
		}
		return "", nil

	case "minLength":
		n, ok := asInt(opt)
		if !ok || !present {
			return "", nil
		}
		if length(value) < n {
			return fmt.Sprintf("must be at least %d characters", n), nil
		}
		return "", nil

	case "maxLength":
		n, ok := asInt(opt)
		if !ok || !present {
			return "", nil
		}
		if length(value) > n {
			return fmt.Sprintf("must be at most %d characters", n), nil
		}
		return "", nil

	case "enum":
		options, _ := opt.([]any)
		if !present || len(options) == 0 {
			return "", nil
		}
		for _, o := range options {
			if fmt.Sprint(o) == fmt.Sprint(value) {
				return "", nil
			}
		}
		return fmt.Sprintf("must be one of %v", options), nil

	case "casing":
		style, _ := opt.(string)
		if !present {
			return "", nil
		}
		str := fmt.Sprint(value)
		want, ok := applyCasing(style, str)
		if !ok {
			return "", fmt.Errorf("rules: unknown casing style %q", style)
		}
		if str != want {
			return fmt.Sprintf("must be %s (e.g. %q)", style, want), nil
		}
		return "", nil

	case "const":
		if !present {
			return "", nil
		}
		if fmt.Sprint(value) != fmt.Sprint(opt) {
			return fmt.Sprintf("must equal %v", opt), nil
		}
		return "", nil

	case "ref":
		wantSuffix, _ := opt.(string)
		if !present {
			return "", nil
		}
		m, ok := value.(map[string]any)
		if !ok {
			return "must be a $ref", nil
		}
		ref, _ := m["$ref"].(string)
		if ref == "" {
			return "must be a $ref", nil
		}
		if wantSuffix != "" && !strings.Contains(ref, wantSuffix) {
			return fmt.Sprintf("$ref must point into %q", wantSuffix), nil
		}
		return "", nil

	case "schema":
		if !present {
			return "", nil
		}
		return evalJSONSchema(opt, value)

	default:
		pluginID, fnName, ok := splitNamespacedPredicate(name)
		if !ok {
			return "", fmt.Errorf("rules: unknown predicate %q", name)
		}
		if plugins == nil {
			return "", fmt.Errorf("rules: plugin %s is not loaded", pluginID)
		}
		plugin, found := plugins.ByID[pluginID]
		if !found {
			return "", fmt.Errorf("rules: plugin %s is not loaded", pluginID)
		}
		fn, exported := plugin.Assertions[fnName]
		if !exported {
			return "", fmt.Errorf("rules: plugin %s doesn't export assertions function with name %s", pluginID, fnName)
		}
		options, _ := opt.(map[string]any)
		return evalPluginFunc(fn, value, options)
	}
}

func evalPluginFunc(fn pluginapi.AssertionFunc, value any, options map[string]any) (string, error) {
	return fn(value, options)
}

// evalJSONSchema delegates schema-shaped predicate values to a real JSON
// Schema implementation rather than hand-rolled type checking, compiling
// opt (a map describing a JSON Schema document) on the fly and validating
// value against it.
func evalJSONSchema(opt any, value any) (string, error) {
	schemaDoc, ok := opt.(map[string]any)
	if !ok {
		return "", fmt.Errorf("rules: schema predicate requires an object value")
	}

	const resourceURL = "oasguard:assertion-schema.json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(resourceURL, schemaDoc); err != nil {
		return "", fmt.Errorf("rules: loading schema predicate: %w", err)
	}
	sch, err := c.Compile(resourceURL)
	if err != nil {
		return "", fmt.Errorf("rules: compiling schema predicate: %w", err)
	}
	if err := sch.Validate(value); err != nil {
		return err.Error(), nil
	}
	return "", nil
}

func splitNamespacedPredicate(name string) (pluginID, fnName string, ok bool) {
	idx := strings.Index(name, "/")
	if idx < 0 {
		return "", "", false
	}
	return name[:idx], name[idx+1:], true
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	default:
		return 0, false
	}
}

func length(value any) int {
	switch v := value.(type) {
	case string:
		return len([]rune(v))
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	default:
		return len([]rune(fmt.Sprint(v)))
	}
}

func applyCasing(style, s string) (string, bool) {
	switch style {
	case "camelCase":
		return naming.ToCamelCase(s), true
	case "PascalCase":
		return naming.ToPascalCase(s), true
	case "snake_case":
		return naming.ToSnakeCase(s), true
	case "kebab-case":
		return naming.ToKebabCase(s), true
	case "Title Case":
		return naming.ToTitleCase(s), true
	default:
		return "", false
	}
}
