// Package lint is the entry point for linting one document: it binds a
// resolved config.Config's rules (built-ins, compiled assertions,
// plugin-exported rules) into the concrete walker.Rule set a Walker
// runs, opens a root document through the parser package, and drives
// one walk per document. This is the glue the config, walker, rules,
// and problems packages are wired together through: config does not
// import walker or rules, and this package turns a resolved config into
// the rules a walker runs.
package lint

import (
	"fmt"
	"strings"

	"github.com/oasguard/oasguard/config"
	"github.com/oasguard/oasguard/internal/locate"
	"github.com/oasguard/oasguard/internal/maputil"
	"github.com/oasguard/oasguard/parser"
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/rules"
	"github.com/oasguard/oasguard/schema"
	"github.com/oasguard/oasguard/walker"
)

// Options configures a single document lint.
type Options struct {
	// Ignores suppresses problems at specific (source, pointer) pairs.
	Ignores problems.Ignores
	// Logger receives the parser's debug/warn output during parsing.
	Logger parser.Logger
	// ResolveRefs enables the parser's eager external $ref inlining, the
	// prerequisite for no-unresolved-refs to find anything (see
	// rules.NewNoUnresolvedRefsRule's doc comment and DESIGN.md's
	// refresolver/walker note).
	ResolveRefs bool
}

// Result is one document's lint outcome.
type Result struct {
	SourceURI string
	Version   string
	Problems  []problems.Problem
	Totals    problems.Totals
	SourceMap *parser.SourceMap
	// RuleErrors counts rule callbacks that failed and were contained
	// during the walk (the walk itself completed).
	RuleErrors int
}

// BindRules resolves cfg's configured severities, its compiled assertions,
// and any plugin-exported rules into the concrete walker.Rule slice a
// Walker is constructed with. A rule id configured "off" — including a
// built-in a preset would otherwise enable — is excluded entirely; every
// other configured severity overrides the rule's own SeverityDefault, so
// e.g. "operation-operationId: error" fires as an error even though the
// built-in's own default is warn. Rule ids cfg.Rules does not mention at
// all are not bound, matching the "enabled only via extends/rules" model
// the presets embody (see config/presets/*.yaml).
func BindRules(cfg *config.Config, plugins *config.ResolvedPlugins) []*walker.Rule {
	builtins := rules.Builtins()
	bound := make([]*walker.Rule, 0, len(cfg.Rules)+len(cfg.Assertions))

	// Built-in rule ids first, plugin-namespaced ids after, each group in
	// sorted id order: rule firing order on a node is bind order, so it
	// has to be derived deterministically rather than from Go's map
	// iteration.
	var builtinIDs, pluginIDs []string
	for _, id := range maputil.SortedKeys(cfg.Rules) {
		if strings.Contains(id, "/") {
			pluginIDs = append(pluginIDs, id)
		} else {
			builtinIDs = append(builtinIDs, id)
		}
	}
	for _, id := range append(builtinIDs, pluginIDs...) {
		entry := cfg.Rules[id]
		if entry.Severity == config.SeverityOff {
			continue
		}
		rule := resolveRule(id, builtins, plugins)
		if rule == nil {
			continue
		}
		bound = append(bound, withSeverity(rule, entry.Severity))
	}

	for _, a := range cfg.Assertions {
		bound = append(bound, rules.CompileAssertion(a, plugins))
	}

	return bound
}

// bindRewrites resolves cfg's configured preprocessor or decorator names
// ("<pluginId>/<name>") into the walker.Rewrite values a Walker runs.
// Names that resolve to nothing are skipped; a missing plugin is a config
// authoring error the config resolver already reports, not something a
// walk should fail on.
func bindRewrites(names []string, plugins *config.ResolvedPlugins, decorator bool) []walker.Rewrite {
	if plugins == nil {
		return nil
	}
	var out []walker.Rewrite
	for _, name := range names {
		idx := strings.LastIndex(name, "/")
		if idx < 0 {
			continue
		}
		p, ok := plugins.ByID[name[:idx]]
		if !ok || p == nil {
			continue
		}
		local := name[idx+1:]
		if decorator {
			if fn, ok := p.Decorators[local]; ok {
				out = append(out, walker.Rewrite{ID: name, Fn: fn})
			}
			continue
		}
		if fn, ok := p.Preprocessors[local]; ok {
			out = append(out, walker.Rewrite{ID: name, Fn: fn})
		}
	}
	return out
}

func resolveRule(id string, builtins map[string]*walker.Rule, plugins *config.ResolvedPlugins) *walker.Rule {
	if rule, ok := builtins[id]; ok {
		return rule
	}
	if plugins == nil {
		return nil
	}
	owner, ok := plugins.Rules[id]
	if !ok {
		return nil
	}
	idx := strings.LastIndex(id, "/")
	if idx < 0 {
		return nil
	}
	return owner.Rules[id[idx+1:]]
}

// withSeverity overrides rule's SeverityDefault with sev, when sev names
// one of the two public severities. rule is always a fresh value (every
// rules.New*Rule constructor and CompileAssertion call allocates) so this
// mutates a value owned by this single bind, not a shared instance another
// walk might also be using.
func withSeverity(rule *walker.Rule, sev config.RuleSeverity) *walker.Rule {
	switch sev {
	case config.SeverityWarn:
		rule.SeverityDefault = problems.SeverityWarn
	case config.SeverityError:
		rule.SeverityDefault = problems.SeverityError
	}
	return rule
}

// Document parses the root document at path (a local file path or an
// http(s) URL, per parser.Parser.Parse) and walks it with the rules bound
// from cfg, returning one Result.
func Document(path string, cfg *config.Config, plugins *config.ResolvedPlugins, opts Options) (*Result, error) {
	p := parser.New()
	p.BuildSourceMap = true
	p.ResolveRefs = opts.ResolveRefs
	if opts.Logger != nil {
		p.Logger = opts.Logger
	}

	pr, err := p.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("lint: parsing %s: %w", path, err)
	}

	series := seriesOf(pr.Version)
	registry := schema.ForSeries(series)
	if registry == nil {
		return nil, fmt.Errorf("lint: %s declares unsupported OAS version %q", path, pr.Version)
	}

	locator := problems.Locator(locate.SourceMapLocator{
		Sources: map[string]*parser.SourceMap{path: pr.SourceMap},
	})
	collector := problems.NewCollector(locator, opts.Ignores)

	w := walker.New(registry, BindRules(cfg, plugins), collector, path)
	w.Preprocessors = bindRewrites(cfg.Preprocessors, plugins, false)
	w.Decorators = bindRewrites(cfg.Decorators, plugins, true)
	if opts.Logger != nil {
		w.Logger = opts.Logger
	}
	if sm := pr.SourceMap; sm != nil {
		// The parser records every $ref site it inlined in the source map;
		// surfacing them here is what gives problems reported inside an
		// inlined target their From step.
		w.RefSite = func(pointer string) (problems.LocationStep, bool) {
			if pointer == "" {
				return problems.LocationStep{}, false
			}
			if _, ok := locate.RefAt(sm, pointer); !ok {
				return problems.LocationStep{}, false
			}
			return problems.LocationStep{SourceURI: path, Pointer: pointer}, true
		}
	}
	switch doc := pr.Document.(type) {
	case *parser.OAS3Document:
		w.WalkOAS3(doc)
	case *parser.OAS2Document:
		w.WalkOAS2(doc)
	default:
		return nil, fmt.Errorf("lint: %s did not parse into a recognized OAS document", path)
	}

	return &Result{
		SourceURI:  path,
		Version:    pr.Version,
		Problems:   collector.Problems(),
		Totals:     collector.Totals(),
		SourceMap:  pr.SourceMap,
		RuleErrors: w.RuleErrors(),
	}, nil
}

// seriesOf reduces a full OAS version string ("3.0.3", "2.0") to its
// major.minor series ("3.0", "2.0"), the granularity schema.ForSeries
// indexes registries by.
func seriesOf(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}
