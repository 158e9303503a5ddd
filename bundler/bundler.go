// Package bundler implements the bundle, dereference, and normalize
// document transforms. It operates on the generic map[string]any
// document shape the parser itself resolves refs against
// (parser.RefResolver.ResolveAllRefs takes and mutates a
// map[string]any, not a typed struct), so Dereference here is a thin,
// mode-aware wrapper around that existing resolver rather than a
// parallel implementation.
package bundler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oasguard/oasguard/oaserrors"
	"github.com/oasguard/oasguard/parser"
)

// Mode selects which of the three document transformations to run.
type Mode int

const (
	// ModeBundle inlines external $refs into the document's own
	// components/definitions bucket, rewriting them to local refs, but
	// leaves internal $refs (and non-circular document structure) alone.
	ModeBundle Mode = iota
	// ModeDereference inlines every resolvable $ref (internal and
	// external) in place, parser.RefResolver's eager behavior.
	ModeDereference
	// ModeNormalize reorders top-level document keys into the
	// conventional order, without touching $refs at all.
	ModeNormalize
)

// Options configures a bundle/dereference run.
type Options struct {
	// TargetIsJSON, when true, causes Dereference to fail with
	// CircularJSONNotSupportedError if the document contains a
	// circular $ref, since JSON has no way to represent one (unlike
	// YAML's anchors/aliases).
	TargetIsJSON bool
}

// Dereference eagerly inlines every $ref in doc using the given
// RefResolver, mutating doc in place and returning it.
func Dereference(doc map[string]any, resolver *parser.RefResolver, opts Options) (map[string]any, error) {
	if err := resolver.ResolveAllRefs(doc); err != nil {
		return nil, err
	}
	if opts.TargetIsJSON && resolver.HasCircularRefs() {
		return nil, &oaserrors.CircularJSONNotSupportedError{SourceURI: "<document>"}
	}
	return doc, nil
}

// componentsPath returns the container path bundled external schemas are
// inlined into, and the $ref prefix used to point at them, for the given
// OAS version series.
func componentsPath(version parser.OASVersion) (container []string, refPrefix string) {
	if version == parser.OASVersion20 {
		return []string{"definitions"}, "#/definitions/"
	}
	return []string{"components", "schemas"}, "#/components/schemas/"
}

// Bundle inlines every external $ref (one whose target is not a local
// "#/..." fragment) into the document's own schema container, renaming on
// name collision with a numeric suffix, and rewrites the $ref in place to
// point locally. Internal refs are left untouched. fetch resolves an
// external ref to its target value (typically backed by a refresolver.
// Resolver).
//
// Each distinct external ref string is fetched and bundled exactly once;
// every site referencing it is rewritten to the same bundled component.
// Circular external chains terminate as local $refs into the bundled
// container rather than looping.
func Bundle(doc map[string]any, version parser.OASVersion, fetch func(ref string) (any, error)) (map[string]any, error) {
	container, refPrefix := componentsPath(version)
	bucket := ensurePath(doc, container)

	st := &bundleState{
		bucket:    bucket,
		taken:     make(map[string]bool, len(bucket)),
		names:     make(map[string]string),
		refPrefix: refPrefix,
		fetch:     fetch,
	}
	for name := range bucket {
		st.taken[name] = true
	}

	if err := st.walk(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// bundleState carries one Bundle run's bookkeeping: the target container,
// the names already occupying it, and the name each external ref string
// has been assigned. names doubles as the cycle guard: an entry exists
// from the moment a ref's name is reserved, before its content is walked,
// so re-encountering the ref (shared or circular) resolves to the
// already-assigned name instead of fetching again. This is the same
// resolving-stack idea refresolver.Resolver uses for its own cycle
// detection.
type bundleState struct {
	bucket    map[string]any
	taken     map[string]bool
	names     map[string]string // external ref string -> bundled component name
	refPrefix string
	fetch     func(ref string) (any, error)
}

func (s *bundleState) walk(node any) error {
	switch v := node.(type) {
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok && isExternalRef(ref) {
			name, err := s.inline(ref)
			if err != nil {
				return err
			}
			for k := range v {
				delete(v, k)
			}
			v["$ref"] = s.refPrefix + name
			return nil
		}
		// Sorted traversal keeps collision-suffix assignment deterministic
		// when two distinct targets share a base name.
		for _, key := range sortedKeys(v) {
			if err := s.walk(v[key]); err != nil {
				return err
			}
		}
	case []any:
		for _, item := range v {
			if err := s.walk(item); err != nil {
				return err
			}
		}
	}
	return nil
}

func isExternalRef(ref string) bool {
	return !strings.HasPrefix(ref, "#")
}

// inline returns the bundled component name for ref, fetching and storing
// its target on first sight and recursing into the stored value so nested
// external refs are bundled too. A ref already seen, whether referenced
// from a second site or reached again through its own target (a circular
// chain), returns its reserved name without another fetch, so every
// referencing site points at one component and cycles terminate as local
// $refs into the bundled container.
func (s *bundleState) inline(ref string) (string, error) {
	if name, ok := s.names[ref]; ok {
		return name, nil
	}

	resolved, err := s.fetch(ref)
	if err != nil {
		return "", fmt.Errorf("bundler: resolving external ref %q: %w", ref, err)
	}
	value, ok := resolved.(map[string]any)
	if !ok {
		return "", fmt.Errorf("bundler: external ref %q did not resolve to an object (got %T)", ref, resolved)
	}

	name := uniqueName(refBaseName(ref), s.taken)
	s.taken[name] = true
	s.names[ref] = name
	s.bucket[name] = value

	if err := s.walk(value); err != nil {
		return "", err
	}
	return name, nil
}

func refBaseName(ref string) string {
	parts := strings.Split(ref, "/")
	last := parts[len(parts)-1]
	last = strings.TrimSuffix(last, ".yaml")
	last = strings.TrimSuffix(last, ".yml")
	last = strings.TrimSuffix(last, ".json")
	if last == "" {
		return "Schema"
	}
	return last
}

func uniqueName(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if !taken[candidate] {
			return candidate
		}
	}
}

func ensurePath(doc map[string]any, path []string) map[string]any {
	current := doc
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[key] = next
		}
		current = next
	}
	return current
}

// sortedKeys is used by Normalize to produce deterministic output for any
// document section this package re-emits as a plain map.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
