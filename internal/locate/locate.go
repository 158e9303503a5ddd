// Package locate bridges the two path addressing schemes this codebase
// uses for the same document tree: RFC 6901 JSON Pointers
// (problems.LocationStep.Pointer, the wire/report shape) and the
// JSONPath-style keys parser.SourceMap indexes by (built during parsing,
// e.g. "$.paths./users.get.responses['200']"). Everything reporting a
// resolved source position goes through here rather than growing a second
// pointer dialect.
package locate

import (
	"strings"

	"github.com/oasguard/oasguard/parser"
)

// FromPointer converts an RFC 6901 JSON Pointer into the JSONPath-style key
// parser.SourceMap was built with. It mirrors parser/sourcemap.go's own
// buildChildPath/needsBracketNotation rules exactly, since both schemes
// address the same yaml.Node tree and must agree on which keys need
// bracket-quoting.
//
// An all-digit pointer token is ambiguous: it may be a sequence index
// (recorded by the source map as "[0]") or a mapping key such as a
// response code (recorded as "['200']"). FromPointer picks the quoted
// mapping-key form; Resolve disambiguates against an actual SourceMap and
// is what position lookups should go through.
func FromPointer(pointer string) string {
	path := "$"
	for _, raw := range splitPointer(pointer) {
		path = appendSegment(path, unescapeToken(raw))
	}
	return path
}

// Resolve converts pointer into the JSONPath key sm actually contains,
// trying the sequence-index form first for all-digit tokens and falling
// back to the quoted mapping-key form. ok is false when no form of the
// path is present in sm.
func Resolve(sm *parser.SourceMap, pointer string) (string, bool) {
	if sm == nil {
		return "", false
	}
	path := "$"
	for _, raw := range splitPointer(pointer) {
		seg := unescapeToken(raw)
		if isAllDigits(seg) {
			if indexed := path + "[" + seg + "]"; sm.Has(indexed) {
				path = indexed
				continue
			}
		}
		path = appendSegment(path, seg)
		if !sm.Has(path) {
			return "", false
		}
	}
	return path, true
}

func splitPointer(pointer string) []string {
	trimmed := strings.TrimPrefix(pointer, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// unescapeToken reverses RFC 6901's "~1" -> "/" and "~0" -> "~" escaping.
func unescapeToken(seg string) string {
	seg = strings.ReplaceAll(seg, "~1", "/")
	seg = strings.ReplaceAll(seg, "~0", "~")
	return seg
}

func isAllDigits(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func appendSegment(parent, seg string) string {
	if needsBracketNotation(seg) {
		escaped := strings.ReplaceAll(seg, "'", "\\'")
		return parent + "['" + escaped + "']"
	}
	return parent + "." + seg
}

func needsBracketNotation(key string) bool {
	if len(key) == 0 {
		return true
	}
	for i, r := range key {
		if i == 0 && r >= '0' && r <= '9' {
			return true
		}
		switch r {
		case '.', '[', ']', '\'', '"', ' ', '\t', '\n', '\r':
			return true
		}
	}
	return false
}

// PositionOf resolves pointer against sm into a 1-based (line, column),
// suitable as a format.Result.PositionOf implementation. ok is false when
// sm is nil or has no entry for pointer (e.g. BuildSourceMap was off).
func PositionOf(sm *parser.SourceMap, pointer string) (line, column int, ok bool) {
	path, ok := Resolve(sm, pointer)
	if !ok {
		return 0, 0, false
	}
	loc := sm.Get(path)
	if !loc.IsKnown() {
		return 0, 0, false
	}
	return loc.Line, loc.Column, true
}

// RefAt reports the $ref recorded at pointer in sm's ref table, if the
// node at that position was written as a reference in the source.
func RefAt(sm *parser.SourceMap, pointer string) (parser.RefLocation, bool) {
	path, ok := Resolve(sm, pointer)
	if !ok {
		return parser.RefLocation{}, false
	}
	ref := sm.GetRef(path)
	return ref, ref.TargetRef != ""
}

// SourceMapLocator adapts a set of per-source SourceMaps into a
// problems.Locator, ordering problems by (line, column) within a source.
// The returned "offset" is a surrogate (line*1e6+column), monotonic with
// document position but not a true byte offset; the collector only needs
// it for stable ordering, not byte-accurate addressing.
type SourceMapLocator struct {
	Sources map[string]*parser.SourceMap
}

func (l SourceMapLocator) Locate(sourceURI, pointer string) (int, bool) {
	sm := l.Sources[sourceURI]
	line, column, ok := PositionOf(sm, pointer)
	if !ok {
		return 0, false
	}
	return line*1_000_000 + column, true
}
