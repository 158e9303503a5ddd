// Package format implements the three lint output formatters: stylish
// (human, grouped-by-file), json (stable field order, for tooling), and
// checkstyle (XML, for CI ingestion).
package format

import (
	"io"

	"github.com/oasguard/oasguard/problems"
)

// Formatter renders a completed walk's problems and totals to w.
type Formatter interface {
	Format(w io.Writer, results []Result) error
}

// Result pairs one source document's problems with its totals, the unit
// every formatter groups its output by.
type Result struct {
	SourceURI string
	Problems  []problems.Problem
	Totals    problems.Totals
	// PositionOf resolves a problem's pointer to a 1-based (line, column),
	// typically backed by a parser.SourceMap for this source. May be nil,
	// in which case formatters that want a position fall back to 1,1.
	PositionOf func(pointer string) (line, column int, ok bool)
}

func (r Result) position(pointer string) (line, column int) {
	if r.PositionOf == nil {
		return 1, 1
	}
	if l, c, ok := r.PositionOf(pointer); ok {
		return l, c
	}
	return 1, 1
}

// ByName returns the built-in formatter named by id ("stylish", "json",
// "checkstyle"), or ok=false if id names none of them.
func ByName(id string) (Formatter, bool) {
	switch id {
	case "stylish", "":
		return Stylish{}, true
	case "json":
		return JSON{}, true
	case "checkstyle":
		return Checkstyle{}, true
	default:
		return nil, false
	}
}
