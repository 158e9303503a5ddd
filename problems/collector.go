package problems

import (
	"sort"
)

// Locator resolves a (sourceURI, pointer) pair to a byte offset, used only
// to order problems deterministically. Implementations are typically
// backed by a parser.SourceMap for the relevant source.
type Locator interface {
	Locate(sourceURI, pointer string) (offset int, ok bool)
}

// noopLocator orders everything from the same source as equal; used when no
// Locator is configured so the collector still produces a stable order.
type noopLocator struct{}

func (noopLocator) Locate(string, string) (int, bool) { return 0, false }

// Totals summarizes a completed walk's problems.
type Totals struct {
	Errors   int
	Warnings int
	Ignored  int
}

// Ignores suppresses problems whose innermost location matches an entry.
// Keyed by source URI, each value is the set of ignored pointers for that
// source.
type Ignores map[string]map[string]bool

// Ignored reports whether the given source/pointer pair is suppressed.
func (ig Ignores) Ignored(sourceURI, pointer string) bool {
	if ig == nil {
		return false
	}
	return ig[sourceURI][pointer]
}

// Collector accumulates problems produced during a walk, deduplicating and
// sorting them before they are handed to a formatter.
type Collector struct {
	locator Locator
	ignores Ignores
	seen    map[string]bool
	items   []Problem
	ignored int
}

// NewCollector builds a Collector. locator and ignores may both be nil.
func NewCollector(locator Locator, ignores Ignores) *Collector {
	if locator == nil {
		locator = noopLocator{}
	}
	return &Collector{
		locator: locator,
		ignores: ignores,
		seen:    make(map[string]bool),
	}
}

// Add records a problem, applying ignore-file suppression and
// (ruleId, locationChain, message) deduplication. Returns true if the
// problem was kept (not suppressed and not a duplicate).
func (c *Collector) Add(p Problem) bool {
	if len(p.Location) > 0 {
		inner := p.Location[0]
		if c.ignores.Ignored(inner.SourceURI, inner.Pointer) {
			c.ignored++
			return false
		}
	}

	key := p.dedupKey()
	if c.seen[key] {
		return false
	}
	c.seen[key] = true
	c.items = append(c.items, p)
	return true
}

// Problems returns the collected problems sorted by
// (sourceUri, startOffset, ruleId).
func (c *Collector) Problems() []Problem {
	out := make([]Problem, len(c.items))
	copy(out, c.items)

	type sortKey struct {
		sourceURI string
		offset    int
		ruleID    string
	}
	keyOf := func(p Problem) sortKey {
		if len(p.Location) == 0 {
			return sortKey{ruleID: p.RuleID}
		}
		inner := p.Location[0]
		offset, _ := c.locator.Locate(inner.SourceURI, inner.Pointer)
		return sortKey{sourceURI: inner.SourceURI, offset: offset, ruleID: p.RuleID}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := keyOf(out[i]), keyOf(out[j])
		if ki.sourceURI != kj.sourceURI {
			return ki.sourceURI < kj.sourceURI
		}
		if ki.offset != kj.offset {
			return ki.offset < kj.offset
		}
		return ki.ruleID < kj.ruleID
	})
	return out
}

// Totals reports error/warning/ignored counts for the collected problems.
func (c *Collector) Totals() Totals {
	t := Totals{Ignored: c.ignored}
	for _, p := range c.items {
		switch p.Severity {
		case SeverityError:
			t.Errors++
		case SeverityWarn:
			t.Warnings++
		}
	}
	return t
}
