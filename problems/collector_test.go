package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector_DedupAndSort(t *testing.T) {
	c := NewCollector(nil, nil)

	p1 := Problem{RuleID: "spec", Severity: SeverityError, Message: "m1",
		Location: []LocationStep{{SourceURI: "a.yaml", Pointer: "/info"}}}
	p2 := Problem{RuleID: "spec", Severity: SeverityError, Message: "m1",
		Location: []LocationStep{{SourceURI: "a.yaml", Pointer: "/info"}}}
	p3 := Problem{RuleID: "no-unresolved-refs", Severity: SeverityWarn, Message: "m2",
		Location: []LocationStep{{SourceURI: "a.yaml", Pointer: "/paths"}}}

	assert.True(t, c.Add(p1))
	assert.False(t, c.Add(p2), "duplicate (ruleId, location, message) must be dropped")
	assert.True(t, c.Add(p3))

	got := c.Problems()
	assert.Len(t, got, 2)

	totals := c.Totals()
	assert.Equal(t, 1, totals.Errors)
	assert.Equal(t, 1, totals.Warnings)
	assert.Equal(t, 0, totals.Ignored)
}

func TestCollector_IgnoreFile(t *testing.T) {
	ignores := Ignores{"a.yaml": {"/info": true}}
	c := NewCollector(nil, ignores)

	kept := c.Add(Problem{RuleID: "spec", Message: "ignored",
		Location: []LocationStep{{SourceURI: "a.yaml", Pointer: "/info"}}})
	assert.False(t, kept)

	kept = c.Add(Problem{RuleID: "spec", Message: "not ignored",
		Location: []LocationStep{{SourceURI: "a.yaml", Pointer: "/paths"}}})
	assert.True(t, kept)

	assert.Equal(t, 1, c.Totals().Ignored)
	assert.Len(t, c.Problems(), 1)
}

type fakeLocator struct {
	offsets map[string]int
}

func (f fakeLocator) Locate(sourceURI, pointer string) (int, bool) {
	off, ok := f.offsets[sourceURI+pointer]
	return off, ok
}

func TestCollector_SortsByOffsetThenRuleID(t *testing.T) {
	loc := fakeLocator{offsets: map[string]int{
		"a.yaml/paths": 100,
		"a.yaml/info":  10,
	}}
	c := NewCollector(loc, nil)

	c.Add(Problem{RuleID: "b-rule", Message: "m",
		Location: []LocationStep{{SourceURI: "a.yaml", Pointer: "/paths"}}})
	c.Add(Problem{RuleID: "a-rule", Message: "m",
		Location: []LocationStep{{SourceURI: "a.yaml", Pointer: "/info"}}})

	got := c.Problems()
	if assert.Len(t, got, 2) {
		assert.Equal(t, "a-rule", got[0].RuleID)
		assert.Equal(t, "b-rule", got[1].RuleID)
	}
}
