package walker_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasguard/oasguard/parser"
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/schema"
	"github.com/oasguard/oasguard/walker"
)

func testDoc() *parser.OAS3Document {
	return &parser.OAS3Document{
		OpenAPI:    "3.0.0",
		OASVersion: parser.OASVersion300,
		Info:       &parser.Info{Title: "t", Version: "1"},
		Paths: parser.Paths{
			"/b": &parser.PathItem{
				Get: &parser.Operation{
					Responses: &parser.Responses{
						Codes: map[string]*parser.Response{"200": {Description: "ok"}},
					},
				},
			},
			"/a": &parser.PathItem{
				Post: &parser.Operation{
					Responses: &parser.Responses{
						Codes: map[string]*parser.Response{"201": {Description: "created"}},
					},
				},
			},
		},
		Components: &parser.Components{
			Schemas: map[string]*parser.Schema{
				"Zebra": {Type: "object"},
				"Apple": {Type: "string"},
			},
		},
	}
}

func TestWalker_EnterLeaveOrder(t *testing.T) {
	var events []string
	rule := &walker.Rule{
		ID:              "trace",
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"PathItem": {
				Enter: func(ctx *walker.Context, node any) { events = append(events, "enter "+ctx.Pointer()) },
				Leave: func(ctx *walker.Context, node any) { events = append(events, "leave "+ctx.Pointer()) },
			},
			"Operation": {
				Enter: func(ctx *walker.Context, node any) { events = append(events, "enter "+ctx.Pointer()) },
			},
		},
	}

	collector := problems.NewCollector(nil, nil)
	w := walker.New(schema.Oas3_0, []*walker.Rule{rule}, collector, "openapi.yaml")
	w.WalkOAS3(testDoc())

	assert.Equal(t, []string{
		"enter /paths/~1a",
		"enter /paths/~1a/post",
		"leave /paths/~1a",
		"enter /paths/~1b",
		"enter /paths/~1b/get",
		"leave /paths/~1b",
	}, events)
}

func TestWalker_DeterministicProblemOrder(t *testing.T) {
	rule := &walker.Rule{
		ID:              "every-schema",
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Schema": {Enter: func(ctx *walker.Context, node any) { ctx.Report("seen", false) }},
		},
	}

	run := func() []problems.Problem {
		collector := problems.NewCollector(nil, nil)
		w := walker.New(schema.Oas3_0, []*walker.Rule{rule}, collector, "openapi.yaml")
		w.WalkOAS3(testDoc())
		return collector.Problems()
	}

	first := run()
	require.Len(t, first, 2)
	assert.Equal(t, "/components/schemas/Apple", first[0].Location[0].Pointer)
	assert.Equal(t, "/components/schemas/Zebra", first[1].Location[0].Pointer)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run())
	}
}

func TestWalker_IgnoreIsPerRule(t *testing.T) {
	skipping := &walker.Rule{
		ID:              "skipping",
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Schema": {Enter: func(ctx *walker.Context, node any) {
				ctx.Ignore()
				ctx.Report("should be suppressed", false)
			}},
		},
	}
	reporting := &walker.Rule{
		ID:              "reporting",
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Schema": {Enter: func(ctx *walker.Context, node any) { ctx.Report("still fires", false) }},
		},
	}

	collector := problems.NewCollector(nil, nil)
	w := walker.New(schema.Oas3_0, []*walker.Rule{skipping, reporting}, collector, "openapi.yaml")
	w.WalkOAS3(testDoc())

	got := collector.Problems()
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "reporting", p.RuleID)
	}
}

func TestWalker_RulePanicIsContained(t *testing.T) {
	panicking := &walker.Rule{
		ID:              "panicking",
		SeverityDefault: problems.SeverityError,
		Visitors: map[string]walker.Visitor{
			"Schema": {Enter: func(ctx *walker.Context, node any) { panic("boom") }},
		},
	}
	healthy := &walker.Rule{
		ID:              "healthy",
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Schema": {Enter: func(ctx *walker.Context, node any) { ctx.Report("ok", false) }},
		},
	}

	collector := problems.NewCollector(nil, nil)
	w := walker.New(schema.Oas3_0, []*walker.Rule{panicking, healthy}, collector, "openapi.yaml")
	w.WalkOAS3(testDoc())

	assert.Equal(t, 2, w.RuleErrors())
	got := collector.Problems()
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "healthy", p.RuleID)
	}
}

func TestWalker_PreprocessorRunsBeforeRules(t *testing.T) {
	pre := walker.Rewrite{
		ID: "test/add-description",
		Fn: func(node any) (any, error) {
			if op, ok := node.(*parser.Operation); ok && op.Summary == "" {
				op.Summary = "injected"
			}
			return node, nil
		},
	}
	var seen []string
	rule := &walker.Rule{
		ID:              "summary-reader",
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Operation": {Enter: func(ctx *walker.Context, node any) {
				seen = append(seen, node.(*parser.Operation).Summary)
			}},
		},
	}

	collector := problems.NewCollector(nil, nil)
	w := walker.New(schema.Oas3_0, []*walker.Rule{rule}, collector, "openapi.yaml")
	w.Preprocessors = []walker.Rewrite{pre}
	w.WalkOAS3(testDoc())

	assert.Equal(t, []string{"injected", "injected"}, seen)
}

func TestWalker_RewriteErrorIsContained(t *testing.T) {
	failing := walker.Rewrite{
		ID: "test/failing",
		Fn: func(node any) (any, error) { return nil, errors.New("rewrite failed") },
	}

	collector := problems.NewCollector(nil, nil)
	w := walker.New(schema.Oas3_0, nil, collector, "openapi.yaml")
	w.Decorators = []walker.Rewrite{failing}
	w.WalkOAS3(testDoc())

	assert.Positive(t, w.RuleErrors())
}

func TestWalker_FromStepOnRefCrossing(t *testing.T) {
	rule := &walker.Rule{
		ID:              "every-schema",
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Schema": {Enter: func(ctx *walker.Context, node any) { ctx.Report("seen", false) }},
		},
	}

	collector := problems.NewCollector(nil, nil)
	w := walker.New(schema.Oas3_0, []*walker.Rule{rule}, collector, "openapi.yaml")
	refSite := "/components/schemas/Zebra"
	w.RefSite = func(pointer string) (problems.LocationStep, bool) {
		if pointer == refSite {
			return problems.LocationStep{SourceURI: "openapi.yaml", Pointer: refSite}, true
		}
		return problems.LocationStep{}, false
	}
	doc := testDoc()
	doc.Components.Schemas["Zebra"].Properties = map[string]*parser.Schema{
		"stripes": {Type: "integer"},
	}
	w.WalkOAS3(doc)

	byPointer := make(map[string]problems.Problem)
	for _, p := range collector.Problems() {
		byPointer[p.Location[0].Pointer] = p
	}

	require.Contains(t, byPointer, "/components/schemas/Apple")
	assert.Nil(t, byPointer["/components/schemas/Apple"].From)

	// The inlined target and everything beneath it carry the ref site.
	require.Contains(t, byPointer, refSite)
	require.NotNil(t, byPointer[refSite].From)
	assert.Equal(t, refSite, byPointer[refSite].From.Pointer)

	nested := byPointer["/components/schemas/Zebra/properties/stripes"]
	require.NotNil(t, nested.From)
	assert.Equal(t, refSite, nested.From.Pointer)
}
