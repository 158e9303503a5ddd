package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasguard/oasguard/config"
	"github.com/oasguard/oasguard/parser"
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/rules"
	"github.com/oasguard/oasguard/schema"
	"github.com/oasguard/oasguard/walker"
)

func runAssertion(t *testing.T, a config.CompiledAssertion, doc *parser.OAS3Document) []problems.Problem {
	t.Helper()
	collector := problems.NewCollector(nil, nil)
	rule := rules.CompileAssertion(a, nil)
	w := walker.New(schema.Oas3_0, []*walker.Rule{rule}, collector, "openapi.yaml")
	w.WalkOAS3(doc)
	return collector.Problems()
}

func minimalOAS3Doc() *parser.OAS3Document {
	return &parser.OAS3Document{
		OpenAPI:    "3.0.0",
		OASVersion: parser.OASVersion300,
		Paths: parser.Paths{
			"/test": &parser.PathItem{
				Get: &parser.Operation{
					Responses: &parser.Responses{
						Codes: map[string]*parser.Response{"200": {Description: "ok"}},
					},
				},
			},
		},
	}
}

func TestCompileAssertion_DefinedFailsWhenMissing(t *testing.T) {
	a := config.CompiledAssertion{
		AssertionID: "operation-summary-defined",
		Subject:     "Operation",
		Property:    "summary",
		Severity:    config.SeverityError,
		Predicates:  map[string]any{"defined": true},
	}
	got := runAssertion(t, a, minimalOAS3Doc())
	require.Len(t, got, 1)
	assert.Equal(t, "operation-summary-defined", got[0].RuleID)
	assert.Equal(t, problems.SeverityError, got[0].Severity)
	assert.True(t, got[0].Location[0].ReportOnKey)
}

func TestCompileAssertion_MinLengthPasses(t *testing.T) {
	doc := minimalOAS3Doc()
	doc.Paths["/test"].Get.Summary = "list widgets"
	a := config.CompiledAssertion{
		AssertionID: "operation-summary-min",
		Subject:     "Operation",
		Property:    "summary",
		Severity:    config.SeverityWarn,
		Predicates:  map[string]any{"minLength": 5},
	}
	got := runAssertion(t, a, doc)
	assert.Empty(t, got)
}

func TestCompileAssertion_MinLengthFails(t *testing.T) {
	doc := minimalOAS3Doc()
	doc.Paths["/test"].Get.Summary = "hi"
	a := config.CompiledAssertion{
		AssertionID: "operation-summary-min",
		Subject:     "Operation",
		Property:    "summary",
		Severity:    config.SeverityWarn,
		Predicates:  map[string]any{"minLength": 5},
	}
	got := runAssertion(t, a, doc)
	require.Len(t, got, 1)
	assert.Equal(t, problems.SeverityWarn, got[0].Severity)
}

func TestCompileAssertion_CasingPredicate(t *testing.T) {
	doc := minimalOAS3Doc()
	doc.Paths["/test"].Get.OperationID = "List_Widgets"
	a := config.CompiledAssertion{
		AssertionID: "operation-operationid-casing",
		Subject:     "Operation",
		Property:    "operationId",
		Severity:    config.SeverityError,
		Predicates:  map[string]any{"casing": "camelCase"},
	}
	got := runAssertion(t, a, doc)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "camelCase")
}

func TestCompileAssertion_CustomMessageOverridesFailure(t *testing.T) {
	a := config.CompiledAssertion{
		AssertionID: "operation-summary-defined",
		Subject:     "Operation",
		Property:    "summary",
		Message:     "operations must document a summary",
		Severity:    config.SeverityError,
		Predicates:  map[string]any{"defined": true},
	}
	got := runAssertion(t, a, minimalOAS3Doc())
	require.Len(t, got, 1)
	assert.Equal(t, "operations must document a summary", got[0].Message)
}
