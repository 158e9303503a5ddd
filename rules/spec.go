// Package rules implements the built-in rules and declarative assertion
// engine that fire as the walker traverses a document.
package rules

import (
	"fmt"
	"strings"

	"github.com/oasguard/oasguard/internal/maputil"
	"github.com/oasguard/oasguard/internal/schemautil"
	"github.com/oasguard/oasguard/parser"
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/schema"
	"github.com/oasguard/oasguard/walker"
)

// SpecRuleID is the rule id every SpecRule-emitted problem carries.
const SpecRuleID = "spec"

var oas31Primitives = map[string]bool{
	"object": true, "array": true, "string": true,
	"number": true, "integer": true, "boolean": true, "null": true,
}

// shapeMessage finds a declared ShapeRule's description by id on a
// NodeType. It returns false when nt is nil or does not declare that
// rule, and callers then report nothing.
func shapeMessage(nt *schema.NodeType, id string) (string, bool) {
	if nt == nil {
		return "", false
	}
	for _, sr := range nt.ShapeRules {
		if sr.ID == id {
			return sr.Description, true
		}
	}
	return "", false
}

// NewSpecRule builds the built-in "spec" rule: the OAS shape checks
// (info presence, root content presence, parameter schema-or-content,
// OAS 3.0 nullable-requires-type, OAS 3.1 type-array elements, and
// unexpected non-extension properties). The violated constraints
// themselves are declared as ShapeRule data on the schema registries;
// this rule evaluates them against actual nodes and reports with the
// registry's message wording.
func NewSpecRule() *walker.Rule {
	return &walker.Rule{
		ID:              SpecRuleID,
		SeverityDefault: problems.SeverityError,
		Visitors: map[string]walker.Visitor{
			"Document":  {Enter: specDocumentEnter},
			"Operation": {Enter: specOperationEnter},
			"Parameter": {Enter: specParameterEnter},
			"Schema":    {Enter: specSchemaEnter},
		},
	}
}

// reportUnexpectedProperties flags keys the decoder could not match to a
// declared field and that are not vendor extensions. The parser's inline
// Extra map captures both, so anything in it without an "x-" prefix is a
// property the node's type does not define.
func reportUnexpectedProperties(ctx *walker.Context, extra map[string]any) {
	for _, key := range maputil.SortedKeys(extra) {
		if strings.HasPrefix(key, "x-") {
			continue
		}
		ctx.ReportAt(ctx.Pointer()+problems.JSONPointer(key),
			fmt.Sprintf("Property `%s` is not expected here.", key), true)
	}
}

func specOperationEnter(ctx *walker.Context, node any) {
	op, ok := node.(*parser.Operation)
	if !ok {
		return
	}
	reportUnexpectedProperties(ctx, op.Extra)
}

func specDocumentEnter(ctx *walker.Context, node any) {
	switch doc := node.(type) {
	case *parser.OAS3Document:
		reportUnexpectedProperties(ctx, doc.Extra)
		if doc.Info == nil {
			if msg, ok := shapeMessage(ctx.Type, schema.RuleInfoRequired); ok {
				ctx.Report(msg, true)
			}
		}
		if doc.OASVersion >= parser.OASVersion310 {
			if len(doc.Paths) == 0 && doc.Components == nil && len(doc.Webhooks) == 0 {
				if msg, ok := shapeMessage(ctx.Type, schema.RuleRootContentRequired); ok {
					ctx.Report(msg, true)
				}
			}
		}
	case *parser.OAS2Document:
		reportUnexpectedProperties(ctx, doc.Extra)
		if doc.Info == nil {
			if msg, ok := shapeMessage(ctx.Type, schema.RuleInfoRequired); ok {
				ctx.Report(msg, true)
			}
		}
	}
}

func specParameterEnter(ctx *walker.Context, node any) {
	param, ok := node.(*parser.Parameter)
	if !ok {
		return
	}
	// OAS 2.0 parameters use "type"/"schema" (body params only), not the
	// OAS 3.x schema-or-content constraint; only fire when the NodeType
	// actually declares the shape rule (OAS 3.x registries only).
	msg, declared := shapeMessage(ctx.Type, schema.RuleParamSchemaOrContent)
	if !declared {
		return
	}
	if param.Schema == nil && len(param.Content) == 0 {
		ctx.Report(msg, true)
	}
}

func specSchemaEnter(ctx *walker.Context, node any) {
	s, ok := node.(*parser.Schema)
	if !ok {
		return
	}

	if msg, declared := shapeMessage(ctx.Type, schema.RuleNullableRequiresType); declared {
		if s.Nullable && len(schemautil.GetSchemaTypes(s)) == 0 {
			ctx.ReportAt(ctx.Pointer()+"/nullable", msg, false)
		}
	}

	if types, isArray := s.Type.([]any); isArray {
		if _, declared := shapeMessage(ctx.Type, schema.RuleTypeArrayElementValid); declared {
			for i, v := range types {
				t, _ := v.(string)
				if !oas31Primitives[t] {
					msg := "`type` can be one of the following only: " +
						strings.Join(quotedPrimitives(), ", ") + "."
					ctx.ReportAt(ctx.Pointer()+fmt.Sprintf("/type/%d", i), msg, false)
				}
			}
		}
	}
}

func quotedPrimitives() []string {
	order := []string{"object", "array", "string", "number", "integer", "boolean", "null"}
	out := make([]string, len(order))
	for i, p := range order {
		out[i] = `"` + p + `"`
	}
	return out
}
