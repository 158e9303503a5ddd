package rules

import (
	"fmt"

	"github.com/oasguard/oasguard/internal/schemautil"
	"github.com/oasguard/oasguard/parser"
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/walker"
)

// RuleNoEnumTypeMismatch is the rule id for enum/type consistency
// checking, built on internal/schemautil's GetSchemaTypes (the same
// OAS2/3.0/3.1 type-shape helper the spec rule's nullable and
// type-array checks use).
const RuleNoEnumTypeMismatch = "no-enum-type-mismatch"

// NewNoEnumTypeMismatchRule reports enum values whose JSON type does not
// match any of the schema's own declared type(s).
func NewNoEnumTypeMismatchRule() *walker.Rule {
	return &walker.Rule{
		ID:              RuleNoEnumTypeMismatch,
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Schema": {Enter: func(ctx *walker.Context, node any) {
				s, ok := node.(*parser.Schema)
				if !ok || len(s.Enum) == 0 {
					return
				}
				types := schemautil.GetSchemaTypes(s)
				if len(types) == 0 {
					return
				}
				for i, v := range s.Enum {
					if !enumValueMatchesAnyType(v, types) {
						ctx.ReportAt(ctx.Pointer()+fmt.Sprintf("/enum/%d", i),
							fmt.Sprintf("enum value %v does not match the schema's declared type", v), false)
					}
				}
			}},
		},
	}
}

func enumValueMatchesAnyType(v any, types []string) bool {
	for _, t := range types {
		if jsonTypeMatches(v, t) {
			return true
		}
	}
	return false
}

// jsonTypeMatches reports whether v, as decoded from YAML/JSON, could be a
// value of the given OAS primitive type name. "integer" additionally
// accepts a whole-valued "number".
func jsonTypeMatches(v any, declared string) bool {
	switch val := v.(type) {
	case nil:
		return declared == "null"
	case bool:
		return declared == "boolean"
	case string:
		return declared == "string"
	case float64:
		if declared == "integer" {
			return val == float64(int64(val))
		}
		return declared == "number"
	case float32:
		return jsonTypeMatches(float64(val), declared)
	case int, int32, int64:
		return declared == "number" || declared == "integer"
	case []any:
		return declared == "array"
	case map[string]any:
		return declared == "object"
	default:
		return false
	}
}
