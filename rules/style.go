package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/oasguard/oasguard/internal/maputil"
	"github.com/oasguard/oasguard/parser"
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/walker"
)

// The built-in stylistic rules below (2xx/4xx response presence,
// operationId/summary presence, tag descriptions, ambiguous paths,
// undefined path parameters) are expressed against the walker/Context so
// they share one rule-definition shape with spec and no-unresolved-refs.

const (
	RuleOperation2xxResponse  = "operation-2xx-response"
	RuleOperation4xxResponse  = "operation-4xx-response"
	RuleOperationOperationID = "operation-operationId"
	RuleOperationSummary     = "operation-summary"
	RuleTagDescription       = "tag-description"
	RuleNoAmbiguousPaths     = "no-ambiguous-paths"
	RulePathParamsDefined    = "path-params-defined"
	RuleNoIdenticalPaths     = "no-identical-paths"
	RuleBooleanParameterPrefix = "boolean-parameter-prefixes"
)

func NewOperation2xxResponseRule() *walker.Rule {
	return &walker.Rule{
		ID:              RuleOperation2xxResponse,
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Operation": {Enter: func(ctx *walker.Context, node any) {
				op := node.(*parser.Operation)
				if op.Responses == nil || !hasCodePrefix(op.Responses, '2') {
					ctx.Report("operation must define at least one 2xx response", false)
				}
			}},
		},
	}
}

func NewOperation4xxResponseRule() *walker.Rule {
	return &walker.Rule{
		ID:              RuleOperation4xxResponse,
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Operation": {Enter: func(ctx *walker.Context, node any) {
				op := node.(*parser.Operation)
				if op.Responses == nil || !hasCodePrefix(op.Responses, '4') {
					ctx.Report("operation must define at least one 4xx response", false)
				}
			}},
		},
	}
}

func hasCodePrefix(r *parser.Responses, prefix byte) bool {
	for code := range r.Codes {
		if len(code) > 0 && code[0] == prefix {
			return true
		}
	}
	return false
}

func NewOperationOperationIDRule() *walker.Rule {
	return &walker.Rule{
		ID:              RuleOperationOperationID,
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Operation": {Enter: func(ctx *walker.Context, node any) {
				op := node.(*parser.Operation)
				if op.OperationID == "" {
					ctx.Report("operation must define operationId", false)
				}
			}},
		},
	}
}

func NewOperationSummaryRule() *walker.Rule {
	return &walker.Rule{
		ID:              RuleOperationSummary,
		SeverityDefault: problems.SeverityError,
		Visitors: map[string]walker.Visitor{
			"Operation": {Enter: func(ctx *walker.Context, node any) {
				op := node.(*parser.Operation)
				if strings.TrimSpace(op.Summary) == "" {
					ctx.Report("operation must define a non-empty summary", false)
				}
			}},
		},
	}
}

// NewTagDescriptionRule reports tags missing a description. It hooks the
// "Document" node because parser.Tag is a slice field, not a node type
// the walker descends into on its own.
func NewTagDescriptionRule() *walker.Rule {
	return &walker.Rule{
		ID:              RuleTagDescription,
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Document": {Enter: func(ctx *walker.Context, node any) {
				tags := documentTags(node)
				for i, tag := range tags {
					if tag == nil || strings.TrimSpace(tag.Description) == "" {
						ctx.ReportAt(ctx.Pointer()+fmt.Sprintf("/tags/%d", i), "tag must define a description", true)
					}
				}
			}},
		},
	}
}

func documentTags(node any) []*parser.Tag {
	switch doc := node.(type) {
	case *parser.OAS3Document:
		return doc.Tags
	case *parser.OAS2Document:
		return doc.Tags
	default:
		return nil
	}
}

// NewNoAmbiguousPathsRule reports sibling path templates that cannot be
// statically disambiguated, e.g. "/pets/{id}" and "/pets/{petId}"
// occupying the same structural position.
func NewNoAmbiguousPathsRule() *walker.Rule {
	return &walker.Rule{
		ID:              RuleNoAmbiguousPaths,
		SeverityDefault: problems.SeverityError,
		Visitors: map[string]walker.Visitor{
			"Document": {Enter: func(ctx *walker.Context, node any) {
				paths := documentPaths(node)
				skeletons := make(map[string][]string)
				for _, p := range maputil.SortedKeys(paths) {
					sk := pathSkeleton(p)
					skeletons[sk] = append(skeletons[sk], p)
				}
				for _, sk := range maputil.SortedKeys(skeletons) {
					if group := skeletons[sk]; len(group) > 1 {
						ctx.Report(fmt.Sprintf("ambiguous paths: %s", strings.Join(group, ", ")), true)
					}
				}
			}},
		},
	}
}

// NewNoIdenticalPathsRule reports path templates that differ only in
// parameter names, e.g. "/pets/{id}" vs "/pets/{name}" are the same route.
func NewNoIdenticalPathsRule() *walker.Rule {
	return &walker.Rule{
		ID:              RuleNoIdenticalPaths,
		SeverityDefault: problems.SeverityError,
		Visitors: map[string]walker.Visitor{
			"Document": {Enter: func(ctx *walker.Context, node any) {
				paths := documentPaths(node)
				seen := make(map[string]string)
				for _, p := range maputil.SortedKeys(paths) {
					sk := pathSkeleton(p)
					if other, ok := seen[sk]; ok && other != p {
						ctx.Report(fmt.Sprintf("paths %q and %q are identical once parameter names are ignored", other, p), true)
					}
					seen[sk] = p
				}
			}},
		},
	}
}

func documentPaths(node any) parser.Paths {
	switch doc := node.(type) {
	case *parser.OAS3Document:
		return doc.Paths
	case *parser.OAS2Document:
		return doc.Paths
	default:
		return nil
	}
}

// pathSkeleton replaces every {param} segment with a fixed placeholder so
// paths that only differ by parameter name compare equal.
func pathSkeleton(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = "{}"
		}
	}
	return strings.Join(segments, "/")
}

// NewPathParamsDefinedRule reports a path template parameter ({id}) with
// no corresponding "in: path" parameter declared on any operation (or the
// shared PathItem-level parameters) under it.
func NewPathParamsDefinedRule() *walker.Rule {
	return &walker.Rule{
		ID:              RulePathParamsDefined,
		SeverityDefault: problems.SeverityError,
		Visitors: map[string]walker.Visitor{
			"PathItem": {Enter: func(ctx *walker.Context, node any) {
				item, ok := node.(*parser.PathItem)
				if !ok {
					return
				}
				pathPattern := lastPointerSegment(ctx.Pointer())
				templated := templatedParams(pathPattern)
				if len(templated) == 0 {
					return
				}
				declared := make(map[string]bool)
				collectPathParams(item.Parameters, declared)
				for _, op := range []*parser.Operation{item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch, item.Trace} {
					if op != nil {
						collectPathParams(op.Parameters, declared)
					}
				}
				for _, name := range templated {
					if !declared[name] {
						ctx.Report(fmt.Sprintf("path parameter %q has no matching \"in: path\" parameter definition", name), true)
					}
				}
			}},
		},
	}
}

func lastPointerSegment(pointer string) string {
	idx := strings.LastIndex(pointer, "/")
	if idx < 0 {
		return pointer
	}
	return jsonPointerUnescape(pointer[idx+1:])
}

func jsonPointerUnescape(seg string) string {
	seg = strings.ReplaceAll(seg, "~1", "/")
	seg = strings.ReplaceAll(seg, "~0", "~")
	return seg
}

func templatedParams(pathPattern string) []string {
	var out []string
	for _, seg := range strings.Split(pathPattern, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			out = append(out, seg[1:len(seg)-1])
		}
	}
	return out
}

func collectPathParams(params []*parser.Parameter, into map[string]bool) {
	for _, p := range params {
		if p != nil && p.In == "path" {
			into[p.Name] = true
		}
	}
}

// NewBooleanParameterPrefixesRule reports boolean parameters
// whose name does not read as a yes/no question (is/has/should/can...).
func NewBooleanParameterPrefixesRule() *walker.Rule {
	prefixes := []string{"is", "has", "should", "can", "allow", "enable"}
	return &walker.Rule{
		ID:              RuleBooleanParameterPrefix,
		SeverityDefault: problems.SeverityWarn,
		Visitors: map[string]walker.Visitor{
			"Parameter": {Enter: func(ctx *walker.Context, node any) {
				p := node.(*parser.Parameter)
				if p.Schema == nil {
					return
				}
				t, _ := p.Schema.Type.(string)
				if t != "boolean" {
					return
				}
				name := strings.ToLower(p.Name)
				for _, prefix := range prefixes {
					if strings.HasPrefix(name, prefix) && !isLetter(runeAfter(p.Name, len(prefix))) {
						return
					}
				}
				ctx.Report(fmt.Sprintf("boolean parameter %q should be prefixed with is/has/should/can/allow/enable", p.Name), false)
			}},
		},
	}
}

func runeAfter(s string, i int) rune {
	if i >= len(s) {
		return 0
	}
	return rune(s[i])
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}
