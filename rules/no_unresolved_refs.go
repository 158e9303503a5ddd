package rules

import (
	"github.com/oasguard/oasguard/parser"
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/walker"
)

const NoUnresolvedRefsRuleID = "no-unresolved-refs"

// NewNoUnresolvedRefsRule reports any $ref the parser left unresolved on
// a Schema or Parameter node; $refs on other node types are not checked.
// The parser eagerly inlines every non-circular external $ref at parse
// time (see parser/doc.go's "silent fallback" note); a $ref
// field that is still non-empty by the time the walker visits that node
// means either a genuine cycle or a fetch failure, both of which are the
// same finding from a lint's point of view: the document has a reference
// a reader of the bundled output will not be able to follow.
func NewNoUnresolvedRefsRule() *walker.Rule {
	return &walker.Rule{
		ID:              NoUnresolvedRefsRuleID,
		SeverityDefault: problems.SeverityError,
		Visitors: map[string]walker.Visitor{
			"Schema":    {Enter: unresolvedSchemaEnter},
			"Parameter": {Enter: unresolvedParameterEnter},
		},
	}
}

func unresolvedSchemaEnter(ctx *walker.Context, node any) {
	s, ok := node.(*parser.Schema)
	if !ok || s.Ref == "" {
		return
	}
	ctx.ReportAt(ctx.Pointer()+"/$ref", "could not resolve reference: "+s.Ref, false)
}

func unresolvedParameterEnter(ctx *walker.Context, node any) {
	p, ok := node.(*parser.Parameter)
	if !ok || p.Ref == "" {
		return
	}
	ctx.ReportAt(ctx.Pointer()+"/$ref", "could not resolve reference: "+p.Ref, false)
}
