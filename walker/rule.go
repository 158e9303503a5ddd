package walker

import "github.com/oasguard/oasguard/problems"

// Visitor holds the enter and/or leave callbacks a Rule registers for one
// NodeType. Either may be nil.
type Visitor struct {
	Enter func(ctx *Context, node any)
	Leave func(ctx *Context, node any)
}

// Rule is a named check expressed as visitors over NodeType names,
// matching the document model's Rule shape: { id, visitors, severityDefault }.
type Rule struct {
	ID              string
	Visitors        map[string]Visitor
	SeverityDefault problems.Severity
}
