package walker

import (
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/schema"
)

// Context is passed to every rule visitor callback. It carries the current
// node's type and location, and exposes report and ignore; it has no
// method for resolving a $ref. Report appends the current location
// automatically and fills in the rule id and default severity, so visitor
// code only needs to supply a message (and, rarely, an override).
type Context struct {
	// Type is the NodeType governing the node currently being visited.
	Type *schema.NodeType
	// OASVersion is the version series of the document being walked
	// ("2.0", "3.0", "3.1").
	OASVersion string

	sourceURI       string
	pointer         string
	from            *problems.LocationStep
	ruleID          string
	severityDefault problems.Severity
	collector       *problems.Collector
	skipped         map[string]bool
}

// Pointer returns the RFC 6901 JSON Pointer of the node currently visited.
func (c *Context) Pointer() string { return c.pointer }

// SourceURI returns the absolute URI of the source document currently
// visited (changes across a $ref crossing).
func (c *Context) SourceURI() string { return c.sourceURI }

// Report emits a problem at the current node with the given message.
// RuleID, Severity (the rule's default), the innermost Location step, and
// From are filled in by the walker.
func (c *Context) Report(message string, reportOnKey bool) {
	c.ReportAt(c.pointer, message, reportOnKey)
}

// ReportWith emits a problem at the current node, allowing a caller to
// override severity or attach suggestions via p. p.Message, p.Severity,
// and p.Suggest are honored; p.Location/p.RuleID/p.From are overwritten.
func (c *Context) ReportWith(p problems.Problem) {
	if c.skipped[c.pointer+"\x00"+c.ruleID] {
		return
	}
	p.RuleID = c.ruleID
	if p.Severity == "" {
		p.Severity = c.severityDefault
	}
	p.From = c.from
	p.Location = []problems.LocationStep{{SourceURI: c.sourceURI, Pointer: c.pointer}}
	c.collector.Add(p)
}

// ReportAt emits a problem at a pointer other than the current node's own
// (for example a child field like ".../nullable" or ".../type/1").
func (c *Context) ReportAt(pointer, message string, reportOnKey bool) {
	key := pointer + "\x00" + c.ruleID
	if c.skipped[key] {
		return
	}
	p := problems.Problem{
		RuleID:   c.ruleID,
		Severity: c.severityDefault,
		Message:  message,
		From:     c.from,
		Location: []problems.LocationStep{{
			SourceURI:   c.sourceURI,
			Pointer:     pointer,
			ReportOnKey: reportOnKey,
		}},
	}
	c.collector.Add(p)
}

// Ignore marks the current node as skipped for the calling rule only;
// other rules still run on it.
func (c *Context) Ignore() {
	c.skipped[c.pointer+"\x00"+c.ruleID] = true
}
