// Package walker implements the document graph engine's typed
// visitor/walker: it traverses a parsed OpenAPI document guided by the
// schema package's NodeType registry, dispatches to rule visitors in
// enter/leave phases, and routes reported problems into a
// problems.Collector.
//
// Unlike a reflection-driven generic tree walk, traversal here is a
// concrete recursive descent over the parser package's typed structs (one
// recursive function per OAS major version), the same style the document
// parser itself uses. NodeType dispatch happens by looking up each
// visited Go value's corresponding NodeType name in the schema registry
// and firing any rule visitors registered for that name.
//
// Each visit runs five phases in order: preprocessors (may rewrite the
// node in place), rule enter callbacks, recursion into children, rule
// leave callbacks, decorators. A rule callback that panics is contained:
// the panic is converted to an oaserrors.RuleError, logged, counted, and
// the walk continues.
package walker

import (
	"fmt"
	"strconv"

	"github.com/oasguard/oasguard/oaserrors"
	"github.com/oasguard/oasguard/parser"
	"github.com/oasguard/oasguard/problems"
	"github.com/oasguard/oasguard/schema"
)

// Rewrite is a preprocessor or decorator bound to a walk: a named
// function that may mutate the node it is handed. Preprocessors run
// before any rule sees the node; decorators run after every rule has
// left it.
type Rewrite struct {
	ID string
	Fn func(node any) (any, error)
}

// RefSiteFunc reports whether the node at pointer was produced by
// inlining a $ref written at that position in the source, returning the
// ref site as a location step. The walker pushes the step as the From of
// every problem reported at or below the site.
type RefSiteFunc func(pointer string) (problems.LocationStep, bool)

// Walker drives one walk of one document.
type Walker struct {
	Registry  *schema.Registry
	Rules     []*Rule
	Collector *problems.Collector
	SourceURI string

	// Preprocessors and Decorators run on every visited node, before and
	// after the rule phases respectively. Optional.
	Preprocessors []Rewrite
	Decorators    []Rewrite

	// RefSite, when set, supplies $ref crossing information so problems
	// reported inside an inlined ref target carry a From step. Optional.
	RefSite RefSiteFunc

	// Logger receives contained rule failures. Optional.
	Logger parser.Logger

	skipped    map[string]bool
	from       *problems.LocationStep
	version    string
	ruleErrors int
}

// New creates a Walker bound to a NodeType registry and rule set, emitting
// problems into collector for documents identified by sourceURI.
func New(registry *schema.Registry, rules []*Rule, collector *problems.Collector, sourceURI string) *Walker {
	return &Walker{
		Registry:  registry,
		Rules:     rules,
		Collector: collector,
		SourceURI: sourceURI,
		skipped:   make(map[string]bool),
	}
}

// RuleErrors reports how many rule callbacks and rewrites failed and were
// contained during the walk.
func (w *Walker) RuleErrors() int { return w.ruleErrors }

// visit dispatches the five phases for typeName at pointer, recursing via
// fn between the enter and leave phases.
func (w *Walker) visit(typeName, pointer string, node any, fn func()) {
	if w.RefSite != nil {
		if step, ok := w.RefSite(pointer); ok {
			prev := w.from
			w.from = &step
			defer func() { w.from = prev }()
		}
	}

	nt, _ := w.Registry.Lookup(typeName)
	ctxFor := func() *Context {
		return &Context{
			Type:       nt,
			OASVersion: w.version,
			sourceURI:  w.SourceURI,
			pointer:    pointer,
			from:       w.from,
			collector:  w.Collector,
			skipped:    w.skipped,
		}
	}

	for _, pre := range w.Preprocessors {
		w.rewrite(pre, node)
	}

	for _, rule := range w.Rules {
		v, ok := rule.Visitors[typeName]
		if !ok || v.Enter == nil {
			continue
		}
		ctx := ctxFor()
		ctx.ruleID = rule.ID
		ctx.severityDefault = rule.SeverityDefault
		w.fire(rule.ID, func() { v.Enter(ctx, node) })
	}

	if fn != nil {
		fn()
	}

	for _, rule := range w.Rules {
		v, ok := rule.Visitors[typeName]
		if !ok || v.Leave == nil {
			continue
		}
		ctx := ctxFor()
		ctx.ruleID = rule.ID
		ctx.severityDefault = rule.SeverityDefault
		w.fire(rule.ID, func() { v.Leave(ctx, node) })
	}

	for _, dec := range w.Decorators {
		w.rewrite(dec, node)
	}
}

// fire invokes one rule callback, converting a panic into a contained
// oaserrors.RuleError. The failing rule is logged and counted; other
// rules and the rest of the walk are unaffected.
func (w *Walker) fire(ruleID string, cb func()) {
	defer func() {
		if r := recover(); r != nil {
			w.ruleErrors++
			err := &oaserrors.RuleError{RuleID: ruleID, Message: fmt.Sprintf("rule callback panicked: %v", r)}
			w.logger().Warn("rule failed, continuing walk", "rule", ruleID, "error", err)
		}
	}()
	cb()
}

// rewrite invokes one preprocessor or decorator. Rewrites mutate the node
// they are handed in place; a returned error or panic is contained the
// same way a rule failure is.
func (w *Walker) rewrite(rw Rewrite, node any) {
	defer func() {
		if r := recover(); r != nil {
			w.ruleErrors++
			w.logger().Warn("rewrite panicked, continuing walk", "rewrite", rw.ID, "panic", fmt.Sprint(r))
		}
	}()
	if _, err := rw.Fn(node); err != nil {
		w.ruleErrors++
		w.logger().Warn("rewrite failed, continuing walk", "rewrite", rw.ID, "error", err)
	}
}

func (w *Walker) logger() parser.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return parser.NopLogger{}
}

// childPointer extends a pointer with one raw (unescaped) segment.
func childPointer(parent, segment string) string {
	return parent + problems.JSONPointer(segment)
}

// childIndex extends a pointer with an array index segment.
func childIndex(parent string, i int) string {
	return childPointer(parent, strconv.Itoa(i))
}
