package walker

import (
	"github.com/oasguard/oasguard/internal/maputil"
	"github.com/oasguard/oasguard/parser"
)

// WalkOAS2 traverses an OAS 2.0 (Swagger) document from its root. Mapping
// keys are visited in sorted order, for the same determinism reason as
// WalkOAS3.
func (w *Walker) WalkOAS2(doc *parser.OAS2Document) {
	w.version = "2.0"
	w.visit("Document", "", doc, func() {
		if doc.Info != nil {
			w.visit("Info", childPointer("", "info"), doc.Info, nil)
		}
		tagsPtr := childPointer("", "tags")
		for i, tag := range doc.Tags {
			if tag != nil {
				w.visit("Tag", childIndex(tagsPtr, i), tag, nil)
			}
		}
		if doc.Paths != nil {
			w.walkOAS2Paths(doc.Paths, childPointer("", "paths"))
		}
		definitionsPtr := childPointer("", "definitions")
		for _, name := range maputil.SortedKeys(doc.Definitions) {
			if s := doc.Definitions[name]; s != nil {
				w.walkOAS2Schema(s, childPointer(definitionsPtr, name))
			}
		}
		parametersPtr := childPointer("", "parameters")
		for _, name := range maputil.SortedKeys(doc.Parameters) {
			if p := doc.Parameters[name]; p != nil {
				w.walkOAS2Parameter(p, childPointer(parametersPtr, name))
			}
		}
		responsesPtr := childPointer("", "responses")
		for _, name := range maputil.SortedKeys(doc.Responses) {
			if resp := doc.Responses[name]; resp != nil {
				w.walkOAS2Response(resp, childPointer(responsesPtr, name))
			}
		}
		secPtr := childPointer("", "securityDefinitions")
		for _, name := range maputil.SortedKeys(doc.SecurityDefinitions) {
			if s := doc.SecurityDefinitions[name]; s != nil {
				w.visit("SecurityScheme", childPointer(secPtr, name), s, nil)
			}
		}
	})
}

func (w *Walker) walkOAS2Paths(paths parser.Paths, base string) {
	for _, pathPattern := range maputil.SortedKeys(paths) {
		item := paths[pathPattern]
		if item == nil {
			continue
		}
		itemPtr := childPointer(base, pathPattern)
		w.visit("PathItem", itemPtr, item, func() {
			paramsPtr := childPointer(itemPtr, "parameters")
			for i, param := range item.Parameters {
				if param != nil {
					w.walkOAS2Parameter(param, childIndex(paramsPtr, i))
				}
			}
			ops := parser.GetOperations(item, parser.OASVersion20)
			for _, method := range maputil.SortedKeys(ops) {
				if op := ops[method]; op != nil {
					w.walkOAS2Operation(op, childPointer(itemPtr, method))
				}
			}
		})
	}
}

func (w *Walker) walkOAS2Operation(op *parser.Operation, base string) {
	w.visit("Operation", base, op, func() {
		paramsPtr := childPointer(base, "parameters")
		for i, param := range op.Parameters {
			if param != nil {
				w.walkOAS2Parameter(param, childIndex(paramsPtr, i))
			}
		}
		if op.Responses != nil {
			w.walkOAS2Responses(op.Responses, childPointer(base, "responses"))
		}
	})
}

func (w *Walker) walkOAS2Parameter(param *parser.Parameter, ptr string) {
	w.visit("Parameter", ptr, param, func() {
		if param.Schema != nil {
			w.walkOAS2Schema(param.Schema, childPointer(ptr, "schema"))
		}
	})
}

func (w *Walker) walkOAS2Responses(responses *parser.Responses, base string) {
	w.visit("Responses", base, responses, func() {
		if responses.Default != nil {
			w.walkOAS2Response(responses.Default, childPointer(base, "default"))
		}
		for _, code := range maputil.SortedKeys(responses.Codes) {
			if resp := responses.Codes[code]; resp != nil {
				w.walkOAS2Response(resp, childPointer(base, code))
			}
		}
	})
}

func (w *Walker) walkOAS2Response(resp *parser.Response, ptr string) {
	w.visit("Response", ptr, resp, func() {
		if resp.Schema != nil {
			w.walkOAS2Schema(resp.Schema, childPointer(ptr, "schema"))
		}
		headersPtr := childPointer(ptr, "headers")
		for _, name := range maputil.SortedKeys(resp.Headers) {
			if hdr := resp.Headers[name]; hdr != nil {
				w.visit("Header", childPointer(headersPtr, name), hdr, nil)
			}
		}
	})
}

func (w *Walker) walkOAS2Schema(s *parser.Schema, ptr string) {
	w.visit("Schema", ptr, s, func() {
		propsPtr := childPointer(ptr, "properties")
		for _, name := range maputil.SortedKeys(s.Properties) {
			if prop := s.Properties[name]; prop != nil {
				w.walkOAS2Schema(prop, childPointer(propsPtr, name))
			}
		}
		if item, ok := s.Items.(*parser.Schema); ok && item != nil {
			w.walkOAS2Schema(item, childPointer(ptr, "items"))
		}
		for i, sub := range s.AllOf {
			if sub != nil {
				w.walkOAS2Schema(sub, childIndex(childPointer(ptr, "allOf"), i))
			}
		}
	})
}
