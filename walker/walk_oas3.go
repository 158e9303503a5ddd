package walker

import (
	"github.com/oasguard/oasguard/internal/maputil"
	"github.com/oasguard/oasguard/parser"
)

// WalkOAS3 traverses an OAS 3.0.x/3.1.x document from its root. Mapping
// keys are visited in sorted order: the parser's struct model stores
// free-form mappings as Go maps, so sorting is what keeps two walks over
// the same document firing rules in the same order.
func (w *Walker) WalkOAS3(doc *parser.OAS3Document) {
	w.version = "3.0"
	if doc.OASVersion >= parser.OASVersion310 {
		w.version = "3.1"
	}
	w.visit("Document", "", doc, func() {
		if doc.Info != nil {
			w.visit("Info", childPointer("", "info"), doc.Info, nil)
		}
		serversPtr := childPointer("", "servers")
		for i, srv := range doc.Servers {
			if srv != nil {
				w.visit("Server", childIndex(serversPtr, i), srv, nil)
			}
		}
		tagsPtr := childPointer("", "tags")
		for i, tag := range doc.Tags {
			if tag != nil {
				w.visit("Tag", childIndex(tagsPtr, i), tag, nil)
			}
		}
		if doc.Paths != nil {
			w.walkOAS3Paths(doc.Paths, childPointer("", "paths"), doc.OASVersion)
		}
		if doc.Webhooks != nil {
			w.walkOAS3Webhooks(doc.Webhooks, childPointer("", "webhooks"), doc.OASVersion)
		}
		if doc.Components != nil {
			w.walkOAS3Components(doc.Components, childPointer("", "components"))
		}
	})
}

func (w *Walker) walkOAS3Paths(paths parser.Paths, base string, version parser.OASVersion) {
	for _, pathPattern := range maputil.SortedKeys(paths) {
		item := paths[pathPattern]
		if item == nil {
			continue
		}
		w.walkOAS3PathItem(item, childPointer(base, pathPattern), version)
	}
}

func (w *Walker) walkOAS3Webhooks(webhooks map[string]*parser.PathItem, base string, version parser.OASVersion) {
	for _, name := range maputil.SortedKeys(webhooks) {
		item := webhooks[name]
		if item == nil {
			continue
		}
		w.walkOAS3PathItem(item, childPointer(base, name), version)
	}
}

func (w *Walker) walkOAS3PathItem(item *parser.PathItem, itemPtr string, version parser.OASVersion) {
	w.visit("PathItem", itemPtr, item, func() {
		paramsPtr := childPointer(itemPtr, "parameters")
		for i, param := range item.Parameters {
			if param != nil {
				w.walkOAS3Parameter(param, childIndex(paramsPtr, i))
			}
		}
		ops := parser.GetOperations(item, version)
		for _, method := range maputil.SortedKeys(ops) {
			if op := ops[method]; op != nil {
				w.walkOAS3Operation(op, childPointer(itemPtr, method))
			}
		}
	})
}

func (w *Walker) walkOAS3Operation(op *parser.Operation, base string) {
	w.visit("Operation", base, op, func() {
		paramsPtr := childPointer(base, "parameters")
		for i, param := range op.Parameters {
			if param != nil {
				w.walkOAS3Parameter(param, childIndex(paramsPtr, i))
			}
		}
		if op.RequestBody != nil {
			w.walkOAS3RequestBody(op.RequestBody, childPointer(base, "requestBody"))
		}
		if op.Responses != nil {
			w.walkOAS3Responses(op.Responses, childPointer(base, "responses"))
		}
	})
}

func (w *Walker) walkOAS3Parameter(param *parser.Parameter, ptr string) {
	w.visit("Parameter", ptr, param, func() {
		if param.Schema != nil {
			w.walkOAS3Schema(param.Schema, childPointer(ptr, "schema"))
		}
		w.walkOAS3Content(param.Content, childPointer(ptr, "content"))
	})
}

func (w *Walker) walkOAS3RequestBody(body *parser.RequestBody, ptr string) {
	w.visit("RequestBody", ptr, body, func() {
		w.walkOAS3Content(body.Content, childPointer(ptr, "content"))
	})
}

func (w *Walker) walkOAS3Responses(responses *parser.Responses, base string) {
	w.visit("Responses", base, responses, func() {
		if responses.Default != nil {
			w.walkOAS3Response(responses.Default, childPointer(base, "default"))
		}
		for _, code := range maputil.SortedKeys(responses.Codes) {
			if resp := responses.Codes[code]; resp != nil {
				w.walkOAS3Response(resp, childPointer(base, code))
			}
		}
	})
}

func (w *Walker) walkOAS3Response(resp *parser.Response, ptr string) {
	w.visit("Response", ptr, resp, func() {
		headersPtr := childPointer(ptr, "headers")
		for _, name := range maputil.SortedKeys(resp.Headers) {
			if hdr := resp.Headers[name]; hdr != nil {
				w.walkOAS3Header(hdr, childPointer(headersPtr, name))
			}
		}
		w.walkOAS3Content(resp.Content, childPointer(ptr, "content"))
	})
}

func (w *Walker) walkOAS3Header(hdr *parser.Header, ptr string) {
	w.visit("Header", ptr, hdr, func() {
		if hdr.Schema != nil {
			w.walkOAS3Schema(hdr.Schema, childPointer(ptr, "schema"))
		}
		w.walkOAS3Content(hdr.Content, childPointer(ptr, "content"))
	})
}

func (w *Walker) walkOAS3Content(content map[string]*parser.MediaType, base string) {
	for _, mediaRange := range maputil.SortedKeys(content) {
		mt := content[mediaRange]
		if mt == nil {
			continue
		}
		mtPtr := childPointer(base, mediaRange)
		w.visit("MediaType", mtPtr, mt, func() {
			if mt.Schema != nil {
				w.walkOAS3Schema(mt.Schema, childPointer(mtPtr, "schema"))
			}
			examplesPtr := childPointer(mtPtr, "examples")
			for _, name := range maputil.SortedKeys(mt.Examples) {
				if ex := mt.Examples[name]; ex != nil {
					w.visit("Example", childPointer(examplesPtr, name), ex, nil)
				}
			}
		})
	}
}

func (w *Walker) walkOAS3Components(comps *parser.Components, base string) {
	w.visit("Components", base, comps, func() {
		schemasPtr := childPointer(base, "schemas")
		for _, name := range maputil.SortedKeys(comps.Schemas) {
			if s := comps.Schemas[name]; s != nil {
				w.walkOAS3Schema(s, childPointer(schemasPtr, name))
			}
		}
		responsesPtr := childPointer(base, "responses")
		for _, name := range maputil.SortedKeys(comps.Responses) {
			if resp := comps.Responses[name]; resp != nil {
				w.walkOAS3Response(resp, childPointer(responsesPtr, name))
			}
		}
		paramsPtr := childPointer(base, "parameters")
		for _, name := range maputil.SortedKeys(comps.Parameters) {
			if p := comps.Parameters[name]; p != nil {
				w.walkOAS3Parameter(p, childPointer(paramsPtr, name))
			}
		}
		bodiesPtr := childPointer(base, "requestBodies")
		for _, name := range maputil.SortedKeys(comps.RequestBodies) {
			if body := comps.RequestBodies[name]; body != nil {
				w.walkOAS3RequestBody(body, childPointer(bodiesPtr, name))
			}
		}
		headersPtr := childPointer(base, "headers")
		for _, name := range maputil.SortedKeys(comps.Headers) {
			if hdr := comps.Headers[name]; hdr != nil {
				w.walkOAS3Header(hdr, childPointer(headersPtr, name))
			}
		}
		secPtr := childPointer(base, "securitySchemes")
		for _, name := range maputil.SortedKeys(comps.SecuritySchemes) {
			if s := comps.SecuritySchemes[name]; s != nil {
				w.visit("SecurityScheme", childPointer(secPtr, name), s, nil)
			}
		}
	})
}

// walkOAS3Schema recurses through the schema's nested schema-bearing
// fields (properties, items, allOf/oneOf/anyOf) so shape rules like
// nullable-requires-type and the OAS 3.1 type-array check run against
// every nested schema, not only top-level ones.
func (w *Walker) walkOAS3Schema(s *parser.Schema, ptr string) {
	w.visit("Schema", ptr, s, func() {
		propsPtr := childPointer(ptr, "properties")
		for _, name := range maputil.SortedKeys(s.Properties) {
			if prop := s.Properties[name]; prop != nil {
				w.walkOAS3Schema(prop, childPointer(propsPtr, name))
			}
		}
		if item, ok := s.Items.(*parser.Schema); ok && item != nil {
			w.walkOAS3Schema(item, childPointer(ptr, "items"))
		}
		for i, sub := range s.AllOf {
			if sub != nil {
				w.walkOAS3Schema(sub, childIndex(childPointer(ptr, "allOf"), i))
			}
		}
		for i, sub := range s.OneOf {
			if sub != nil {
				w.walkOAS3Schema(sub, childIndex(childPointer(ptr, "oneOf"), i))
			}
		}
		for i, sub := range s.AnyOf {
			if sub != nil {
				w.walkOAS3Schema(sub, childIndex(childPointer(ptr, "anyOf"), i))
			}
		}
	})
}
