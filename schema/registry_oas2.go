package schema

// NewOas2Registry builds the NodeType registry for OAS 2.0 (Swagger)
// documents.
func NewOas2Registry() *Registry {
	r := NewRegistry("2.0")

	r.Define(&NodeType{
		Name: "Document",
		Kind: KindObject,
		Fields: []Field{
			{Name: "swagger", Type: "string", Required: true},
			{Name: "info", Type: "Info", Required: true},
			{Name: "paths", Type: "Paths", Required: true},
			{Name: "definitions", Type: "MapOf(Schema)"},
			{Name: "parameters", Type: "MapOf(Parameter)"},
			{Name: "responses", Type: "MapOf(Response)"},
			{Name: "securityDefinitions", Type: "MapOf(SecurityScheme)"},
		},
		ExtensionsAllowed: true,
		ShapeRules: []ShapeRule{
			{
				ID:          RuleInfoRequired,
				Description: "The field `info` must be present on this level.",
				ReportOnKey: true,
			},
		},
	})

	r.Define(&NodeType{
		Name: "Info",
		Kind: KindObject,
		Fields: []Field{
			{Name: "title", Type: "string", Required: true},
			{Name: "version", Type: "string", Required: true},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{Name: "Paths", Kind: KindMapOf, ElementType: "PathItem"})

	r.Define(&NodeType{
		Name: "PathItem",
		Kind: KindObject,
		Fields: []Field{
			{Name: "get", Type: "Operation"},
			{Name: "put", Type: "Operation"},
			{Name: "post", Type: "Operation"},
			{Name: "delete", Type: "Operation"},
			{Name: "options", Type: "Operation"},
			{Name: "head", Type: "Operation"},
			{Name: "patch", Type: "Operation"},
			{Name: "parameters", Type: "[]Parameter"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Operation",
		Kind: KindObject,
		Fields: []Field{
			{Name: "operationId", Type: "string"},
			{Name: "parameters", Type: "[]Parameter"},
			{Name: "responses", Type: "Responses", Required: true},
			{Name: "consumes", Type: "[]string"},
			{Name: "produces", Type: "[]string"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Parameter",
		Kind: KindObject,
		Fields: []Field{
			{Name: "name", Type: "string", Required: true},
			{Name: "in", Type: "string", Required: true},
			{Name: "required", Type: "boolean"},
			{Name: "type", Type: "string"},
			{Name: "schema", Type: "Schema"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Schema",
		Kind: KindObject,
		Fields: []Field{
			{Name: "type", Type: "string"},
			{Name: "properties", Type: "MapOf(Schema)"},
			{Name: "items", Type: "Schema"},
			{Name: "allOf", Type: "[]Schema"},
			{Name: "enum", Type: "[]any"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Responses",
		Kind: KindMapOf,
		PatternProperties: map[string]string{
			`^[1-5](?:XX|\d{2})$`: "Response",
			`^default$`:           "Response",
		},
	})

	r.Define(&NodeType{
		Name: "SecurityScheme",
		Kind: KindObject,
		Fields: []Field{
			{Name: "type", Type: "string", Required: true},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Response",
		Kind: KindObject,
		Fields: []Field{
			{Name: "description", Type: "string", Required: true},
			{Name: "schema", Type: "Schema"},
			{Name: "headers", Type: "MapOf(Header)"},
			{Name: "examples", Type: "MapOf(any)"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Header",
		Kind: KindObject,
		Fields: []Field{
			{Name: "type", Type: "string", Required: true},
			{Name: "description", Type: "string"},
			{Name: "format", Type: "string"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Tag",
		Kind: KindObject,
		Fields: []Field{
			{Name: "name", Type: "string", Required: true},
			{Name: "description", Type: "string"},
		},
		ExtensionsAllowed: true,
	})

	return r
}

// Oas2 is the NodeType registry for OAS 2.0 documents.
var Oas2 = NewOas2Registry()
