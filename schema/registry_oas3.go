package schema

// shape rule ids shared across OAS 3.x registries.
const (
	RuleInfoRequired          = "root-info-required"
	RuleRootContentRequired   = "root-content-required"
	RuleParamSchemaOrContent  = "parameter-schema-or-content"
	RuleNullableRequiresType  = "schema-nullable-requires-type"
	RuleTypeArrayElementValid = "schema-type-array-element"
)

var oas31Primitives = []string{"object", "array", "string", "number", "integer", "boolean", "null"}

// NewOas3Registry builds the NodeType registry shared by OAS 3.0.x and
// 3.1.x documents. is31 toggles the few places their shapes diverge:
// Schema.Type as a bare string (3.0) vs. string-or-array (3.1), the
// webhooks addition, and whether `nullable` participates.
func NewOas3Registry(is31 bool) *Registry {
	version := "3.0"
	if is31 {
		version = "3.1"
	}
	r := NewRegistry(version)

	doc := &NodeType{
		Name: "Document",
		Kind: KindObject,
		Fields: []Field{
			{Name: "openapi", Type: "string", Required: true},
			{Name: "info", Type: "Info", Required: true},
			{Name: "servers", Type: "[]Server"},
			{Name: "paths", Type: "Paths"},
			{Name: "components", Type: "Components"},
			{Name: "security", Type: "[]SecurityRequirement"},
			{Name: "tags", Type: "[]Tag"},
			{Name: "externalDocs", Type: "ExternalDocs"},
		},
		ExtensionsAllowed: true,
		ShapeRules: []ShapeRule{
			{
				ID:          RuleInfoRequired,
				Description: "The field `info` must be present on this level.",
				ReportOnKey: true,
			},
		},
	}
	if is31 {
		doc.Fields = append(doc.Fields,
			Field{Name: "jsonSchemaDialect", Type: "string"},
			Field{Name: "webhooks", Type: "MapOf(PathItem)"},
		)
		doc.ShapeRules = append(doc.ShapeRules, ShapeRule{
			ID:          RuleRootContentRequired,
			Description: "Must contain at least one of the following fields: paths, components, webhooks.",
			ReportOnKey: true,
		})
	}
	r.Define(doc)

	r.Define(&NodeType{
		Name: "Info",
		Kind: KindObject,
		Fields: []Field{
			{Name: "title", Type: "string", Required: true},
			{Name: "version", Type: "string", Required: true},
			{Name: "description", Type: "string"},
			{Name: "contact", Type: "Contact"},
			{Name: "license", Type: "License"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name:           "Paths",
		Kind:           KindMapOf,
		ElementType:    "PathItem",
		AdditionalType: "",
	})

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
			{Name: "trace", Type: "Operation"},
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
			{Name: "requestBody", Type: "RequestBody"},
			{Name: "responses", Type: "Responses", Required: true},
			{Name: "tags", Type: "[]string"},
			{Name: "summary", Type: "string"},
			{Name: "description", Type: "string"},
			{Name: "deprecated", Type: "boolean"},
			{Name: "security", Type: "[]SecurityRequirement"},
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
			{Name: "schema", Type: "Schema"},
			{Name: "content", Type: "MapOf(MediaType)"},
		},
		ExtensionsAllowed: true,
		ShapeRules: []ShapeRule{
			{
				ID:          RuleParamSchemaOrContent,
				Description: "Must contain at least one of the following fields: schema, content.",
				ReportOnKey: true,
			},
		},
	})

	schemaNode := &NodeType{
		Name: "Schema",
		Kind: KindObject,
		Fields: []Field{
			{Name: "type", Type: "SchemaType"},
			{Name: "properties", Type: "MapOf(Schema)"},
			{Name: "items", Type: "Schema"},
			{Name: "allOf", Type: "[]Schema"},
			{Name: "oneOf", Type: "[]Schema"},
			{Name: "anyOf", Type: "[]Schema"},
			{Name: "enum", Type: "[]any"},
			{Name: "const", Type: "any"},
		},
		ExtensionsAllowed: true,
	}
	if is31 {
		schemaNode.Fields = append(schemaNode.Fields, Field{Name: "prefixItems", Type: "[]Schema"})
		schemaNode.ShapeRules = append(schemaNode.ShapeRules, ShapeRule{
			ID: RuleTypeArrayElementValid,
			Description: "`type` can be one of the following only: " +
				`"object", "array", "string", "number", "integer", "boolean", "null".`,
			ReportOnKey: false,
		})
	} else {
		schemaNode.Fields = append(schemaNode.Fields, Field{Name: "nullable", Type: "boolean"})
		schemaNode.ShapeRules = append(schemaNode.ShapeRules, ShapeRule{
			ID:          RuleNullableRequiresType,
			Description: "The `type` field must be defined when the `nullable` field is used.",
			ReportOnKey: false,
		})
	}
	r.Define(schemaNode)

	typeNode := &NodeType{Name: "SchemaType", Kind: KindScalar, Primitive: "string"}
	if is31 {
		typeNode.Kind = KindUnion
		typeNode.ShapeRules = []ShapeRule{{
			ID: RuleTypeArrayElementValid,
			Description: "`type` can be one of the following only: " +
				`"object", "array", "string", "number", "integer", "boolean", "null".`,
			ReportOnKey: false,
		}}
	}
	r.Define(typeNode)

	r.Define(&NodeType{
		Name: "Responses",
		Kind: KindMapOf,
		PatternProperties: map[string]string{
			`^[1-5](?:XX|\d{2})$`: "Response",
			`^default$`:           "Response",
		},
	})

	r.Define(&NodeType{
		Name: "Components",
		Kind: KindObject,
		Fields: []Field{
			{Name: "schemas", Type: "MapOf(Schema)"},
			{Name: "responses", Type: "MapOf(Response)"},
			{Name: "parameters", Type: "MapOf(Parameter)"},
			{Name: "requestBodies", Type: "MapOf(RequestBody)"},
			{Name: "headers", Type: "MapOf(Header)"},
			{Name: "securitySchemes", Type: "MapOf(SecurityScheme)"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "SecurityScheme",
		Kind: KindObject,
		Fields: []Field{
			{Name: "type", Type: "string", Required: true},
			{Name: "scheme", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "in", Type: "string"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "RequestBody",
		Kind: KindObject,
		Fields: []Field{
			{Name: "description", Type: "string"},
			{Name: "content", Type: "MapOf(MediaType)", Required: true},
			{Name: "required", Type: "boolean"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Response",
		Kind: KindObject,
		Fields: []Field{
			{Name: "description", Type: "string", Required: true},
			{Name: "headers", Type: "MapOf(Header)"},
			{Name: "content", Type: "MapOf(MediaType)"},
			{Name: "links", Type: "MapOf(Link)"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "MediaType",
		Kind: KindObject,
		Fields: []Field{
			{Name: "schema", Type: "Schema"},
			{Name: "example", Type: "any"},
			{Name: "examples", Type: "MapOf(Example)"},
			{Name: "encoding", Type: "MapOf(Encoding)"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Header",
		Kind: KindObject,
		Fields: []Field{
			{Name: "description", Type: "string"},
			{Name: "required", Type: "boolean"},
			{Name: "deprecated", Type: "boolean"},
			{Name: "schema", Type: "Schema"},
			{Name: "content", Type: "MapOf(MediaType)"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Tag",
		Kind: KindObject,
		Fields: []Field{
			{Name: "name", Type: "string", Required: true},
			{Name: "description", Type: "string"},
			{Name: "externalDocs", Type: "ExternalDocs"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Server",
		Kind: KindObject,
		Fields: []Field{
			{Name: "url", Type: "string", Required: true},
			{Name: "description", Type: "string"},
			{Name: "variables", Type: "MapOf(ServerVariable)"},
		},
		ExtensionsAllowed: true,
	})

	r.Define(&NodeType{
		Name: "Example",
		Kind: KindObject,
		Fields: []Field{
			{Name: "summary", Type: "string"},
			{Name: "description", Type: "string"},
			{Name: "value", Type: "any"},
			{Name: "externalValue", Type: "string"},
		},
		ExtensionsAllowed: true,
	})

	return r
}

// Oas3_0 is the NodeType registry for OAS 3.0.x documents.
var Oas3_0 = NewOas3Registry(false)

// Oas3_1 is the NodeType registry for OAS 3.1.x documents.
var Oas3_1 = NewOas3Registry(true)
