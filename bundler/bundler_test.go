package bundler_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasguard/oasguard/bundler"
	"github.com/oasguard/oasguard/parser"
)

func TestBundle_InlinesExternalRefAndRewritesLocally(t *testing.T) {
	doc := map[string]any{
		"openapi": "3.0.0",
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{"$ref": "common.yaml#/Pet"},
								},
							},
						},
					},
				},
			},
		},
	}

	fetch := func(ref string) (any, error) {
		if ref == "common.yaml#/Pet" {
			return map[string]any{"type": "object"}, nil
		}
		return nil, fmt.Errorf("unexpected ref %q", ref)
	}

	out, err := bundler.Bundle(doc, parser.OASVersion300, fetch)
	require.NoError(t, err)

	components, ok := out["components"].(map[string]any)
	require.True(t, ok)
	schemas, ok := components["schemas"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, schemas, "Pet")

	schemaRef := out["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)["200"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["schema"].(map[string]any)
	assert.Equal(t, "#/components/schemas/Pet", schemaRef["$ref"])
}

func TestBundle_RenamesOnCollision(t *testing.T) {
	doc := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"Pet": map[string]any{"type": "string"},
			},
		},
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{"schema": map[string]any{"$ref": "other.yaml#/Pet"}},
			},
		},
	}

	fetch := func(ref string) (any, error) {
		return map[string]any{"type": "object"}, nil
	}

	out, err := bundler.Bundle(doc, parser.OASVersion300, fetch)
	require.NoError(t, err)

	schemas := out["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Contains(t, schemas, "Pet")
	assert.Contains(t, schemas, "Pet2")
}

func TestBundle_SameRefFromTwoSitesBundledOnce(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{"schema": map[string]any{"$ref": "common.yaml#/Pet"}},
			},
			"/owners": map[string]any{
				"get": map[string]any{"schema": map[string]any{"$ref": "common.yaml#/Pet"}},
			},
		},
	}

	fetches := 0
	fetch := func(ref string) (any, error) {
		fetches++
		return map[string]any{"type": "object"}, nil
	}

	out, err := bundler.Bundle(doc, parser.OASVersion300, fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, fetches, "one ref string fetched once regardless of site count")
	schemas := out["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Len(t, schemas, 1)

	petsRef := out["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["schema"].(map[string]any)["$ref"]
	ownersRef := out["paths"].(map[string]any)["/owners"].(map[string]any)["get"].(map[string]any)["schema"].(map[string]any)["$ref"]
	assert.Equal(t, "#/components/schemas/Pet", petsRef)
	assert.Equal(t, petsRef, ownersRef, "both sites point at the same bundled component")
}

func TestBundle_CircularExternalRefsTerminate(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{"schema": map[string]any{"$ref": "a.yaml#/A"}},
			},
		},
	}

	// a.yaml#/A refers to b.yaml#/B, which refers back to a.yaml#/A.
	fetches := 0
	fetch := func(ref string) (any, error) {
		fetches++
		require.LessOrEqual(t, fetches, 2, "a circular chain must not refetch")
		switch ref {
		case "a.yaml#/A":
			return map[string]any{
				"type":       "object",
				"properties": map[string]any{"next": map[string]any{"$ref": "b.yaml#/B"}},
			}, nil
		case "b.yaml#/B":
			return map[string]any{
				"type":       "object",
				"properties": map[string]any{"back": map[string]any{"$ref": "a.yaml#/A"}},
			}, nil
		default:
			return nil, fmt.Errorf("unexpected ref %q", ref)
		}
	}

	out, err := bundler.Bundle(doc, parser.OASVersion300, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)

	schemas := out["components"].(map[string]any)["schemas"].(map[string]any)
	require.Contains(t, schemas, "A")
	require.Contains(t, schemas, "B")

	// The site closing the cycle stays a $ref, pointing into the bundled
	// container.
	back := schemas["B"].(map[string]any)["properties"].(map[string]any)["back"].(map[string]any)
	assert.Equal(t, "#/components/schemas/A", back["$ref"])
	next := schemas["A"].(map[string]any)["properties"].(map[string]any)["next"].(map[string]any)
	assert.Equal(t, "#/components/schemas/B", next["$ref"])
}

func TestDereference_InlinesAllRefs(t *testing.T) {
	doc := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"Pet": map[string]any{"type": "string"},
			},
		},
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/Pet"}},
			},
		},
	}

	resolver := parser.NewRefResolver(t.TempDir())
	out, err := bundler.Dereference(doc, resolver, bundler.Options{})
	require.NoError(t, err)

	schema := out["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["schema"].(map[string]any)
	assert.Equal(t, "string", schema["type"])
}

func TestNormalize_ReordersOAS3TopLevelKeys(t *testing.T) {
	doc := map[string]any{
		"components": map[string]any{"schemas": map[string]any{}},
		"paths":      map[string]any{},
		"info":       map[string]any{"title": "Pets", "version": "1.0.0"},
		"openapi":    "3.0.0",
		"x-internal": true,
	}

	out, err := bundler.Normalize(doc, parser.OASVersion300)
	require.NoError(t, err)

	text := string(out)
	iOpenapi := indexOf(t, text, "openapi:")
	iInfo := indexOf(t, text, "info:")
	iPaths := indexOf(t, text, "paths:")
	iComponents := indexOf(t, text, "components:")
	iExt := indexOf(t, text, "x-internal:")

	assert.Less(t, iOpenapi, iInfo)
	assert.Less(t, iInfo, iPaths)
	assert.Less(t, iPaths, iComponents)
	assert.Less(t, iComponents, iExt, "keys absent from the canonical table sort after it")
}

func TestNormalize_ReordersOAS2TopLevelKeys(t *testing.T) {
	doc := map[string]any{
		"paths":   map[string]any{},
		"swagger": "2.0",
		"info":    map[string]any{"title": "Pets", "version": "1.0.0"},
		"host":    "api.example.com",
	}

	out, err := bundler.Normalize(doc, parser.OASVersion20)
	require.NoError(t, err)

	text := string(out)
	iSwagger := indexOf(t, text, "swagger:")
	iInfo := indexOf(t, text, "info:")
	iHost := indexOf(t, text, "host:")
	iPaths := indexOf(t, text, "paths:")

	assert.Less(t, iSwagger, iInfo)
	assert.Less(t, iInfo, iHost)
	assert.Less(t, iHost, iPaths)
}

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	idx := -1
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0, "expected %q in:\n%s", substr, s)
	return idx
}
