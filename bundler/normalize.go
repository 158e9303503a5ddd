package bundler

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/oasguard/oasguard/parser"
)

// oas3KeyOrder and oas2KeyOrder are the canonical top-level key orders
// Normalize emits. Keys absent from a document are simply skipped; keys present
// in a document but not named here are appended afterward, sorted, so no
// data is ever dropped by Normalize.
var oas3KeyOrder = []string{
	"openapi", "info", "jsonSchemaDialect", "servers", "security", "tags",
	"externalDocs", "paths", "webhooks", "x-webhooks", "components",
}

var oas2KeyOrder = []string{
	"swagger", "info", "host", "basePath", "schemes", "consumes", "produces",
	"security", "tags", "externalDocs", "paths", "definitions", "parameters",
	"responses", "securityDefinitions",
}

// Normalize reorders doc's top-level keys into the canonical order for its
// OAS version series, without touching $refs or any nested structure, and
// returns the re-marshaled YAML. It builds its output through the
// go.yaml.in/yaml/v4 Node API rather than plain map marshaling so that
// nested scalars keep their natural YAML style (quoting, flow vs block)
// instead of being forced into one encoder-default style.
func Normalize(doc map[string]any, version parser.OASVersion) ([]byte, error) {
	order := oas3KeyOrder
	if version == parser.OASVersion20 {
		order = oas2KeyOrder
	}

	node, err := orderedMappingNode(doc, order)
	if err != nil {
		return nil, fmt.Errorf("bundler: normalizing document: %w", err)
	}

	docNode := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{node}}
	return yaml.Marshal(docNode)
}

// orderedMappingNode builds a MappingNode for m whose pairs visit order's
// keys first, in that order, then every remaining key of m not named by
// order, sorted (via sortedKeys, shared with Bundle's own deterministic
// output needs).
func orderedMappingNode(m map[string]any, order []string) (*yaml.Node, error) {
	seen := make(map[string]bool, len(order))
	keys := make([]string, 0, len(m))
	for _, k := range order {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	rest := make(map[string]any, len(m)-len(seen))
	for k, v := range m {
		if !seen[k] {
			rest[k] = v
		}
	}
	keys = append(keys, sortedKeys(rest)...)

	node := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, len(keys)*2)}
	for _, k := range keys {
		valNode := &yaml.Node{}
		if err := valNode.Encode(m[k]); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, valNode)
	}
	return node, nil
}
