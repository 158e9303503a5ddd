// Package oastools provides a document graph engine for linting and
// transforming OpenAPI Specification (OAS) documents: OAS 2.0 (Swagger),
// 3.0.x, and 3.1.x.
//
// # Overview
//
// The engine is composed of a chain of focused packages, each owning one
// stage of the pipeline a lint or bundle run drives:
//
//   - parser: parses YAML/JSON into a typed document tree, with optional
//     source-position tracking and eager external $ref resolution
//   - schema: a per-OAS-version registry describing each node type's
//     children, the shape the walker traverses by
//   - walker: an enter/leave visitor that drives rules over a parsed
//     document using the schema registry
//   - rules: built-in lint rules (spec shape, unresolved refs, operation
//     conventions, path ambiguity, naming) plus declarative assertion
//     compilation
//   - config: resolves a styleguide config's extends chain, preset
//     fallback, plugin list, and per-API overrides into one bound Config
//   - problems: deduplicates, sorts, and ignore-filters the Problems a
//     walk produces
//   - refresolver: lazy, cache-and-dedup-backed external $ref resolution
//     used by the bundle command; the walker and rules do not call it
//   - bundler: bundle (inline external refs into components/...),
//     dereference (inline everything), and normalize (canonical key
//     order) document transforms
//   - pluginapi: the Plugin type and loader used to extend rules,
//     assertions, preprocessors, and decorators from outside this module
//   - lint: the entry point binding a resolved Config's rules to a
//     Walker and running it over one document
//
// # Installation
//
//	go get github.com/oasguard/oasguard
//
// # Quick Start
//
// Lint a document with the built-in "recommended" preset:
//
//	import (
//		"github.com/oasguard/oasguard/config"
//		"github.com/oasguard/oasguard/lint"
//	)
//
//	cfg, err := config.Resolve(&config.RawConfig{
//		Styleguide: config.StyleguideConfig{Extends: []string{"recommended"}},
//	}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := lint.Document("openapi.yaml", cfg, nil, lint.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range result.Problems {
//		fmt.Printf("%s: %s (%s)\n", p.Severity, p.Message, p.RuleID)
//	}
//
// Parse a document directly:
//
//	import "github.com/oasguard/oasguard/parser"
//
//	p := parser.New()
//	result, err := p.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Version: %s\n", result.Version)
//
// # Parser package
//
// parser parses OpenAPI specification files in YAML or JSON format. It
// supports external reference resolution, version detection, and
// structural validation.
//
// Key features:
//   - Multi-format support (YAML, JSON)
//   - External reference resolution ($ref)
//   - Path traversal protection
//   - Operation ID uniqueness checking
//   - Memory-efficient caching
//
// # Config package
//
// config resolves the `extends` cascade (built-in presets, local files,
// remote URLs, per-API overrides) into a Config naming every rule's
// effective severity, compiled assertions, and plugin list, with local
// rules always winning over a preset entry for the same rule id.
//
// # Rules, walker, and schema packages
//
// schema describes each OAS version's node shape; walker drives an
// enter/leave visit of a parsed document against that shape, dispatching
// to the rules bound for the walk; rules implements the built-in checks
// plus declarative assertion compilation.
//
// # Bundler package
//
// bundler implements the three document transforms: Bundle (inline
// external refs into the document's own components, with deterministic
// collision-suffix renaming), Dereference (inline everything, rejecting
// circular refs when the target is JSON), and Normalize (reorder
// top-level keys into canonical order without touching refs).
//
// # Security considerations
//
//   - Path traversal protection: external references are restricted to
//     the base directory and subdirectories
//   - Resource limits: bounded resolver caches and schema nesting depth
//     to prevent resource exhaustion
//   - HTTP(S) references are opt-in only (AllowHTTP), off by default to
//     limit SSRF surface
//   - Output files are created with restrictive permissions (0600)
//
// # Error handling
//
// Engine-input errors (a malformed document, an unreadable config file)
// are returned directly, typed via the oaserrors package (ParseError,
// ReferenceError, ConfigError, ValidationError, ResourceLimitError,
// CircularJSONNotSupportedError, RuleError) and are errors.Is/errors.As
// compatible via sentinel errors. Document-level findings are not Go
// errors: they are collected as problems.Problem values with a Severity,
// and a walk continues past a rule's own panic or error (recorded as a
// RuleError and logged).
//
// # Command-line interface
//
// cmd/oasguard provides a CLI:
//
//	# Lint one or more documents
//	oasguard lint openapi.yaml
//	oasguard lint --config oasguard.yaml --format json api/*.yaml
//
//	# Bundle external refs into components
//	oasguard bundle -o bundled.yaml openapi.yaml
//
//	# Inline every ref
//	oasguard dereference -o flat.yaml openapi.yaml
//
//	# Reorder top-level keys
//	oasguard normalize -o normalized.yaml openapi.yaml
//
// Install the CLI:
//
//	go install github.com/oasguard/oasguard/cmd/oasguard@latest
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in
// the repository for full details.
package oastools
