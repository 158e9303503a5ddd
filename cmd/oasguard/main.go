// Command oasguard lints, bundles, dereferences, and normalizes OpenAPI
// 2.0/3.0/3.1 documents.
package main

import (
	"fmt"
	"os"

	oastools "github.com/oasguard/oasguard"
	"github.com/oasguard/oasguard/cmd/oasguard/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasguard v%s\n", oastools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "lint":
		if err := commands.HandleLint(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "bundle":
		if err := commands.HandleBundle(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "dereference":
		if err := commands.HandleDereference(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "normalize":
		if err := commands.HandleNormalize(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oasguard - OpenAPI document linter and transformation engine

Usage:
  oasguard <command> [options]

Commands:
  lint          Lint one or more OpenAPI documents against a styleguide
  bundle        Inline external $refs into the document's own components
  dereference   Inline every resolvable $ref, internal and external
  normalize     Reorder a document's top-level keys into canonical order
  version       Show version information
  help          Show this help message

Examples:
  oasguard lint openapi.yaml
  oasguard lint --config oasguard.yaml --format json api/*.yaml
  oasguard bundle -o bundled.yaml openapi.yaml
  oasguard dereference -o flat.yaml openapi.yaml
  oasguard normalize -o normalized.yaml openapi.yaml

Run 'oasguard <command> --help' for more information on a command.`)
}
