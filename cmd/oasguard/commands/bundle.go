package commands

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/oasguard/oasguard/bundler"
	"github.com/oasguard/oasguard/parser"
	"github.com/oasguard/oasguard/refresolver"
)

// DefaultResolverCacheSize bounds how many distinct external documents a
// bundle/dereference run keeps decoded in memory at once.
const DefaultResolverCacheSize = 128

// BundleFlags contains flags for the bundle command.
type BundleFlags struct {
	Output    string
	AllowHTTP bool
}

// SetupBundleFlags creates and configures a FlagSet for the bundle command.
func SetupBundleFlags() (*flag.FlagSet, *BundleFlags) {
	fs := flag.NewFlagSet("bundle", flag.ContinueOnError)
	flags := &BundleFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.AllowHTTP, "allow-http", false, "allow fetching http(s) external refs (off by default; SSRF protection)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasguard bundle [flags] <file>\n\n")
		Writef(fs.Output(), "Inline every external $ref into the document's own components bucket,\n")
		Writef(fs.Output(), "renaming on name collision, while leaving internal $refs untouched.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasguard bundle -o bundled.yaml openapi.yaml\n")
		Writef(fs.Output(), "  oasguard bundle --allow-http api.yaml > bundled.yaml\n")
	}

	return fs, flags
}

// HandleBundle executes the bundle command.
func HandleBundle(args []string) error {
	fs, flags := SetupBundleFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("bundle command requires exactly one file path")
	}
	specPath := fs.Arg(0)

	p := parser.New()
	pr, err := p.Parse(specPath)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", specPath, err)
	}

	resolver, err := refresolver.New(refresolver.FileFetcher{BaseDir: dirOf(specPath), AllowHTTP: flags.AllowHTTP}, refresolver.DecodeYAML, DefaultResolverCacheSize)
	if err != nil {
		return fmt.Errorf("building ref resolver: %w", err)
	}

	fetch := func(ref string) (any, error) {
		uri, pointer := splitRef(ref)
		resolved, err := resolver.Resolve(context.Background(), specPath, uri, pointer)
		if err != nil {
			return nil, err
		}
		return resolved.Value, nil
	}

	bundled, err := bundler.Bundle(pr.Data, pr.OASVersion, fetch)
	if err != nil {
		return fmt.Errorf("bundling %s: %w", specPath, err)
	}

	return writeDocument(bundled, flags.Output)
}

// splitRef splits an external $ref like "other.yaml#/components/schemas/Foo"
// into its document URI and RFC 6901 pointer. A ref with no fragment
// resolves the whole target document (pointer "").
func splitRef(ref string) (uri, pointer string) {
	idx := strings.Index(ref, "#")
	if idx < 0 {
		return ref, ""
	}
	return ref[:idx], ref[idx+1:]
}

// writeDocument marshals doc to outputPath, or to stdout when outputPath is
// empty. A ".json" suffix selects JSON output; everything else (including
// no extension) marshals as YAML.
func writeDocument(doc any, outputPath string) error {
	var data []byte
	var err error
	if strings.HasSuffix(outputPath, ".json") {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	if outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	Writef(os.Stderr, "Output written to: %s\n", outputPath)
	return nil
}
