package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/oasguard/oasguard/bundler"
	"github.com/oasguard/oasguard/parser"
)

// DereferenceFlags contains flags for the dereference command.
type DereferenceFlags struct {
	Output string
}

// SetupDereferenceFlags creates and configures a FlagSet for the
// dereference command.
func SetupDereferenceFlags() (*flag.FlagSet, *DereferenceFlags) {
	fs := flag.NewFlagSet("dereference", flag.ContinueOnError)
	flags := &DereferenceFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasguard dereference [flags] <file>\n\n")
		Writef(fs.Output(), "Inline every resolvable $ref, internal and external, in place.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasguard dereference -o flat.yaml openapi.yaml\n")
		Writef(fs.Output(), "  oasguard dereference -o flat.json openapi.yaml\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - A circular $ref dereferenced to a .json output fails: JSON cannot\n")
		Writef(fs.Output(), "    represent the cycle the way YAML anchors/aliases can.\n")
	}

	return fs, flags
}

// HandleDereference executes the dereference command.
func HandleDereference(args []string) error {
	fs, flags := SetupDereferenceFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("dereference command requires exactly one file path")
	}
	specPath := fs.Arg(0)

	p := parser.New()
	pr, err := p.Parse(specPath)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", specPath, err)
	}

	resolver := parser.NewRefResolver(dirOf(specPath))
	derefed, err := bundler.Dereference(pr.Data, resolver, bundler.Options{
		TargetIsJSON: strings.HasSuffix(flags.Output, ".json"),
	})
	if err != nil {
		return fmt.Errorf("dereferencing %s: %w", specPath, err)
	}

	return writeDocument(derefed, flags.Output)
}
