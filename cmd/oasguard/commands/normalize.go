package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/oasguard/oasguard/bundler"
	"github.com/oasguard/oasguard/parser"
)

// NormalizeFlags contains flags for the normalize command.
type NormalizeFlags struct {
	Output string
}

// SetupNormalizeFlags creates and configures a FlagSet for the normalize
// command.
func SetupNormalizeFlags() (*flag.FlagSet, *NormalizeFlags) {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	flags := &NormalizeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasguard normalize [flags] <file>\n\n")
		Writef(fs.Output(), "Reorder a document's top-level keys into the canonical order for its\n")
		Writef(fs.Output(), "OAS version, without touching $refs or any nested structure.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasguard normalize -o normalized.yaml openapi.yaml\n")
	}

	return fs, flags
}

// HandleNormalize executes the normalize command.
func HandleNormalize(args []string) error {
	fs, flags := SetupNormalizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("normalize command requires exactly one file path")
	}
	specPath := fs.Arg(0)

	p := parser.New()
	pr, err := p.Parse(specPath)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", specPath, err)
	}

	data, err := bundler.Normalize(pr.Data, pr.OASVersion)
	if err != nil {
		return fmt.Errorf("normalizing %s: %w", specPath, err)
	}

	if flags.Output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flags.Output, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	Writef(os.Stderr, "Output written to: %s\n", flags.Output)
	return nil
}
