package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/oasguard/oasguard/config"
	"github.com/oasguard/oasguard/internal/format"
	"github.com/oasguard/oasguard/internal/locate"
	"github.com/oasguard/oasguard/lint"
	"github.com/oasguard/oasguard/problems"
)

// LintFlags contains flags for the lint command.
type LintFlags struct {
	Config      string
	Ignore      string
	Format      string
	ResolveRefs bool
}

// SetupLintFlags creates and configures a FlagSet for the lint command.
func SetupLintFlags() (*flag.FlagSet, *LintFlags) {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	flags := &LintFlags{}

	fs.StringVar(&flags.Config, "config", "", "path to a styleguide config file (default: built-in \"recommended\" preset)")
	fs.StringVar(&flags.Ignore, "ignore", "", "path to an ignore file suppressing problems by (source, pointer)")
	fs.StringVar(&flags.Format, "format", FormatStylish, "output format: stylish, json, or checkstyle")
	fs.BoolVar(&flags.ResolveRefs, "resolve-refs", false, "eagerly resolve external $refs before linting (required for no-unresolved-refs to find anything)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasguard lint [flags] <file> [file...]\n\n")
		Writef(fs.Output(), "Lint one or more OpenAPI documents against a resolved styleguide.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasguard lint openapi.yaml\n")
		Writef(fs.Output(), "  oasguard lint --config oasguard.yaml api/*.yaml\n")
		Writef(fs.Output(), "  oasguard lint --format json openapi.yaml | jq '.[0].problems'\n")
		Writef(fs.Output(), "  oasguard lint --format checkstyle openapi.yaml > checkstyle.xml\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    No errors reported (warnings are not fatal)\n")
		Writef(fs.Output(), "  1    At least one error reported, or a fatal config/parse failure\n")
	}

	return fs, flags
}

// HandleLint executes the lint command.
func HandleLint(args []string) error {
	fs, flags := SetupLintFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("lint command requires at least one file path")
	}

	formatter, ok := format.ByName(flags.Format)
	if !ok {
		return fmt.Errorf("invalid format %q: valid formats are stylish, json, checkstyle", flags.Format)
	}

	cfg, err := LoadConfig(flags.Config)
	if err != nil {
		return fmt.Errorf("resolving config: %w", err)
	}
	plugins, err := config.ResolvePlugins(cfg)
	if err != nil {
		return fmt.Errorf("resolving plugins: %w", err)
	}
	ignores, err := LoadIgnores(flags.Ignore)
	if err != nil {
		return fmt.Errorf("loading ignore file: %w", err)
	}

	results, lintErrs := lintAll(fs.Args(), cfg, plugins, lint.Options{ResolveRefs: flags.ResolveRefs, Ignores: ignores})
	for _, lerr := range lintErrs {
		Writef(os.Stderr, "Error: %v\n", lerr)
	}
	if len(results) == 0 {
		return fmt.Errorf("no documents linted successfully")
	}

	formatted := make([]format.Result, 0, len(results))
	var totals problems.Totals
	for _, r := range results {
		r := r
		formatted = append(formatted, format.Result{
			SourceURI: r.SourceURI,
			Problems:  r.Problems,
			Totals:    r.Totals,
			PositionOf: func(pointer string) (int, int, bool) {
				return locate.PositionOf(r.SourceMap, pointer)
			},
		})
		totals.Errors += r.Totals.Errors
		totals.Warnings += r.Totals.Warnings
		totals.Ignored += r.Totals.Ignored
	}

	if err := formatter.Format(os.Stdout, formatted); err != nil {
		return fmt.Errorf("formatting results: %w", err)
	}

	if ExitCode(totals) != 0 || len(lintErrs) > 0 {
		os.Exit(1)
	}
	return nil
}

// lintAll walks paths concurrently, bounded by a fixed worker count.
// Each document's own walk stays sequential (lint.Document drives one
// walker.Walker per call); only the across-document fan-out is parallel.
func lintAll(paths []string, cfg *config.Config, plugins *config.ResolvedPlugins, opts lint.Options) ([]*lint.Result, []error) {
	const maxWorkers = 8
	sem := make(chan struct{}, maxWorkers)
	results := make([]*lint.Result, len(paths))
	errs := make([]error, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], errs[i] = lint.Document(path, cfg, plugins, opts)
		}(i, path)
	}
	wg.Wait()

	okResults := make([]*lint.Result, 0, len(paths))
	var okErrs []error
	for i := range paths {
		if errs[i] != nil {
			okErrs = append(okErrs, errs[i])
			continue
		}
		okResults = append(okResults, results[i])
	}
	return okResults, okErrs
}
