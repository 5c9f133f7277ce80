package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/jwsohn/simpleopts"
	"github.com/jwsohn/simpleopts/hcldecl"
)

//go:embed options.hcl
var optionsHCL []byte

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("SIMPLEOPTS_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := run(os.Stdout, os.Args); err != nil {
		os.Exit(2)
	}
}

// run declares the demo options, parses argv and prints the parser state
func run(out io.Writer, argv []string) error {
	decl, err := hcldecl.Parse(optionsHCL, "options.hcl")
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return err
	}
	p := simpleopts.NewParser(programName(argv), flag.ContinueOnError)
	p.SetOutput(out)
	if err := decl.Apply(p); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return err
	}

	parseErr := p.Parse(argv)
	printState(out, p)
	return parseErr
}

func programName(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	return argv[0]
}

func printState(out io.Writer, p *simpleopts.Parser) {
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "# No parameter option list")
	_, _ = fmt.Fprintln(out, p.NoParameterOptions())
	_, _ = fmt.Fprintln(out, "# Single parameter option list")
	_, _ = fmt.Fprintln(out, p.SingleParameterOptions())
	_, _ = fmt.Fprintln(out)

	_, _ = fmt.Fprintln(out, "# Option values")
	options := p.Options()
	for _, name := range sortedKeys(options) {
		_, _ = fmt.Fprintf(out, "%s: %s\n", name, options[name])
	}
	_, _ = fmt.Fprintln(out, "# Aliases")
	aliases := p.Aliases()
	for _, alias := range sortedKeys(aliases) {
		_, _ = fmt.Fprintf(out, "%s: %s\n", alias, aliases[alias])
	}
	_, _ = fmt.Fprintln(out, "# Arguments")
	_, _ = fmt.Fprintln(out, p.Args())
	_, _ = fmt.Fprintln(out, "# Usage")
	_, _ = fmt.Fprint(out, p.UsageText())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
