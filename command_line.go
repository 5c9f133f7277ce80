package simpleopts

import (
	"flag"
	"os"
)

// CommandLine is a default Parser that is used by the package functions.
// It follows the flag.CommandLine pattern
var CommandLine = NewParser(os.Args[0], flag.ExitOnError)

// NoParameterOption declares an option without a parameter in the default Parser
func NoParameterOption(name string) error {
	return CommandLine.NoParameterOption(name)
}

// SingleParameterOption declares an option with a single parameter in the default Parser
func SingleParameterOption(name string) error {
	return CommandLine.SingleParameterOption(name)
}

// Alias declares an alias in the default Parser
func Alias(canonical, alias string) error {
	return CommandLine.Alias(canonical, alias)
}

// AddUsageLine appends a line to the usage banner of the default Parser
func AddUsageLine(line string) {
	CommandLine.AddUsageLine(line)
}

// Parse parses os.Args using the default Parser
func Parse() error {
	return CommandLine.Parse(os.Args)
}

func Value(name string) OptionValue {
	return CommandLine.Value(name)
}

func IsSet(name string) bool {
	return CommandLine.IsSet(name)
}

func Args() []string {
	return CommandLine.Args()
}

// StructVar registers the given struct with the default Parser.
// See Parser.StructVar
func StructVar(p any) error {
	return CommandLine.StructVar(p)
}
