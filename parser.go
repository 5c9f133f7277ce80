package simpleopts

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jwsohn/simpleopts/cmdargs"
	"github.com/jwsohn/simpleopts/stdutil"
)

// Parser classifies an argument vector into declared options and positional arguments.
// Options are declared before calling Parse. A Parser is not safe for concurrent use
type Parser struct {
	// Usage is called when Parse receives no arguments. If nil, the usage banner
	// assembled with AddUsageLine is printed, or the default usage if there is none
	Usage func()

	name          string
	errorHandling flag.ErrorHandling
	output        io.Writer
	logger        *slog.Logger

	// declaration order of canonical names
	noParameterOptions     []string
	singleParameterOptions []string
	knownNames             stdutil.FormalOptionNames
	// key: alias, value: canonical name
	aliases map[string]string
	// key: canonical name, value: its aliases in declaration order
	aliasesOf    map[string][]string
	optionUsages map[string]string
	usage        string

	values    map[string]OptionValue
	args      []string
	helpShown bool

	registeredFields []registeredField
}

// NewParser creates a Parser with the given program name and error handling policy
func NewParser(name string, errorHandling flag.ErrorHandling) *Parser {
	return &Parser{
		name:          name,
		errorHandling: errorHandling,
		knownNames:    make(stdutil.FormalOptionNames),
		aliases:       make(map[string]string),
		aliasesOf:     make(map[string][]string),
		optionUsages:  make(map[string]string),
		values:        make(map[string]OptionValue),
	}
}

func (p *Parser) Name() string {
	return p.name
}

func (p *Parser) ErrorHandling() flag.ErrorHandling {
	return p.errorHandling
}

// Output returns the destination for usage and error messages. os.Stderr is returned if
// output was not set or was set to nil
func (p *Parser) Output() io.Writer {
	if p.output == nil {
		return os.Stderr
	}
	return p.output
}

func (p *Parser) SetOutput(output io.Writer) {
	p.output = output
}

// SetLogger sets the logger for debug tracing. slog.Default() is used if not set
func (p *Parser) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

func (p *Parser) log() *slog.Logger {
	if p.logger == nil {
		return slog.Default()
	}
	return p.logger
}

// NoParameterOption declares name as an option without a parameter
func (p *Parser) NoParameterOption(name string) error {
	if err := p.declare(name, true); err != nil {
		return err
	}
	p.noParameterOptions = append(p.noParameterOptions, name)
	return nil
}

// SingleParameterOption declares name as an option followed by exactly one parameter
func (p *Parser) SingleParameterOption(name string) error {
	if err := p.declare(name, false); err != nil {
		return err
	}
	p.singleParameterOptions = append(p.singleParameterOptions, name)
	return nil
}

func (p *Parser) declare(name string, isNoParameter bool) error {
	if err := CheckOptionName(name); err != nil {
		return err
	}
	if p.isTaken(name) {
		return fmt.Errorf(`%w: "%s"`, ErrOptionRedeclared, name)
	}
	p.knownNames[name] = isNoParameter
	p.values[name] = OptionValue{}
	p.log().Debug("Option declared.", "option", name, "noParameter", isNoParameter)
	return nil
}

// Alias makes alias an alternative spelling of the declared canonical option.
// Only double-dashed aliases are resolved
func (p *Parser) Alias(canonical, alias string) error {
	if err := CheckAlias(alias); err != nil {
		return err
	}
	if _, isKnown := p.knownNames[canonical]; !isKnown {
		return fmt.Errorf(`%w: "%s" aliased as "%s"`, ErrNotDeclared, canonical, alias)
	}
	if p.isTaken(alias) {
		return fmt.Errorf(`%w: "%s"`, ErrOptionRedeclared, alias)
	}
	p.aliases[alias] = canonical
	p.aliasesOf[canonical] = append(p.aliasesOf[canonical], alias)
	p.log().Debug("Alias declared.", "option", canonical, "alias", alias)
	return nil
}

// OptionUsage sets the description printed by PrintDefaults for the declared option
func (p *Parser) OptionUsage(name, usage string) error {
	if _, isKnown := p.knownNames[name]; !isKnown {
		return fmt.Errorf(`%w: "%s"`, ErrNotDeclared, name)
	}
	p.optionUsages[name] = usage
	return nil
}

// AddUsageLine appends a line to the usage banner
func (p *Parser) AddUsageLine(line string) {
	p.usage += line + "\n"
}

// CheckOptionName returns ErrInvalidOptionName if name can't be declared as an option
func CheckOptionName(name string) error {
	if len(name) < 2 || name[0] != '-' {
		return fmt.Errorf(`%w: "%s"`, ErrInvalidOptionName, name)
	}
	return nil
}

// CheckAlias returns ErrInvalidAlias if alias can't be declared as an alias
func CheckAlias(alias string) error {
	if len(alias) < 3 || !strings.HasPrefix(alias, "--") {
		return fmt.Errorf(`%w: "%s"`, ErrInvalidAlias, alias)
	}
	return nil
}

// IsDeclared reports whether name is taken by a declared option or alias
func (p *Parser) IsDeclared(name string) bool {
	return p.isTaken(name)
}

func (p *Parser) isTaken(name string) bool {
	if _, has := p.knownNames[name]; has {
		return true
	}
	_, has := p.aliases[name]
	return has
}

// Parse parses argv where argv[0] is the program name. If there are no other
// elements, usage is printed and nil is returned without touching the results.
// Otherwise results of the previous call are discarded. The first failure stops
// parsing; the results are incomplete in this case
func (p *Parser) Parse(argv []string) error {
	if len(argv) <= 1 {
		p.log().Debug("No arguments given, printing usage.")
		p.helpShown = true
		p.callUsage()
		return nil
	}

	p.reset()
	err := p.parseArgs(argv[1:])
	if err == nil {
		p.setRegisteredFields()
		p.log().Debug("Arguments parsed successfully.", "options", len(p.values), "args", len(p.args))
		return nil
	}

	// follow the same error handling policy as std flag.FlagSet
	p.log().Debug("Parsing failed.", "error", err)
	_, _ = fmt.Fprintln(p.Output(), "Error: "+err.Error())
	switch p.errorHandling {
	case flag.ExitOnError:
		os.Exit(2)
	case flag.PanicOnError:
		panic(err)
	}
	return err
}

func (p *Parser) reset() {
	p.helpShown = false
	p.args = nil
	for name := range p.values {
		p.values[name] = OptionValue{}
	}
}

func (p *Parser) parseArgs(args []string) (err error) {
	cmdargs.NewArgs(args).
		WithKnownOptions(p.knownNames).
		WithAliases(p.aliases).
		IterateTokens(func(token cmdargs.Token) bool {
			err = p.handleToken(token)
			return err == nil
		})
	if err != nil {
		return err
	}
	if len(p.args) == 0 {
		return &ParseError{Err: ErrNoArguments}
	}
	return nil
}

func (p *Parser) handleToken(token cmdargs.Token) error {
	switch {
	case token.Role.Has(cmdargs.RolePositional):
		p.args = append(p.args, token.Arg)
		return nil
	case !token.Role.Has(cmdargs.RoleKnown):
		return &ParseError{Err: ErrInvalidOption, Token: token.Arg}
	case token.Role.Has(cmdargs.RoleValueMissing):
		return &ParseError{Err: ErrMissingParameter, Token: token.Arg, Next: token.Value}
	case p.values[token.Name].IsPresent():
		return &ParseError{Err: ErrDuplicateOption, Token: token.Arg}
	case token.Role.Has(cmdargs.RoleParameterized):
		p.values[token.Name] = PresentWith(token.Value)
	default:
		p.values[token.Name] = Present()
	}
	p.log().Debug("Option parsed.",
		"option", token.Name,
		"arg", token.Arg,
		"long", token.Role.Has(cmdargs.RoleLong),
		"aliased", token.Role.Has(cmdargs.RoleAliased),
	)
	return nil
}

func (p *Parser) callUsage() {
	if p.Usage != nil {
		p.Usage()
		return
	}
	p.defaultUsage()
}

// Value returns the parse result for the canonical option name
func (p *Parser) Value(name string) OptionValue {
	return p.values[name]
}

// IsSet reports whether the canonical option name was found in the input
func (p *Parser) IsSet(name string) bool {
	return p.values[name].IsPresent()
}

// Options returns the parse results for all declared options keyed by canonical names
func (p *Parser) Options() map[string]OptionValue {
	res := make(map[string]OptionValue, len(p.values))
	for name, value := range p.values {
		res[name] = value
	}
	return res
}

// Args returns positional arguments in the input order
func (p *Parser) Args() []string {
	return p.args
}

func (p *Parser) NArg() int {
	return len(p.args)
}

// Arg returns the i'th positional argument or empty string if it doesn't exist
func (p *Parser) Arg(i int) string {
	if i < 0 || i >= len(p.args) {
		return ""
	}
	return p.args[i]
}

// HelpShown reports whether the last Parse call received no arguments and printed usage
func (p *Parser) HelpShown() bool {
	return p.helpShown
}

// UsageText returns the usage banner assembled with AddUsageLine
func (p *Parser) UsageText() string {
	return p.usage
}

func (p *Parser) NoParameterOptions() []string {
	return append([]string(nil), p.noParameterOptions...)
}

func (p *Parser) SingleParameterOptions() []string {
	return append([]string(nil), p.singleParameterOptions...)
}

// Aliases returns a map where key is an alias and value is its canonical name
func (p *Parser) Aliases() map[string]string {
	res := make(map[string]string, len(p.aliases))
	for alias, canonical := range p.aliases {
		res[alias] = canonical
	}
	return res
}

// AliasesOf returns aliases of the canonical option name in declaration order
func (p *Parser) AliasesOf(name string) []string {
	return append([]string(nil), p.aliasesOf[name]...)
}

// IsNoParameter reports whether name is a declared no-parameter option
func (p *Parser) IsNoParameter(name string) (isNoParameter bool, isDeclared bool) {
	isNoParameter, isDeclared = p.knownNames[name]
	return isNoParameter, isDeclared
}
