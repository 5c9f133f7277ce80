package cmdargs

import (
	"strings"

	"github.com/jwsohn/simpleopts/stdutil"
)

// Args is an argument vector without the program name together with the
// declarations needed to classify its tokens
type Args struct {
	Args       []string
	knownNames stdutil.FormalOptionNames
	// key: alias ("--foobar"), value: canonical name ("-f")
	aliases map[string]string
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// WithKnownOptions returns a copy of args that treats the given names as declared options
func (args Args) WithKnownOptions(knownNames stdutil.FormalOptionNames) Args {
	args.knownNames = args.knownNames.Clone()
	for name, isNoParameter := range knownNames {
		args.knownNames[name] = isNoParameter
	}
	return args
}

// WithAliases returns a copy of args resolving the given aliases to canonical names
func (args Args) WithAliases(aliases map[string]string) Args {
	merged := make(map[string]string, len(args.aliases)+len(aliases))
	for alias, canonical := range args.aliases {
		merged[alias] = canonical
	}
	for alias, canonical := range aliases {
		merged[alias] = canonical
	}
	args.aliases = merged
	return args
}

// Resolve returns the candidate option name for arg.
// Unresolved "--" tokens are returned as is
func (args Args) Resolve(arg string) (name string, isAliased bool) {
	if strings.HasPrefix(arg, "--") {
		if canonical, ok := args.aliases[arg]; ok {
			return canonical, true
		}
	}
	return arg, false
}

// Positional returns tokens that are not options or option values
func (args Args) Positional() (res []string) {
	args.IterateTokens(func(token Token) bool {
		if token.Role.Has(RolePositional) {
			res = append(res, token.Arg)
		}
		return true
	})
	return res
}

func isOptionLike(arg string) bool {
	return strings.HasPrefix(arg, "-")
}
