package stdutil

import "flag"

type boolFlag interface {
	IsBoolFlag() bool
}

// FormalOptionNames is a map where key is a canonical option name (with leading dash)
// and value indicates the option takes no parameter
type FormalOptionNames map[string]bool

func (names FormalOptionNames) Clone() FormalOptionNames {
	clone := make(FormalOptionNames, len(names))
	for name, isNoParameter := range names {
		clone[name] = isNoParameter
	}
	return clone
}

// GetFormalOptionNames returns std flags of flagSet as single-dashed option names.
// Bool flags become no-parameter options, all others take a single parameter
func GetFormalOptionNames(flagSet *flag.FlagSet) FormalOptionNames {
	names := make(FormalOptionNames)
	flagSet.VisitAll(func(f *flag.Flag) {
		isBoolFlag := false
		if boolFlag, ok := f.Value.(boolFlag); ok {
			isBoolFlag = boolFlag.IsBoolFlag()
		}
		names[OptionName(f.Name)] = isBoolFlag
	})
	return names
}

// OptionName converts std flag name to the option name
func OptionName(flagName string) string {
	return "-" + flagName
}

// FlagName converts single-dashed option name back to std flag name
func FlagName(optionName string) string {
	if len(optionName) > 1 && optionName[0] == '-' && optionName[1] != '-' {
		return optionName[1:]
	}
	return ""
}
