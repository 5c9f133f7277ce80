package simpleopts

import (
	"flag"
	"fmt"
	"sort"

	"github.com/jwsohn/simpleopts/stdutil"
)

// DeclareFlagSet declares every flag of the std flagSet as a single-dashed option.
// Bool flags become no-parameter options, the rest take a single parameter.
// Flag usages are used as option usages
func (p *Parser) DeclareFlagSet(flagSet *flag.FlagSet) error {
	names := stdutil.GetFormalOptionNames(flagSet)
	sortedNames := make([]string, 0, len(names))
	for name := range names {
		sortedNames = append(sortedNames, name)
	}
	sort.Strings(sortedNames)

	for _, name := range sortedNames {
		declare := p.SingleParameterOption
		if names[name] {
			declare = p.NoParameterOption
		}
		if err := declare(name); err != nil {
			return err
		}
		if f := flagSet.Lookup(stdutil.FlagName(name)); f != nil && f.Usage != "" {
			p.optionUsages[name] = f.Usage
		}
	}
	return nil
}

// ApplyToFlagSet sets flags of flagSet for options present in the last parse result
// in declaration order, stopping at the first failure.
// No-parameter options are set to "true"
func (p *Parser) ApplyToFlagSet(flagSet *flag.FlagSet) error {
	for _, name := range p.declaredNames() {
		value := p.values[name]
		flagName := stdutil.FlagName(name)
		if !value.IsPresent() || flagName == "" || flagSet.Lookup(flagName) == nil {
			continue
		}
		strValue, hasValue := value.Value()
		if !hasValue {
			strValue = "true"
		}
		if err := flagSet.Set(flagName, strValue); err != nil {
			return fmt.Errorf(`option "%s": %w`, name, err)
		}
	}
	return nil
}
