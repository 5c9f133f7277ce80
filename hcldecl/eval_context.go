package hcldecl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/jwsohn/simpleopts"
)

// EvalContext exposes the last parse result of p to HCL expressions:
//   - option: object keyed by canonical names. No-parameter options are bool,
//     single-parameter options are string or null if absent
//   - args: list of positional arguments
func EvalContext(p *simpleopts.Parser) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"option": optionsValue(p),
			"args":   argsValue(p.Args()),
		},
	}
}

func optionsValue(p *simpleopts.Parser) cty.Value {
	attrs := make(map[string]cty.Value)
	for name, value := range p.Options() {
		if isNoParameter, _ := p.IsNoParameter(name); isNoParameter {
			attrs[name] = cty.BoolVal(value.IsPresent())
			continue
		}
		if str, hasValue := value.Value(); hasValue {
			attrs[name] = cty.StringVal(str)
		} else {
			attrs[name] = cty.NullVal(cty.String)
		}
	}
	return cty.ObjectVal(attrs)
}

func argsValue(args []string) cty.Value {
	if len(args) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(args))
	for i, arg := range args {
		vals[i] = cty.StringVal(arg)
	}
	return cty.ListVal(vals)
}
