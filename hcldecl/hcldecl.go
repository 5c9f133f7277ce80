// Package hcldecl loads option declarations for a simpleopts.Parser from HCL
// and exposes parse results to HCL expressions.
package hcldecl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/jwsohn/simpleopts"
)

// Option is a single option block:
//
//	option "-f" {
//	  parameter = true
//	  aliases   = ["--foobar"]
//	  usage     = "Single parameter option example"
//	}
type Option struct {
	Name      string   `hcl:"name,label"`
	Parameter bool     `hcl:"parameter,optional"`
	Aliases   []string `hcl:"aliases,optional"`
	Usage     string   `hcl:"usage,optional"`

	DeclRange hcl.Range
}

// Declarations is the root of a declarations document
type Declarations struct {
	Usage   []string `hcl:"usage,optional"`
	Options []Option `hcl:"option,block"`
}

// Parse decodes declarations from HCL source. Returned errors are hcl.Diagnostics
func Parse(src []byte, filename string) (*Declarations, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return decode(file)
}

// LoadFile reads and decodes declarations from the HCL file at path
func LoadFile(path string) (*Declarations, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	return decode(file)
}

func decode(file *hcl.File) (*Declarations, error) {
	var decl Declarations
	if diags := gohcl.DecodeBody(file.Body, nil, &decl); diags.HasErrors() {
		return nil, diags
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "option", LabelNames: []string{"name"}}},
	})
	if diags.HasErrors() {
		return nil, diags
	}
	for i, block := range content.Blocks {
		if i < len(decl.Options) {
			decl.Options[i].DeclRange = block.DefRange
		}
	}
	return &decl, nil
}

// Apply declares the options and usage lines in p. All blocks are validated
// first; p is left untouched if any of them can't be declared
func (d *Declarations) Apply(p *simpleopts.Parser) error {
	if err := d.check(p); err != nil {
		return err
	}
	for _, line := range d.Usage {
		p.AddUsageLine(line)
	}
	for _, opt := range d.Options {
		if err := applyOption(p, opt); err != nil {
			return fmt.Errorf("%s: %w", opt.DeclRange.String(), err)
		}
	}
	return nil
}

// check reports the first block with an invalid name or a name taken in p or
// by another block
func (d *Declarations) check(p *simpleopts.Parser) error {
	seen := make(map[string]struct{})
	for _, opt := range d.Options {
		if err := checkOption(p, opt, seen); err != nil {
			return fmt.Errorf("%s: %w", opt.DeclRange.String(), err)
		}
	}
	return nil
}

func checkOption(p *simpleopts.Parser, opt Option, seen map[string]struct{}) error {
	if err := simpleopts.CheckOptionName(opt.Name); err != nil {
		return err
	}
	for _, alias := range opt.Aliases {
		if err := simpleopts.CheckAlias(alias); err != nil {
			return err
		}
	}
	for _, name := range append([]string{opt.Name}, opt.Aliases...) {
		if _, has := seen[name]; has || p.IsDeclared(name) {
			return fmt.Errorf(`%w: "%s"`, simpleopts.ErrOptionRedeclared, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func applyOption(p *simpleopts.Parser, opt Option) error {
	declare := p.NoParameterOption
	if opt.Parameter {
		declare = p.SingleParameterOption
	}
	if err := declare(opt.Name); err != nil {
		return err
	}
	for _, alias := range opt.Aliases {
		if err := p.Alias(opt.Name, alias); err != nil {
			return err
		}
	}
	if opt.Usage != "" {
		return p.OptionUsage(opt.Name, opt.Usage)
	}
	return nil
}
