package simpleopts

import (
	"fmt"
	"strings"
)

func (p *Parser) printUsageTitle() {
	if p.name == "" {
		_, _ = fmt.Fprintf(p.Output(), "Usage:\n")
	} else {
		_, _ = fmt.Fprintf(p.Output(), "Usage of %s:\n", p.name)
	}
}

// defaultUsage prints the usage banner verbatim. Without a banner it prints
// a title followed by PrintDefaults
func (p *Parser) defaultUsage() {
	if p.usage != "" {
		_, _ = fmt.Fprint(p.Output(), p.usage)
		return
	}
	p.printUsageTitle()
	p.PrintDefaults()
}

// PrintDefaults prints declared options to Output grouping each canonical name
// with its aliases, in declaration order
func (p *Parser) PrintDefaults() {
	for _, name := range p.declaredNames() {
		_, _ = fmt.Fprint(p.Output(), p.formatOption(name))
	}
}

func (p *Parser) declaredNames() []string {
	res := make([]string, 0, len(p.noParameterOptions)+len(p.singleParameterOptions))
	res = append(res, p.noParameterOptions...)
	return append(res, p.singleParameterOptions...)
}

func (p *Parser) formatOption(name string) string {
	b := strings.Builder{}
	b.WriteString("  ")
	b.WriteString(name)
	for _, alias := range p.aliasesOf[name] {
		b.WriteString(", ")
		b.WriteString(alias)
	}
	if isNoParameter := p.knownNames[name]; !isNoParameter {
		b.WriteString(" <value>")
	}
	if usage := p.optionUsages[name]; usage != "" {
		// the same layout std flag.PrintDefaults uses for long names
		b.WriteString("\n    \t")
		b.WriteString(strings.ReplaceAll(usage, "\n", "\n    \t"))
	}
	b.WriteString("\n")
	return b.String()
}
