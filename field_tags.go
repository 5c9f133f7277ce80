package simpleopts

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	optNameTag    = "opt"
	optAliasesTag = "optAliases"
	optUsageTag   = "optUsage"
	optArgsTag    = "optArgs"
)

type fieldRole interface {
	getRoleTagName() string
}

type namedOptionRole struct {
	name    string
	aliases []string
	usage   string
}

func (r namedOptionRole) getRoleTagName() string {
	return optNameTag
}

type optArgsRole struct {
}

func (r optArgsRole) getRoleTagName() string {
	return optArgsTag
}

func getFieldRole(field reflect.StructField) (fieldRole, error) {
	tags := field.Tag

	name := tags.Get(optNameTag)
	if name == "-" {
		name = ""
	}
	optArgs, err := getBoolTag(tags, optArgsTag)
	if err != nil {
		return nil, err
	}
	aliases := getOptionAliases(tags)
	usage, hasUsage := tags.Lookup(optUsageTag)

	switch {
	case name != "" && optArgs:
		return nil, fmt.Errorf(`only one of "%s", "%s" tags can be used`, optNameTag, optArgsTag)
	case name != "":
		return namedOptionRole{
			name:    name,
			aliases: aliases,
			usage:   usage,
		}, nil
	case len(aliases) > 0 || hasUsage:
		return nil, fmt.Errorf(`"%s" and "%s" tags can be used only with "%s" tag`, optAliasesTag, optUsageTag, optNameTag)
	case optArgs:
		return optArgsRole{}, nil
	default:
		return nil, nil
	}
}

func getBoolTag(tags reflect.StructTag, tagName string) (val bool, err error) {
	if strVal := tags.Get(tagName); strVal != "" {
		if val, err = strconv.ParseBool(strVal); err != nil {
			return false, fmt.Errorf(`invalid "%s" tag bool value: "%s"`, tagName, strVal)
		}
	}
	return val, nil
}

func getOptionAliases(tags reflect.StructTag) (aliases []string) {
	for _, alias := range strings.Split(tags.Get(optAliasesTag), ",") {
		if trimmed := strings.TrimSpace(alias); trimmed != "" {
			aliases = append(aliases, trimmed)
		}
	}
	return aliases
}
