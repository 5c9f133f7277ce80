package simpleopts

import (
	"errors"
	"fmt"
	"reflect"
)

// fieldInfo contains info about a struct field that should be handled by Parser
type fieldInfo struct {
	fieldName     string
	optionRole    *namedOptionRole
	isOptArgs     bool
	isNoParameter bool
	setter        valueSetter
	fieldValue    reflect.Value
}

// registeredField is assigned after a successful Parse
type registeredField struct {
	fieldName  string
	optionName string
	isOptArgs  bool
	setter     valueSetter
	fieldValue reflect.Value
}

// StructVar declares options for the fields of the struct pointed by p.
// Supported tags:
//   - `opt:"-t"` declares the option for bool, *bool (no parameter), string or *string
//     (single parameter) field
//   - `optAliases:"--toggle,--tgl"` declares aliases for the option
//   - `optUsage:"text"` sets the option description for PrintDefaults
//   - `optArgs:"true"` marks []string field receiving positional arguments
//
// Fields are validated before any option is declared. Fields are assigned after
// each successful Parse
func (p *Parser) StructVar(structPtr any) error {
	structValue, err := getStructPointerElem(structPtr)
	if err != nil {
		return err
	}
	fieldsInfo, err := collectFieldsInfoRecursive(structValue, "")
	if err != nil {
		return err
	}
	if err := p.checkFieldsDeclarable(fieldsInfo); err != nil {
		return err
	}

	for _, info := range fieldsInfo {
		if info.isOptArgs {
			p.registeredFields = append(p.registeredFields, registeredField{
				fieldName:  info.fieldName,
				isOptArgs:  true,
				fieldValue: info.fieldValue,
			})
			continue
		}
		if err := p.declareField(info); err != nil {
			return fmt.Errorf(`field "%s": %w`, info.fieldName, err)
		}
		p.registeredFields = append(p.registeredFields, registeredField{
			fieldName:  info.fieldName,
			optionName: info.optionRole.name,
			setter:     info.setter,
			fieldValue: info.fieldValue,
		})
	}
	return nil
}

func (p *Parser) declareField(info fieldInfo) error {
	role := info.optionRole
	declare := p.SingleParameterOption
	if info.isNoParameter {
		declare = p.NoParameterOption
	}
	if err := declare(role.name); err != nil {
		return err
	}
	for _, alias := range role.aliases {
		if err := p.Alias(role.name, alias); err != nil {
			return err
		}
	}
	if role.usage != "" {
		return p.OptionUsage(role.name, role.usage)
	}
	return nil
}

// checkFieldsDeclarable reports invalid names and names that are already taken
// or used by several fields
func (p *Parser) checkFieldsDeclarable(fieldsInfo []fieldInfo) error {
	seen := make(map[string]string)
	for _, info := range fieldsInfo {
		if info.optionRole == nil {
			continue
		}
		if err := CheckOptionName(info.optionRole.name); err != nil {
			return fmt.Errorf(`field "%s": %w`, info.fieldName, err)
		}
		for _, alias := range info.optionRole.aliases {
			if err := CheckAlias(alias); err != nil {
				return fmt.Errorf(`field "%s": %w`, info.fieldName, err)
			}
		}
		names := append([]string{info.optionRole.name}, info.optionRole.aliases...)
		for _, name := range names {
			if otherField, has := seen[name]; has || p.isTaken(name) {
				if has {
					return fmt.Errorf(`field "%s": %w: "%s" is used by field "%s"`,
						info.fieldName, ErrOptionRedeclared, name, otherField)
				}
				return fmt.Errorf(`field "%s": %w: "%s"`, info.fieldName, ErrOptionRedeclared, name)
			}
			seen[name] = info.fieldName
		}
	}
	return nil
}

func (p *Parser) setRegisteredFields() {
	for _, field := range p.registeredFields {
		if field.isOptArgs {
			args := reflect.MakeSlice(field.fieldValue.Type(), len(p.args), len(p.args))
			for i, arg := range p.args {
				args.Index(i).SetString(arg)
			}
			field.fieldValue.Set(args)
			continue
		}
		field.setter(p.values[field.optionName])
	}
}

// collectFieldsInfoRecursive collects info about all tagged fields of the given struct
// including untagged nested structs. It validates the types of the fields and their tags
func collectFieldsInfoRecursive(structValue reflect.Value, parentFieldName string) (res []fieldInfo, err error) {
	sValType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		field := sValType.Field(i)
		fieldVal := structValue.Field(i)
		fieldName := getFieldName(parentFieldName, field.Name)

		role, err := getFieldRole(field)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, fieldName, err)
		}
		if role == nil {
			if field.Type.Kind() == reflect.Struct && field.IsExported() {
				nested, err := collectFieldsInfoRecursive(fieldVal, fieldName)
				if err != nil {
					return nil, err
				}
				res = append(res, nested...)
			}
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf(`field "%s": tagged field is not exported`, fieldName)
		}

		info, err := collectFieldInfo(fieldVal, fieldName, role)
		if err != nil {
			return nil, fmt.Errorf(`field "%s" tagged with "%s": %w`, fieldName, role.getRoleTagName(), err)
		}
		res = append(res, info)
	}
	return res, nil
}

func collectFieldInfo(fieldValue reflect.Value, fieldName string, role fieldRole) (fieldInfo, error) {
	switch role := role.(type) {
	case optArgsRole:
		if err := checkOptArgsFieldType(fieldValue.Type()); err != nil {
			return fieldInfo{}, err
		}
		return fieldInfo{
			fieldName:  fieldName,
			isOptArgs:  true,
			fieldValue: fieldValue,
		}, nil
	case namedOptionRole:
		setter, isNoParameter, err := getValueSetter(fieldValue)
		if err != nil {
			return fieldInfo{}, err
		}
		return fieldInfo{
			fieldName:     fieldName,
			optionRole:    &role,
			isNoParameter: isNoParameter,
			setter:        setter,
			fieldValue:    fieldValue,
		}, nil
	default:
		return fieldInfo{}, errors.New("unknown field role")
	}
}

func checkOptArgsFieldType(fieldType reflect.Type) error {
	if fieldType.Kind() != reflect.Slice || fieldType.Elem().Kind() != reflect.String {
		return fmt.Errorf("[]string expected, got %s", fieldType.String())
	}
	return nil
}

func getFieldName(parentFieldName, fieldName string) string {
	if parentFieldName == "" {
		return fieldName
	}
	return fmt.Sprintf("%s.%s", parentFieldName, fieldName)
}

func getStructPointerElem(p any) (res reflect.Value, err error) {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	res = val.Elem()
	if res.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected struct, got %s", res.Type().String())
	}
	return res, nil
}
