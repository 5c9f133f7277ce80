package simpleopts

import (
	"fmt"
	"reflect"
)

// valueSetter assigns a parse result to a struct field
type valueSetter func(value OptionValue)

// getValueSetter returns a setter for a field tagged as an option. Fields of bool kinds
// become no-parameter options, fields of string kinds take a single parameter.
// Absent options leave the field untouched
func getValueSetter(fieldValue reflect.Value) (setter valueSetter, isNoParameter bool, err error) {
	valueType := fieldValue.Type()
	isPtr := valueType.Kind() == reflect.Ptr
	if isPtr {
		valueType = valueType.Elem()
	}

	assign := func(set func(target reflect.Value)) {
		if !isPtr {
			set(fieldValue)
			return
		}
		target := reflect.New(valueType)
		set(target.Elem())
		fieldValue.Set(target)
	}

	switch valueType.Kind() {
	case reflect.Bool:
		return func(value OptionValue) {
			if value.IsPresent() {
				assign(func(target reflect.Value) {
					target.SetBool(true)
				})
			}
		}, true, nil
	case reflect.String:
		return func(value OptionValue) {
			if str, hasValue := value.Value(); hasValue {
				assign(func(target reflect.Value) {
					target.SetString(str)
				})
			}
		}, false, nil
	default:
		return nil, false, fmt.Errorf("unsupported field type %s", fieldValue.Type().String())
	}
}
