package typing

import (
	"fmt"

	"github.com/loosetype/datautils/lib/typing/converters"
)

// AssertType narrows an any-typed value to T, reporting a failed narrowing
// the same way the converters report a failed conversion.
func AssertType[T any](val any) (T, error) {
	castedVal, isOk := val.(T)
	if !isOk {
		var zero T
		return zero, converters.NewConversionError(val, fmt.Sprintf("%T", zero))
	}
	return castedVal, nil
}

// AssertTypeOrNil is AssertType, except a nil value passes as the zero T.
func AssertTypeOrNil[T any](val any) (T, error) {
	if val == nil {
		var zero T
		return zero, nil
	}

	return AssertType[T](val)
}
