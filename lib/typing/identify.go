package typing

import (
	"github.com/loosetype/datautils/lib/typing/converters/primitives"
)

// stringCandidates is the identification chain for text. Order matters:
// earlier entries win ties, so ambiguous text always resolves the same way.
var stringCandidates = []struct {
	kd      KindDetails
	couldBe func(any) bool
}{
	{Boolean, CouldBeBool},
	{Complex, CouldBeComplex},
	{Map, CouldBeMap},
	{Float, CouldBeFloat},
	{Integer, CouldBeInt},
	{Slice, CouldBeSlice},
	{Set, CouldBeSet},
	{Tuple, CouldBeTuple},
	{Date, CouldBeDate},
	{Datetime, CouldBeDatetime},
	{Time, CouldBeTime},
	{Duration, CouldBeDuration},
	{Timezone, CouldBeTimezone},
	{UUID, CouldBeUUID},
	{Path, CouldBePath},
	{Bytes, CouldBeBytes},
}

// Identify classifies a value, sniffing string contents. Non-strings get
// their concrete kind; strings run through the identification chain and
// fall back to String when nothing claims them.
func Identify(value any) KindDetails {
	stringValue, isOk := value.(string)
	if !isOk {
		return KindOf(value)
	}

	if kd := IdentifyInString(stringValue); kd != Invalid {
		return kd
	}

	return String
}

// IdentifyInString reports what kind of value a string encodes, or Invalid
// when no candidate claims it. The chain order is fixed, so "1" is a bool
// and "123" is a complex before either is an int.
func IdentifyInString(value string) KindDetails {
	for _, candidate := range stringCandidates {
		if candidate.couldBe(value) {
			return candidate.kd
		}
	}

	return Invalid
}

// IdentifyNumericType picks the narrowest numeric kind that represents the
// value without loss, trying int, float, complex and decimal in order.
func IdentifyNumericType(value any) KindDetails {
	if IsBool(value) {
		return Invalid
	}

	// Arbitrary-precision decimals keep their own tag; narrowing one to a
	// float would silently shed precision.
	if IsDecimal(value) {
		return Decimal
	}

	// Int64Converter rejects floats with a fractional component, so 3.0
	// narrows to int while 3.14 stays a float.
	if _, err := (primitives.Int64Converter{}).Convert(value); err == nil {
		return Integer
	}

	if _, err := (primitives.Float64Converter{}).Convert(value); err == nil {
		return Float
	}

	if _, err := (primitives.Complex128Converter{}).Convert(value); err == nil {
		return Complex
	}

	return Invalid
}
