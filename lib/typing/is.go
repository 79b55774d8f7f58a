package typing

// The Is* predicates check the concrete type of a value, the way isinstance
// would. They never inspect string contents.

func IsNone(value any) bool {
	return value == nil
}

func IsBool(value any) bool {
	return KindOf(value) == Boolean
}

func IsInt(value any) bool {
	return KindOf(value) == Integer
}

func IsFloat(value any) bool {
	return KindOf(value) == Float
}

func IsComplex(value any) bool {
	return KindOf(value) == Complex
}

func IsDecimal(value any) bool {
	return KindOf(value) == Decimal
}

func IsFraction(value any) bool {
	return KindOf(value) == Fraction
}

func IsStr(value any) bool {
	return KindOf(value) == String
}

func IsBytes(value any) bool {
	return KindOf(value) == Bytes
}

func IsDate(value any) bool {
	return KindOf(value) == Date
}

func IsDatetime(value any) bool {
	return KindOf(value) == Datetime
}

func IsTime(value any) bool {
	return KindOf(value) == Time
}

func IsDuration(value any) bool {
	return KindOf(value) == Duration
}

func IsTimezone(value any) bool {
	return KindOf(value) == Timezone
}

func IsUUID(value any) bool {
	return KindOf(value) == UUID
}

func IsPath(value any) bool {
	return KindOf(value) == Path
}

func IsMap(value any) bool {
	return KindOf(value) == Map
}

func IsDefaultMap(value any) bool {
	return KindOf(value) == DefaultMap
}

func IsFrozenMap(value any) bool {
	return KindOf(value) == FrozenMap
}

func IsSlice(value any) bool {
	return KindOf(value) == Slice
}

func IsTuple(value any) bool {
	return KindOf(value) == Tuple
}

func IsSet(value any) bool {
	return KindOf(value) == Set
}

func IsFrozenSet(value any) bool {
	return KindOf(value) == FrozenSet
}

func IsCounter(value any) bool {
	return KindOf(value) == Counter
}

func IsDeque(value any) bool {
	return KindOf(value) == Deque
}

// IsPrimitive reports whether value is a bool, integer, float or string.
func IsPrimitive(value any) bool {
	switch KindOf(value) {
	case Boolean, Integer, Float, String:
		return true
	default:
		return false
	}
}
