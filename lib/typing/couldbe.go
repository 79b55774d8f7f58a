package typing

import (
	"github.com/loosetype/datautils/lib/typing/converters"
)

// The CouldBe* predicates answer "would parsing this succeed" by delegating
// to the corresponding converter, so a predicate can never drift from the
// conversion it gates. Non-string values satisfy a predicate only when they
// already are the kind in question.

func CouldBeBool(value any) bool {
	if IsBool(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToBool(text)
		return isOk
	})
}

func CouldBeInt(value any) bool {
	if IsInt(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToInt(text)
		return isOk
	})
}

func CouldBeFloat(value any) bool {
	if IsFloat(value) || IsInt(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToFloat(text)
		return isOk
	})
}

func CouldBeComplex(value any) bool {
	if IsComplex(value) || IsFloat(value) || IsInt(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToComplex(text)
		return isOk
	})
}

func CouldBeDecimal(value any) bool {
	if IsDecimal(value) || IsFloat(value) || IsInt(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToDecimal(text)
		return isOk
	})
}

func CouldBeFraction(value any) bool {
	if IsFraction(value) || IsInt(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToFraction(text)
		return isOk
	})
}

func CouldBeBytes(value any) bool {
	if IsBytes(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToBytes(text)
		return isOk
	})
}

func CouldBeDate(value any) bool {
	if IsDate(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToDate(text, "")
		return isOk
	})
}

func CouldBeDatetime(value any) bool {
	if IsDatetime(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToDatetime(text, "")
		return isOk
	})
}

func CouldBeTime(value any) bool {
	if IsTime(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToTime(text, "")
		return isOk
	})
}

func CouldBeDuration(value any) bool {
	if IsDuration(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToDuration(text)
		return isOk
	})
}

func CouldBeTimezone(value any) bool {
	if IsTimezone(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToTimezone(text)
		return isOk
	})
}

func CouldBeUUID(value any) bool {
	if IsUUID(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToUUID(text)
		return isOk
	})
}

func CouldBePath(value any) bool {
	if IsPath(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToPath(text)
		return isOk
	})
}

func CouldBeMap(value any) bool {
	if IsMap(value) || IsDefaultMap(value) || IsFrozenMap(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToMap(text)
		return isOk
	})
}

func CouldBeDefaultMap(value any) bool {
	if IsDefaultMap(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToDefaultMap(text)
		return isOk
	})
}

func CouldBeFrozenMap(value any) bool {
	if IsFrozenMap(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToFrozenMap(text)
		return isOk
	})
}

func CouldBeCounter(value any) bool {
	if IsCounter(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToCounter(text)
		return isOk
	})
}

func CouldBeSlice(value any) bool {
	if IsSlice(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToSlice(text)
		return isOk
	})
}

func CouldBeSet(value any) bool {
	if IsSet(value) || IsFrozenSet(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToSet(text)
		return isOk
	})
}

func CouldBeFrozenSet(value any) bool {
	if IsFrozenSet(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToFrozenSet(text)
		return isOk
	})
}

func CouldBeTuple(value any) bool {
	if IsTuple(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToTuple(text)
		return isOk
	})
}

func CouldBeDeque(value any) bool {
	if IsDeque(value) {
		return true
	}
	return stringParses(value, func(text string) bool {
		_, isOk := converters.StringToDeque(text)
		return isOk
	})
}

func stringParses(value any, parses func(string) bool) bool {
	stringValue, err := AssertType[string](value)
	if err != nil {
		return false
	}

	return parses(stringValue)
}
