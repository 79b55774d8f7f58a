package converters

import (
	"fmt"

	"github.com/loosetype/datautils/lib/stringutil"
)

// Converter renders a single kind of value as text. Implementations are
// keyed off a value's identified kind by the values package.
type Converter interface {
	Convert(value any) (string, error)
}

type PrimitiveConverter struct{}

func (PrimitiveConverter) Convert(value any) (string, error) {
	switch value.(type) {
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(value), nil
	default:
		return "", fmt.Errorf("failed to cast value as primitive, value: '%v', type: %T", value, value)
	}
}

type StringConverter struct{}

func (StringConverter) Convert(value any) (string, error) {
	stringValue, isOk := value.(string)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as string, value: '%v', type: %T", value, value)
	}

	return stringValue, nil
}

type BytesConverter struct{}

func (BytesConverter) Convert(value any) (string, error) {
	converted, isOk := BytesToString(value)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as bytes, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type DateConverter struct {
	Layout string
}

func (d DateConverter) Convert(value any) (string, error) {
	converted, isOk := DateToString(value, d.Layout)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as date, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type DatetimeConverter struct {
	Layout string
}

func (d DatetimeConverter) Convert(value any) (string, error) {
	converted, isOk := DatetimeToString(value, d.Layout)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as datetime, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type TimeConverter struct {
	Layout string
}

func (t TimeConverter) Convert(value any) (string, error) {
	converted, isOk := TimeToString(value, t.Layout)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as time, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type DurationConverter struct{}

func (DurationConverter) Convert(value any) (string, error) {
	converted, isOk := DurationToString(value)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as duration, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type TimezoneConverter struct{}

func (TimezoneConverter) Convert(value any) (string, error) {
	converted, isOk := TimezoneToString(value)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as timezone, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type DecimalConverter struct{}

func (DecimalConverter) Convert(value any) (string, error) {
	converted, isOk := DecimalToString(value)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as decimal, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type FractionConverter struct{}

func (FractionConverter) Convert(value any) (string, error) {
	converted, isOk := FractionToString(value)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as fraction, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type ComplexConverter struct{}

func (ComplexConverter) Convert(value any) (string, error) {
	converted, isOk := ComplexToString(value)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as complex, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type MapConverter struct {
	Format Format
}

func (m MapConverter) Convert(value any) (string, error) {
	converted, isOk := MapToString(value, m.Format)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as map, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type DefaultMapConverter struct {
	Format Format
}

func (d DefaultMapConverter) Convert(value any) (string, error) {
	converted, isOk := DefaultMapToString(value, d.Format)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as default map, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type FrozenMapConverter struct {
	Format Format
}

func (f FrozenMapConverter) Convert(value any) (string, error) {
	converted, isOk := FrozenMapToString(value, f.Format)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as frozen map, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type SliceConverter struct {
	Format Format
}

func (s SliceConverter) Convert(value any) (string, error) {
	converted, isOk := SliceToString(value, s.Format)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as slice, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type TupleConverter struct {
	Format Format
}

func (t TupleConverter) Convert(value any) (string, error) {
	converted, isOk := TupleToString(value, t.Format)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as tuple, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type SetConverter struct {
	Format Format
}

func (s SetConverter) Convert(value any) (string, error) {
	converted, isOk := SetToString(value, s.Format)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as set, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type FrozenSetConverter struct {
	Format Format
}

func (f FrozenSetConverter) Convert(value any) (string, error) {
	converted, isOk := FrozenSetToString(value, f.Format)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as frozen set, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type CounterConverter struct {
	Format Format
}

func (c CounterConverter) Convert(value any) (string, error) {
	converted, isOk := CounterToString(value, c.Format)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as counter, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type DequeConverter struct {
	Format Format
}

func (d DequeConverter) Convert(value any) (string, error) {
	converted, isOk := DequeToString(value, d.Format)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as deque, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type PathConverter struct{}

func (PathConverter) Convert(value any) (string, error) {
	converted, isOk := PathToString(value)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as path, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

type UUIDConverter struct{}

func (UUIDConverter) Convert(value any) (string, error) {
	converted, isOk := UUIDToString(value)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as uuid, value: '%v', type: %T", value, value)
	}

	return converted, nil
}

// FallbackConverter stringifies anything that survives an encode round trip.
type FallbackConverter struct{}

func (FallbackConverter) Convert(value any) (string, error) {
	converted, isOk := stringutil.EncodeRoundTrip(value)
	if !isOk {
		return "", fmt.Errorf("failed to cast value as string, value: '%v', type: %T", value, value)
	}

	return converted, nil
}
