package converters

import (
	"errors"
	"fmt"
)

// ConversionError carries the rejected value and the intended target type.
// Both fields are load-bearing: downstream error messages depend on them.
type ConversionError struct {
	Value    any
	TypeName string
}

func NewConversionError(value any, typeName string) ConversionError {
	return ConversionError{Value: value, TypeName: typeName}
}

func (c ConversionError) Error() string {
	return fmt.Sprintf("Failed to convert %v to %s", c.Value, c.TypeName)
}

func IsConversionError(err error) bool {
	return errors.As(err, &ConversionError{})
}

type ParseErrorKind string

const (
	InvalidJSON ParseErrorKind = "invalid_json"
)

type ParseError struct {
	message string
	kind    ParseErrorKind
}

func NewParseError(message string, kind ParseErrorKind) ParseError {
	return ParseError{message: message, kind: kind}
}

func (p ParseError) Error() string {
	return p.message
}

func (p ParseError) Kind() ParseErrorKind {
	return p.kind
}

func IsParseError(err error) bool {
	return errors.As(err, &ParseError{})
}
