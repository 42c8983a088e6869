package parser

import (
	"fmt"

	"github.com/mirror-shades/swen/lexer"
)

// ErrorKind enumerates the parse failure taxonomy (§7).
type ErrorKind string

const (
	ErrExpectedToken         ErrorKind = "ExpectedToken"
	ErrMissingProperty       ErrorKind = "MissingProperty"
	ErrDuplicateProperty     ErrorKind = "DuplicateProperty"
	ErrDuplicateNode         ErrorKind = "DuplicateNode"
	ErrMissingRequiredNode   ErrorKind = "MissingRequiredNode"
	ErrInvalidSize           ErrorKind = "InvalidSize"
	ErrInvalidPosition       ErrorKind = "InvalidPosition"
	ErrInvalidMatrix         ErrorKind = "InvalidMatrix"
	ErrInvalidTextSize       ErrorKind = "InvalidTextSize"
	ErrExpectedColor         ErrorKind = "ExpectedColor"
	ErrOutOfMemory           ErrorKind = "OutOfMemory"
	ErrDuplicateDeclaredID   ErrorKind = "DuplicateDeclaredID"
	ErrPositionBeforeNodes   ErrorKind = "PositionBeforeNodes"
)

// ParseError is returned for every parser failure (§4.2 Error model, §7). It
// always carries the offending token's source span and a human message; the
// parser never throws or silently skips a required construct.
type ParseError struct {
	Kind ErrorKind
	Span lexer.Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("swen: parse %s at %s: %s", e.Kind, e.Span, e.Msg)
}

func newParseError(kind ErrorKind, span lexer.Span, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Span: span, Msg: fmt.Sprintf(format, args...)}
}
