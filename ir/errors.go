// Package ir lowers a validated scene tree into a bounded, ordered stream
// of backend-agnostic IRInstructions (§4.4). It borrows no scene-tree
// memory after lowering: every instruction is self-contained.
package ir

import "fmt"

// ErrorKind enumerates the lowering failure taxonomy (§7).
type ErrorKind string

const (
	ErrIRBufferOverflow     ErrorKind = "IRBufferOverflow"
	ErrStateStackUnderflow  ErrorKind = "StateStackUnderflow"
	ErrClipStackUnderflow   ErrorKind = "ClipStackUnderflow"
	ErrClipStackOverflow    ErrorKind = "ClipStackOverflow"
)

// LowerError is returned for every lowering failure; it is fatal for the
// frame being lowered (§7: "Fatal for the frame; drop the frame").
type LowerError struct {
	Kind ErrorKind
	Msg  string
}

func (e *LowerError) Error() string {
	return fmt.Sprintf("swen: lower %s: %s", e.Kind, e.Msg)
}

func newLowerError(kind ErrorKind, format string, args ...any) *LowerError {
	return &LowerError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
