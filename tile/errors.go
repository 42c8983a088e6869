// Package tile implements the four-phase tile scheduler that turns a
// lowered IR instruction stream into a per-tile FrameSnapshot (§4.5).
package tile

import "fmt"

// ErrorKind enumerates the scheduler failure taxonomy (§7).
type ErrorKind string

const (
	ErrTileBufferOverflow  ErrorKind = "TileBufferOverflow"
	ErrPaintTableOverflow  ErrorKind = "PaintTableOverflow"
	ErrClipTableOverflow   ErrorKind = "ClipTableOverflow"
)

// ScheduleError is returned for every scheduling failure; it is fatal for
// the frame (§7: "Fatal for the frame; backends may chunk").
type ScheduleError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("swen: schedule %s: %s", e.Kind, e.Msg)
}

func newScheduleError(kind ErrorKind, format string, args ...any) *ScheduleError {
	return &ScheduleError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
