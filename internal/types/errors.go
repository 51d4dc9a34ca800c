package types

import "fmt"

// InvalidFrameDataError is returned when a frame payload is too short
// to contain a mandatory fixed-size field. Optional trailing fields
// never produce it; a missing byte of required data always does.
type InvalidFrameDataError struct {
	// ID is the frame type that failed to decode.
	ID FrameID

	// What names the missing field.
	What string
}

func (e *InvalidFrameDataError) Error() string {
	return fmt.Sprintf("%s: invalid frame data: missing %s", e.ID, e.What)
}

// Warning represents a non-fatal issue encountered while decoding a
// tag document.
//
// Warnings indicate frames that were skipped or values that were
// repaired without failing the whole decode. Examples include:
//   - A truncated frame payload (the frame is dropped)
//   - A declared size that disagrees with the payload length
//
// Strict decoding promotes the first warning-worthy condition to an
// error instead.
type Warning struct {
	// Stage that produced the warning, e.g. "document".
	Stage string

	// Warning message.
	Message string

	// Index of the frame record the warning refers to, or -1 when the
	// warning is not frame-specific.
	Index int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Index >= 0 {
		return fmt.Sprintf("%s %d: %s", w.Stage, w.Index, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
