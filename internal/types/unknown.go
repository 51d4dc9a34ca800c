package types

import (
	"bytes"
	"fmt"
)

// Unknown carries a frame this library has no codec for. The wire
// identifier, flags, and payload pass through byte-for-byte, so a tag
// that round-trips through this library re-emits the frame losslessly.
type Unknown struct {
	wireID string
	header FrameHeader
	data   []byte
}

// NewUnknown builds a passthrough frame for an unregistered wire
// identifier. Flags and payload are copied.
func NewUnknown(wireID string, v Version, flags, payload []byte) *Unknown {
	return &Unknown{
		wireID: wireID,
		header: FrameHeader{
			ID:      FrameIDUnknown,
			Version: v,
			Size:    uint32(len(payload)),
			Flags:   bytes.Clone(flags),
		},
		data: bytes.Clone(payload),
	}
}

// WireID returns the identifier the frame carried on the wire.
func (u *Unknown) WireID() string {
	return u.wireID
}

// Header returns the envelope attributes.
func (u *Unknown) Header() FrameHeader {
	return u.header
}

// Key returns the passthrough identity, qualified by wire identifier.
func (u *Unknown) Key() FrameKey {
	return UnknownKey(u.wireID)
}

// Payload returns a copy of the stored bytes, unchanged from what the
// frame was built with.
func (u *Unknown) Payload() []byte {
	return bytes.Clone(u.data)
}

// String returns a one-line description.
func (u *Unknown) String() string {
	return fmt.Sprintf("%s frame (%d bytes, no codec)", u.wireID, len(u.data))
}
