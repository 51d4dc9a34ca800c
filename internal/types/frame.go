// Package types defines the frame model shared across the library:
// identifiers, tag versions, headers, keys, and the Frame interface.
package types

import "fmt"

// FrameID represents a frame layout this library knows how to decode.
type FrameID int

const (
	// FrameIDUnknown marks frames whose identifier has no registered codec.
	FrameIDUnknown FrameID = iota // Unknown
	// FrameIDPopularimeter is the rating and play-count frame.
	FrameIDPopularimeter // Popularimeter
)

// String returns the frame type name.
func (id FrameID) String() string {
	switch id {
	case FrameIDPopularimeter:
		return "Popularimeter"
	default:
		return "Unknown"
	}
}

// WireID returns the identifier this frame type carries on the wire for
// the given tag version: three characters for ID3v2.2 layouts, four for
// ID3v2.3 and ID3v2.4. Unknown frame types have no wire identifier of
// their own and return "".
func (id FrameID) WireID(v Version) string {
	if id == FrameIDPopularimeter {
		if v == Version22 {
			return "POP"
		}
		return "POPM"
	}
	return ""
}

// ParseFrameID resolves a wire identifier to a known frame type under
// the given version's naming rules. Identifiers with no registered
// layout resolve to FrameIDUnknown.
func ParseFrameID(wireID string, v Version) FrameID {
	if wireID == FrameIDPopularimeter.WireID(v) {
		return FrameIDPopularimeter
	}
	return FrameIDUnknown
}

// Version represents the tag layout generation a frame targets. The
// version decides the wire identifier length and how many frame flag
// bytes the header carries.
type Version int

const (
	// VersionUnknown is the zero value; no layout rules apply.
	VersionUnknown Version = iota // unknown
	// Version22 is ID3v2.2: three-character identifiers, no flag bytes.
	Version22 // ID3v2.2
	// Version23 is ID3v2.3: four-character identifiers, two flag bytes.
	Version23 // ID3v2.3
	// Version24 is ID3v2.4: four-character identifiers, two flag bytes.
	Version24 // ID3v2.4
)

// String returns the canonical version name (e.g. "ID3v2.4").
func (v Version) String() string {
	switch v {
	case Version22:
		return "ID3v2.2"
	case Version23:
		return "ID3v2.3"
	case Version24:
		return "ID3v2.4"
	default:
		return "unknown"
	}
}

// ParseVersion resolves a canonical version name back to its Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "ID3v2.2":
		return Version22, nil
	case "ID3v2.3":
		return Version23, nil
	case "ID3v2.4":
		return Version24, nil
	default:
		return VersionUnknown, fmt.Errorf("unrecognized tag version %q", s)
	}
}

// DefaultFrameFlags returns the flag bytes a freshly built frame
// carries under this version: none for ID3v2.2 (that layout has no
// frame flags), two zero bytes for ID3v2.3 and ID3v2.4.
func (v Version) DefaultFrameFlags() []byte {
	if v == Version22 {
		return nil
	}
	return []byte{0x00, 0x00}
}

// FrameHeader carries the envelope attributes a container hands over
// with each frame payload and takes back when re-assembling a tag.
type FrameHeader struct {
	// ID is the decoded frame type.
	ID FrameID
	// Version is the tag layout the frame belongs to.
	Version Version
	// Size is the payload length in bytes. Frame constructors and
	// mutators keep it equal to len(Payload()) at all times.
	Size uint32
	// Flags holds the raw frame flag bytes, passed through untouched.
	Flags []byte
}

// Frame is a decoded tag frame. Implementations own their payload
// layout and keep header, key, and payload consistent under mutation.
type Frame interface {
	// Header returns the envelope attributes for re-assembly.
	Header() FrameHeader

	// Key returns the identity a tag stores this frame under.
	Key() FrameKey

	// Payload encodes the frame body. The result is always exactly
	// Header().Size bytes.
	Payload() []byte

	// String returns a one-line human-readable description.
	String() string
}
