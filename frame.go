package popmeter

import (
	"github.com/simonhull/popmeter/internal/registry"
	"github.com/simonhull/popmeter/internal/types"
)

// Frame is an alias to types.Frame.
// Re-exporting from internal/types keeps one definition shared by the
// internal frame packages and the public API.
type Frame = types.Frame

// FrameHeader is an alias to types.FrameHeader.
// Re-exporting from internal/types keeps one definition shared by the
// internal frame packages and the public API.
type FrameHeader = types.FrameHeader

// FrameKey is an alias to types.FrameKey.
// Re-exporting from internal/types keeps one definition shared by the
// internal frame packages and the public API.
type FrameKey = types.FrameKey

// FrameID is an alias to types.FrameID.
// Re-exporting from internal/types keeps one definition shared by the
// internal frame packages and the public API.
type FrameID = types.FrameID

// Version is an alias to types.Version.
// Re-exporting from internal/types keeps one definition shared by the
// internal frame packages and the public API.
type Version = types.Version

// Unknown is an alias to types.Unknown.
// Re-exporting from internal/types keeps one definition shared by the
// internal frame packages and the public API.
type Unknown = types.Unknown

// Re-export all frame type constants.
const (
	FrameIDUnknown       = types.FrameIDUnknown
	FrameIDPopularimeter = types.FrameIDPopularimeter
)

// Re-export all tag version constants.
const (
	VersionUnknown = types.VersionUnknown
	Version22      = types.Version22
	Version23      = types.Version23
	Version24      = types.Version24
)

// PopularimeterKey is a wrapper around types.PopularimeterKey.
// It returns the key for the rating frame registered to the given
// email address.
func PopularimeterKey(email string) FrameKey {
	return types.PopularimeterKey(email)
}

// UnknownKey is a wrapper around types.UnknownKey.
// It returns the key for a frame with an unrecognized wire identifier.
func UnknownKey(wireID string) FrameKey {
	return types.UnknownKey(wireID)
}

// ParseVersion is a wrapper around types.ParseVersion.
// It resolves a canonical version name like "ID3v2.4" to its Version.
func ParseVersion(s string) (Version, error) {
	return types.ParseVersion(s)
}

// ParseFrame decodes one frame as handed over by a container: the wire
// identifier, the tag version it was found under, the raw frame flag
// bytes, and the payload.
//
// Identifiers with a registered codec decode into concrete frames;
// everything else lands in an Unknown frame that preserves the wire
// identifier, flags, and payload byte-for-byte.
//
// The only decode failure is a payload too short for a mandatory
// field, reported as *InvalidFrameDataError:
//
//	frame, err := popmeter.ParseFrame("POPM", popmeter.Version24, flags, payload)
//	var invalid *popmeter.InvalidFrameDataError
//	if errors.As(err, &invalid) {
//		// the frame is truncated
//	}
func ParseFrame(wireID string, v Version, flags, payload []byte) (Frame, error) {
	id := types.ParseFrameID(wireID, v)
	if parse, ok := registry.Lookup(id); ok {
		return parse(v, flags, payload)
	}
	return types.NewUnknown(wireID, v, flags, payload), nil
}
