// Package registry manages frame parsers keyed by frame type.
package registry

import "github.com/simonhull/popmeter/internal/types"

// ParseFunc decodes a frame payload into a concrete Frame. The payload
// is the frame body only; flags pass through to the built frame
// untouched.
type ParseFunc func(v types.Version, flags, payload []byte) (types.Frame, error)

// parsers maps frame types to their parsers.
var parsers = make(map[types.FrameID]ParseFunc)

// Register registers a parser for a frame type.
// This is called by frame packages during initialization (init functions).
func Register(id types.FrameID, parse ParseFunc) {
	parsers[id] = parse
}

// Lookup returns the parser for a frame type.
// The second result is false if no parser is registered.
func Lookup(id types.FrameID) (ParseFunc, bool) {
	parse, ok := parsers[id]
	return parse, ok
}
