package popmeter

import (
	"github.com/simonhull/popmeter/internal/types"
)

// InvalidFrameDataError is an alias to types.InvalidFrameDataError.
// Re-exporting from internal/types keeps one definition shared by the
// internal frame packages and the public API.
type InvalidFrameDataError = types.InvalidFrameDataError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types keeps one definition shared by the
// internal frame packages and the public API.
type Warning = types.Warning
