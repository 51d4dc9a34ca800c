package popmeter

import (
	"github.com/simonhull/popmeter/internal/popm"
)

// Popularimeter is an alias to popm.Popularimeter.
// Re-exporting from internal/popm keeps one definition shared by the
// codec package and the public API.
type Popularimeter = popm.Popularimeter

// NewPopularimeter is a wrapper around popm.New.
// It builds a rating frame with no play count, carrying the default
// frame flags for the version:
//
//	p := popmeter.NewPopularimeter(popmeter.Version24, "user@example.com", 196)
//	p.SetPlayCount(42)
func NewPopularimeter(v Version, email string, rating uint8) *Popularimeter {
	return popm.New(v, email, rating)
}

// StarsToByte is a wrapper around popm.StarsToByte.
// It maps a 0-5 star value to its canonical rating byte; values
// outside the scale clamp to 0, meaning no rating.
func StarsToByte(stars int) uint8 {
	return popm.StarsToByte(stars)
}

// ByteToStars is a wrapper around popm.ByteToStars.
// It maps a raw rating byte onto the 0-5 star scale.
func ByteToStars(b uint8) int {
	return popm.ByteToStars(b)
}
