package types

import (
	"cmp"
	"fmt"
)

// FrameKey is the identity a tag stores a frame under. Keys compare by
// value: two frames with equal keys occupy the same tag entry, and the
// later write wins.
type FrameKey struct {
	// ID is the frame type.
	ID FrameID

	// Email qualifies rating-frame keys. A tag holds at most one
	// rating frame per email address; distinct addresses coexist.
	Email string

	// WireID qualifies unknown-frame keys so that unrecognized frames
	// with different identifiers do not collide.
	WireID string
}

// PopularimeterKey returns the key for the rating frame registered to
// the given email address.
func PopularimeterKey(email string) FrameKey {
	return FrameKey{ID: FrameIDPopularimeter, Email: email}
}

// UnknownKey returns the key for a frame with an unrecognized wire
// identifier.
func UnknownKey(wireID string) FrameKey {
	return FrameKey{ID: FrameIDUnknown, WireID: wireID}
}

// Compare orders keys by frame type, then wire identifier, then email.
// Tags iterate in this order, which makes "first matching frame"
// deterministic: for rating frames it is the smallest email.
func (k FrameKey) Compare(other FrameKey) int {
	if c := cmp.Compare(k.ID, other.ID); c != 0 {
		return c
	}
	if c := cmp.Compare(k.WireID, other.WireID); c != 0 {
		return c
	}
	return cmp.Compare(k.Email, other.Email)
}

// String returns a short identity label for logs and descriptions.
func (k FrameKey) String() string {
	switch {
	case k.ID == FrameIDUnknown && k.WireID != "":
		return fmt.Sprintf("Unknown(%s)", k.WireID)
	case k.Email != "":
		return fmt.Sprintf("%s(%s)", k.ID, k.Email)
	default:
		return k.ID.String()
	}
}
