package popmeter

import (
	"iter"
	"slices"

	"github.com/simonhull/popmeter/internal/popm"
	"github.com/simonhull/popmeter/internal/types"
)

// Tag is an in-memory collection of frames keyed by identity.
//
// A tag never holds two frames with equal keys: storing a frame whose
// key is already present replaces the earlier one. Rating frames are
// keyed per email address, so ratings from different sources coexist
// in one tag.
//
// The rating accessors and commands operate on "the first rating
// frame", which is deterministic: frames are ordered by key, so for
// rating frames it is the one with the smallest email address. A tag
// built with SetRating alone keys its frame by the empty email, which
// sorts first.
//
//	tag := popmeter.NewTag(popmeter.Version24)
//	tag.SetStarRating(4)
//	tag.SetPlayCount(42)
//
//	if stars, ok := tag.StarRating(); ok {
//		fmt.Printf("%d stars\n", stars)
//	}
type Tag struct {
	version types.Version
	frames  map[types.FrameKey]types.Frame
}

// NewTag creates an empty tag whose frames target the given layout
// version.
func NewTag(v Version) *Tag {
	return &Tag{
		version: v,
		frames:  make(map[types.FrameKey]types.Frame),
	}
}

// Version returns the tag layout version frames are built for.
func (t *Tag) Version() Version {
	return t.version
}

// Len returns the number of frames in the tag.
func (t *Tag) Len() int {
	return len(t.frames)
}

// Put stores frame under its own key, replacing any frame already
// stored there.
func (t *Tag) Put(frame Frame) {
	t.frames[frame.Key()] = frame
}

// Get returns the frame stored under key.
func (t *Tag) Get(key FrameKey) (Frame, bool) {
	frame, ok := t.frames[key]
	return frame, ok
}

// Delete removes the frame stored under key and reports whether one
// was there.
func (t *Tag) Delete(key FrameKey) bool {
	if _, ok := t.frames[key]; !ok {
		return false
	}
	delete(t.frames, key)
	return true
}

// All iterates over frames in deterministic key order. Use it to walk
// a tag for display or re-assembly:
//
//	for key, frame := range tag.All() {
//		fmt.Printf("%s: %s\n", key, frame)
//	}
func (t *Tag) All() iter.Seq2[FrameKey, Frame] {
	return func(yield func(FrameKey, Frame) bool) {
		for _, key := range t.sortedKeys() {
			if !yield(key, t.frames[key]) {
				return
			}
		}
	}
}

// Rating returns the raw rating byte of the first rating frame. The
// second result is false when the tag has no rating frame.
func (t *Tag) Rating() (uint8, bool) {
	p, ok := t.firstRating()
	if !ok {
		return 0, false
	}
	return p.Rating(), true
}

// StarRating returns the first rating frame's rating on the 0-5 star
// scale. The second result is false when the tag has no rating frame.
func (t *Tag) StarRating() (int, bool) {
	p, ok := t.firstRating()
	if !ok {
		return 0, false
	}
	return p.Stars(), true
}

// PlayCount returns the play counter of the first rating frame. The
// second result is false when the tag has no rating frame or the frame
// carries no counter; a stored count of zero still reports true.
func (t *Tag) PlayCount() (uint64, bool) {
	p, ok := t.firstRating()
	if !ok {
		return 0, false
	}
	return p.PlayCount()
}

// RatingEmail returns the email address of the first rating frame. The
// second result is false when the tag has no rating frame.
func (t *Tag) RatingEmail() (string, bool) {
	p, ok := t.firstRating()
	if !ok {
		return "", false
	}
	return p.Email(), true
}

// SetRating writes the raw rating byte. The first rating frame is
// updated in place; a tag without one gets a new frame keyed by the
// empty email. Other rating frames are left alone.
func (t *Tag) SetRating(rating uint8) {
	if p, ok := t.firstRating(); ok {
		p.SetRating(rating)
		return
	}
	t.Put(popm.New(t.version, "", rating))
}

// SetStarRating writes the canonical rating byte for a 0-5 star value.
// Values outside the scale store rating 0, meaning no rating.
func (t *Tag) SetStarRating(stars int) {
	t.SetRating(popm.StarsToByte(stars))
}

// ClearRating removes every rating frame, whatever email it is keyed
// by. Writes target a single frame; clearing sweeps the whole family.
func (t *Tag) ClearRating() {
	for key := range t.frames {
		if key.ID == types.FrameIDPopularimeter {
			delete(t.frames, key)
		}
	}
}

// SetPlayCount writes the play counter on the first rating frame. A
// tag without one gets a new frame with rating 0 to carry the counter.
func (t *Tag) SetPlayCount(n uint64) {
	p, ok := t.firstRating()
	if !ok {
		p = popm.New(t.version, "", 0)
		t.Put(p)
	}
	p.SetPlayCount(n)
}

// SetRatingEmail reassigns the first rating frame to a different email
// address, re-keying it so lookups under the new address find it. If a
// frame already sits under the new address it is replaced. With no
// rating frame present this is a no-op: there is nothing to reassign,
// and inventing a rating here would turn a rename into a write.
func (t *Tag) SetRatingEmail(email string) {
	p, ok := t.firstRating()
	if !ok {
		return
	}
	if p.Email() == email {
		return
	}
	delete(t.frames, p.Key())
	p.SetEmail(email)
	t.Put(p)
}

// firstRating returns the rating frame with the smallest email, which
// is the first one in key order.
func (t *Tag) firstRating() (*popm.Popularimeter, bool) {
	var first *popm.Popularimeter
	for key, frame := range t.frames {
		if key.ID != types.FrameIDPopularimeter {
			continue
		}
		p, ok := frame.(*popm.Popularimeter)
		if !ok {
			continue
		}
		if first == nil || p.Email() < first.Email() {
			first = p
		}
	}
	return first, first != nil
}

func (t *Tag) sortedKeys() []types.FrameKey {
	keys := make([]types.FrameKey, 0, len(t.frames))
	for key := range t.frames {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, types.FrameKey.Compare)
	return keys
}
