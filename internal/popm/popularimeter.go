// Package popm implements the Popularimeter frame: a per-email rating
// byte plus an optional big-endian play counter.
package popm

import (
	"bytes"
	"fmt"

	"github.com/simonhull/popmeter/internal/bytecursor"
	"github.com/simonhull/popmeter/internal/registry"
	"github.com/simonhull/popmeter/internal/types"
)

// playCountMinWidth is the narrowest play-count encoding emitted.
// Counts above 32 bits grow past it as needed.
const playCountMinWidth = 4

func init() {
	registry.Register(types.FrameIDPopularimeter, parse)
}

// Popularimeter pairs a 0-255 rating byte with the email address of
// whoever assigned it, plus an optional play counter. Rating 0 means
// no rating is known. An absent play count is distinct from a count
// of zero and stays absent until one is set.
type Popularimeter struct {
	version  types.Version
	flags    []byte
	size     uint32
	email    string
	rating   uint8
	count    uint64
	hasCount bool
}

// New builds a rating frame with no play count, carrying the default
// frame flags for the version.
func New(v types.Version, email string, rating uint8) *Popularimeter {
	p := &Popularimeter{
		version: v,
		flags:   v.DefaultFrameFlags(),
		email:   email,
		rating:  rating,
	}
	p.resize()
	return p
}

// parse decodes a frame payload: a NUL-terminated Latin-1 email, one
// mandatory rating byte, and an optional big-endian play counter
// filling whatever bytes remain.
func parse(v types.Version, flags, payload []byte) (types.Frame, error) {
	cur := bytecursor.New(payload)

	email := cur.TakeTerminatedString()

	rating, err := cur.TakeByte("rating")
	if err != nil {
		return nil, &types.InvalidFrameDataError{
			ID:   types.FrameIDPopularimeter,
			What: "rating byte",
		}
	}

	p := &Popularimeter{
		version: v,
		flags:   bytes.Clone(flags),
		email:   email,
		rating:  rating,
	}
	if rest := cur.TakeRemaining(); len(rest) > 0 {
		p.count = bytecursor.DecodeUint(rest)
		p.hasCount = true
	}
	p.resize()
	return p, nil
}

// Email returns the address the rating is attributed to. It may be
// empty: a payload without a terminator decodes to an empty email.
func (p *Popularimeter) Email() string {
	return p.email
}

// Rating returns the raw rating byte. 0 means no rating is known.
func (p *Popularimeter) Rating() uint8 {
	return p.rating
}

// Stars returns the rating mapped onto the 0-5 star scale.
func (p *Popularimeter) Stars() int {
	return ByteToStars(p.rating)
}

// PlayCount returns the play counter and whether one is present.
func (p *Popularimeter) PlayCount() (uint64, bool) {
	return p.count, p.hasCount
}

// SetRating replaces the raw rating byte.
func (p *Popularimeter) SetRating(rating uint8) {
	p.rating = rating
	p.resize()
}

// SetStars replaces the rating with the canonical byte for a 0-5 star
// value. Values outside the scale store rating 0.
func (p *Popularimeter) SetStars(stars int) {
	p.SetRating(StarsToByte(stars))
}

// SetPlayCount sets the play counter. The counter is present from then
// on, even when n is zero.
func (p *Popularimeter) SetPlayCount(n uint64) {
	p.count = n
	p.hasCount = true
	p.resize()
}

// SetEmail reassigns the rating to a different address. Callers that
// hold the frame in a tag must re-insert it: the key changes with the
// email.
func (p *Popularimeter) SetEmail(email string) {
	p.email = email
	p.resize()
}

// Header returns the envelope attributes. Size always equals the
// length of Payload().
func (p *Popularimeter) Header() types.FrameHeader {
	return types.FrameHeader{
		ID:      types.FrameIDPopularimeter,
		Version: p.version,
		Size:    p.size,
		Flags:   p.flags,
	}
}

// Key returns the identity this frame occupies in a tag: one entry per
// email address.
func (p *Popularimeter) Key() types.FrameKey {
	return types.PopularimeterKey(p.email)
}

// Payload encodes the frame body. Play counts encode at their minimal
// big-endian width with a four-byte floor, so a re-encoded frame may
// be shorter than an over-padded original.
func (p *Popularimeter) Payload() []byte {
	return p.encode()
}

// String returns a one-line description.
func (p *Popularimeter) String() string {
	who := p.email
	if who == "" {
		who = "unattributed"
	}
	if p.hasCount {
		return fmt.Sprintf("rating %d/255 (%d stars) by %s, %d plays", p.rating, p.Stars(), who, p.count)
	}
	return fmt.Sprintf("rating %d/255 (%d stars) by %s, play count unknown", p.rating, p.Stars(), who)
}

func (p *Popularimeter) encode() []byte {
	buf := bytecursor.AppendTerminated(nil, p.email)
	buf = append(buf, p.rating)
	if p.hasCount {
		buf = bytecursor.AppendUintMinimal(buf, p.count, playCountMinWidth)
	}
	return buf
}

// resize recomputes the declared size after any payload-affecting
// change.
func (p *Popularimeter) resize() {
	p.size = uint32(len(p.encode()))
}
