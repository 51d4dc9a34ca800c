// Package tagdoc reads and writes tag documents: portable snapshots of
// a tag's frames that survive without the audio container around them.
//
// A container parser hands the core library (identifier, version, size,
// flags, payload) tuples and takes the same tuples back when it
// re-assembles a tag. A tag document is that handoff made durable, so
// tools can inspect, edit, and round-trip rating data without this
// module parsing the container format itself.
//
// Documents encode as CBOR for machines or JSON for people, optionally
// gzip-compressed. Reads sniff the encoding, so callers never say which
// one they expect.
package tagdoc

import (
	"time"

	"github.com/google/uuid"

	"github.com/simonhull/popmeter"
)

// Document is a serializable snapshot of one tag.
type Document struct {
	// ID identifies this snapshot, not the underlying tag. Every
	// snapshot gets a fresh one.
	ID string `cbor:"id" json:"id"`

	// Version is the canonical tag layout name, e.g. "ID3v2.4".
	Version string `cbor:"version" json:"version"`

	// CreatedAt records when the snapshot was taken, in UTC.
	CreatedAt time.Time `cbor:"created_at" json:"created_at"`

	// Frames holds the tag's frames in deterministic key order.
	Frames []FrameRecord `cbor:"frames" json:"frames"`
}

// FrameRecord is one frame exactly as the container handoff carries it:
// wire identifier, envelope attributes, raw payload.
type FrameRecord struct {
	WireID  string `cbor:"wire_id" json:"wire_id"`
	Size    uint32 `cbor:"size" json:"size"`
	Flags   []byte `cbor:"flags,omitempty" json:"flags,omitempty"`
	Payload []byte `cbor:"payload" json:"payload"`
}

// FromTag snapshots a tag into a fresh document.
//
// Frames appear in the tag's deterministic iteration order, so two
// snapshots of equal tags differ only in ID and CreatedAt.
func FromTag(tag *popmeter.Tag) *Document {
	doc := &Document{
		ID:        uuid.New().String(),
		Version:   tag.Version().String(),
		CreatedAt: time.Now().UTC(),
		Frames:    make([]FrameRecord, 0, tag.Len()),
	}

	for key, frame := range tag.All() {
		hdr := frame.Header()
		payload := frame.Payload()
		if payload == nil {
			payload = []byte{}
		}
		doc.Frames = append(doc.Frames, FrameRecord{
			WireID:  wireIDFor(key, tag.Version()),
			Size:    hdr.Size,
			Flags:   hdr.Flags,
			Payload: payload,
		})
	}

	return doc
}

// wireIDFor resolves the identifier a frame re-assembles under. Known
// layouts derive it from the tag version; unknown frames keep the
// identifier they arrived with.
func wireIDFor(key popmeter.FrameKey, v popmeter.Version) string {
	if key.ID == popmeter.FrameIDUnknown {
		return key.WireID
	}
	return key.ID.WireID(v)
}
