// Package popmeter encodes and decodes ID3v2 rating frames.
//
// popmeter is built around the Popularimeter frame: the 0-255 rating
// byte, the optional play counter, and the email address that ties a
// rating to whoever assigned it. It handles the frame payloads and the
// tag-level bookkeeping; reading and writing the surrounding audio
// container is deliberately someone else's job.
//
// # Quick Start
//
// Decoding a frame payload handed over by a container parser:
//
//	frame, err := popmeter.ParseFrame("POPM", popmeter.Version24, flags, payload)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(frame) // rating 196/255 (4 stars) by user@example.com, 42 plays
//
// Working with ratings at the tag level:
//
//	tag := popmeter.NewTag(popmeter.Version24)
//	tag.SetStarRating(4)
//	tag.SetPlayCount(42)
//
//	stars, _ := tag.StarRating()
//	fmt.Printf("%d stars\n", stars)
//
// # The Star Scale
//
// Players disagree about what the raw rating byte means, but most map
// it onto five stars. popmeter uses half-open bands (0; 1-31; 32-95;
// 96-159; 160-223; 224-255) and writes back one canonical byte per
// star count (0, 1, 64, 128, 196, 255), so converting stars to a byte
// and back never loses a star.
//
// # Tag Semantics
//
// A Tag holds at most one frame per key. Rating frames are keyed by
// email address, so ratings from different players coexist; writes
// target the first frame in key order, while ClearRating removes the
// whole family. An absent play count is distinct from a count of zero
// and round-trips that way.
//
// # Philosophy
//
// popmeter follows three rules:
//
// 1. Decode defensively: a missing email terminator or absent play
// count is a valid state, not an error. Only a truncated mandatory
// field fails, and it fails with a typed error.
//
// 2. Sizes are computed, never trusted: a frame's declared size always
// equals the length of the bytes it encodes to, maintained by
// construction through every mutation.
//
// 3. Preserve what we do not understand: frames without a registered
// codec pass through byte-for-byte.
//
// # Tag Documents
//
// The internal/tagdoc package and the popmctl tool serialize tags as
// documents (CBOR or JSON, optionally gzipped) carrying exactly what a
// container hands over per frame: wire identifier, declared size, flag
// bytes, and payload. Documents are how tags move between tools
// without this library growing a container parser.
//
// # Error Handling
//
// popmeter distinguishes between fatal errors and warnings:
//
//   - *InvalidFrameDataError means a frame payload was truncated.
//   - Warnings report frames that were skipped or repaired while
//     decoding a document leniently; strict decoding promotes them to
//     errors.
package popmeter
