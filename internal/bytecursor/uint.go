package bytecursor

import "encoding/binary"

// DecodeUint interprets b as a big-endian unsigned integer of arbitrary
// length. An empty slice decodes to 0. Slices longer than 8 bytes keep
// the low 64 bits.
func DecodeUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// AppendUintMinimal appends v as a big-endian unsigned integer using the
// fewest bytes that represent it, but never fewer than minWidth. Leading
// zero bytes are stripped from the natural 8-byte encoding down to the
// floor, so AppendUintMinimal(nil, 0, 4) yields four zero bytes and
// values above 32 bits grow to five or more.
func AppendUintMinimal(dst []byte, v uint64, minWidth int) []byte {
	if minWidth < 0 {
		minWidth = 0
	}
	if minWidth > 8 {
		minWidth = 8
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	keep := 8
	for keep > minWidth && buf[8-keep] == 0x00 {
		keep--
	}
	return append(dst, buf[8-keep:]...)
}
