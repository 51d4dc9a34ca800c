package popm

// Star bands partition the 0-255 rating byte into the familiar 0-5
// star scale:
//
//	0       -> 0 stars (no rating)
//	1-31    -> 1 star
//	32-95   -> 2 stars
//	96-159  -> 3 stars
//	160-223 -> 4 stars
//	224-255 -> 5 stars
//
// The canonical write-back byte for each star count sits inside its
// own band, so converting stars to a byte and back returns the same
// star count.

// ByteToStars maps a raw rating byte onto the 0-5 star scale.
func ByteToStars(b uint8) int {
	switch {
	case b == 0:
		return 0
	case b <= 31:
		return 1
	case b <= 95:
		return 2
	case b <= 159:
		return 3
	case b <= 223:
		return 4
	default:
		return 5
	}
}

// StarsToByte maps a 0-5 star value to its canonical rating byte.
// Values outside the scale clamp to 0, meaning no rating.
func StarsToByte(stars int) uint8 {
	switch stars {
	case 1:
		return 1
	case 2:
		return 64
	case 3:
		return 128
	case 4:
		return 196
	case 5:
		return 255
	default:
		return 0
	}
}
