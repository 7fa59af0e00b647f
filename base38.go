package pixbase

// Base38Max is the largest base-38 value: four digits of 38 symbols.
const Base38Max = 38*38*38*38 - 1

// base38 symbols: 0 is padding, then '0'-'9', '?', 'a'-'z'.
const base38Alphabet = "\x000123456789?abcdefghijklmnopqrstuvwxyz"

func base38Digit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c-'0') + 1, true
	case c == '?':
		return 11, true
	case 'a' <= c && c <= 'z':
		return uint32(c-'a') + 12, true
	}
	return 0, false
}

// Base38Encode encodes a namespace of 1 to 4 symbols from [0-9?a-z]. Shorter
// names are padded on the right. The result fits in 21 bits.
func Base38Encode(s string) (uint32, bool) {
	if len(s) == 0 || len(s) > 4 {
		return 0, false
	}
	var u uint32
	for i := 0; i < 4; i++ {
		var d uint32
		if i < len(s) {
			var ok bool
			if d, ok = base38Digit(s[i]); !ok {
				return 0, false
			}
		}
		u = u*38 + d
	}
	return u, true
}

// Base38Decode is the inverse of Base38Encode. Padding is dropped and values
// above Base38Max decode to "?".
func Base38Decode(u uint32) string {
	if u > Base38Max {
		return "?"
	}
	var b [4]byte
	for i := 3; i >= 0; i-- {
		b[i] = base38Alphabet[u%38]
		u /= 38
	}
	n := 4
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n])
}

func mustBase38(s string) uint32 {
	u, ok := Base38Encode(s)
	if !ok {
		panic("pixbase: invalid base-38 namespace " + s)
	}
	return u
}
