package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToColor parses "#RRGGBB" or "#RRGGBBAA" (hex digits in either case).
// Any other form returns false; callers decide on a fallback.
func HexToColor(s string) (Value, bool) {
	if !strings.HasPrefix(s, "#") {
		return Clear, false
	}
	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return Clear, false
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Clear, false
	}

	alpha := 1.0
	if len(digits) == 8 {
		alpha = float64(n&0xff) / 255.0
		n >>= 8
	}

	return RGBA8(uint8(n>>16), uint8(n>>8), uint8(n), alpha), true
}

// ColorToHexAlpha formats the colour as "#RRGGBB" when it is opaque at 8-bit
// precision and as "#RRGGBBAA" otherwise, so HexToColor restores the alpha.
func ColorToHexAlpha(v Value) string {
	a := to8(v.A)
	if a == 0xFF {
		return ColorToHex(v)
	}
	r, g, b := v.RGB8()
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

// ColorToHex formats the colour channels as upper-case "#RRGGBB".
// Alpha is not represented.
func ColorToHex(v Value) string {
	r, g, b := v.RGB8()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
