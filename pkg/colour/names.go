package colour

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColour parses user input as a hex colour ("#RRGGBB" / "#RRGGBBAA")
// or a CSS/SVG colour keyword such as "cornflowerblue".
func ParseColour(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		v, ok := HexToColor(s)
		if !ok {
			return Clear, fmt.Errorf("invalid hex colour: %q", s)
		}
		return v, nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Clear, fmt.Errorf("unknown colour %q (expected #RRGGBB, #RRGGBBAA or a CSS colour name)", s)
	}

	return RGBA8(named.R, named.G, named.B, float64(named.A)/255.0), nil
}
