package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// previewBackdrop is the backdrop translucent colours are composited onto.
var previewBackdrop = RGBA(0, 0, 0, 1)

// Preview returns an ANSI truecolour block for v.
// Width specifies how many characters wide the block should be.
func Preview(v Value, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	r, g, b := Over(v, previewBackdrop).RGB8()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)

	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour block with centred text overlaid.
// The text colour is chosen to have good contrast with the block.
func PreviewWithText(v Value, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	solid := Over(v, previewBackdrop)
	fg := RGBA(1, 1, 1, 1)
	if ContrastRatio(solid, RGBA(0, 0, 0, 1)) > ContrastRatio(solid, fg) {
		fg = RGBA(0, 0, 0, 1)
	}

	r, g, b := solid.RGB8()
	fr, fgG, fb := fg.RGB8()
	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fr, fgG, fb, ansiSuffix)

	// Pad or truncate text to fit width.
	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bgSeq + fgSeq + display + ansiReset
}
