package models

import (
	"math"
	"strconv"
	"strings"
)

// OnAccentColor picks black or white, whichever reads better on the given
// accent color, by comparing WCAG contrast ratios.
func OnAccentColor(hex string) string {
	r, g, b := hexToRGB(hex)
	lin := func(c int) float64 {
		s := float64(c) / 255
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	// relative luminance
	l := 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b)

	contrastWhite := (1 + 0.05) / (l + 0.05)
	contrastBlack := (l + 0.05) / 0.05

	if contrastBlack >= contrastWhite {
		return "#000000"
	}
	return "#ffffff"
}

func hexToRGB(hex string) (int, int, int) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	n, err := strconv.ParseInt(h, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(n >> 16 & 255), int(n >> 8 & 255), int(n & 255)
}
