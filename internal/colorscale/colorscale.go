// internal/colorscale/colorscale.go
// Package colorscale maps accuracy scores to heatmap cell colors.
package colorscale

import (
	"fmt"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// MissingColor marks cells with no recorded score.
	MissingColor = "#E5E7EB"
	// DarkText is used on the bright end of the scale.
	DarkText = "#000000"
	// LightText is used on the dark end of the scale and on missing cells.
	LightText = "#FFFFFF"

	// DarkTextThreshold is the score above which cell text switches to dark.
	DarkTextThreshold = 55.0

	saturation = 0.70
	lightness  = 0.60
	maxHue     = 120.0
)

// Color is a point on the red-to-green HSL scale, or the missing sentinel.
type Color struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Missing    bool    `json:"missing"`
}

// CellColor maps a score in [0,100] to hue 0 (red) through 120 (green).
// Out of range scores are clamped; nil maps to the missing sentinel.
func CellColor(score *float64) Color {
	if score == nil || math.IsNaN(*score) {
		return Color{Missing: true}
	}
	v := *score
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return Color{Hue: v / 100 * maxHue, Saturation: saturation, Lightness: lightness}
}

// String renders the color as CSS.
func (c Color) String() string {
	if c.Missing {
		return MissingColor
	}
	return fmt.Sprintf("hsl(%s, %d%%, %d%%)",
		strconv.FormatFloat(c.Hue, 'f', -1, 64),
		int(c.Saturation*100+0.5),
		int(c.Lightness*100+0.5))
}

// Hex renders the color as #rrggbb for terminals and legends.
func (c Color) Hex() string {
	if c.Missing {
		return MissingColor
	}
	return colorful.Hsl(c.Hue, c.Saturation, c.Lightness).Hex()
}

// TextColor picks the cell text color for legibility: dark above the
// threshold, white otherwise.
func TextColor(score *float64) string {
	if score != nil && *score > DarkTextThreshold {
		return DarkText
	}
	return LightText
}

// FormatScore renders a cell value with one decimal, or "-" when absent.
func FormatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}

// FormatPercent renders a tooltip value like "86.1%", or "N/A" when absent.
func FormatPercent(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return FormatScore(score) + "%"
}
