// internal/colorscale/colorscale_test.go
package colorscale

import (
	"math"
	"strings"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestCellColorBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score *float64
		hue   float64
		css   string
	}{
		{name: "zero is red", score: ptr(0), hue: 0, css: "hsl(0, 70%, 60%)"},
		{name: "hundred is green", score: ptr(100), hue: 120, css: "hsl(120, 70%, 60%)"},
		{name: "midpoint", score: ptr(50), hue: 60, css: "hsl(60, 70%, 60%)"},
		{name: "fractional", score: ptr(86.1), hue: 103.32, css: "hsl(103.32, 70%, 60%)"},
		{name: "clamped high", score: ptr(140), hue: 120, css: "hsl(120, 70%, 60%)"},
		{name: "clamped low", score: ptr(-3), hue: 0, css: "hsl(0, 70%, 60%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := CellColor(tt.score)
			if c.Missing {
				t.Fatal("unexpected missing color")
			}
			if diff := c.Hue - tt.hue; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("hue=%v want %v", c.Hue, tt.hue)
			}
			if got := c.String(); got != tt.css {
				t.Fatalf("String()=%q want %q", got, tt.css)
			}
		})
	}
}

func TestCellColorMissing(t *testing.T) {
	t.Parallel()

	c := CellColor(nil)
	if !c.Missing || c.String() != MissingColor || c.Hex() != MissingColor {
		t.Fatalf("missing color = %+v (%s, %s)", c, c.String(), c.Hex())
	}
	if nan := CellColor(ptr(math.NaN())); !nan.Missing || nan.String() != MissingColor {
		t.Fatalf("NaN color = %+v (%s)", nan, nan.String())
	}
	for _, v := range []float64{0, 25, 50, 75, 100} {
		if hex := CellColor(ptr(v)).Hex(); strings.EqualFold(hex, MissingColor) {
			t.Fatalf("score %v collides with missing sentinel", v)
		}
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	red := CellColor(ptr(0)).Hex()
	green := CellColor(ptr(100)).Hex()
	if len(red) != 7 || red[0] != '#' {
		t.Fatalf("unexpected hex %q", red)
	}
	if red == green {
		t.Fatal("scale ends should differ")
	}
	// hsl(0, 70%, 60%) is rgb(224, 82, 82).
	if red != "#e05252" {
		t.Fatalf("red end hex=%q want #e05252", red)
	}
}

func TestTextColor(t *testing.T) {
	t.Parallel()

	if got := TextColor(ptr(55.1)); got != DarkText {
		t.Fatalf("TextColor(55.1)=%q", got)
	}
	if got := TextColor(ptr(55)); got != LightText {
		t.Fatalf("TextColor(55)=%q", got)
	}
	if got := TextColor(nil); got != LightText {
		t.Fatalf("TextColor(nil)=%q", got)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := FormatScore(ptr(86.11)); got != "86.1" {
		t.Fatalf("FormatScore=%q", got)
	}
	if got := FormatScore(nil); got != "-" {
		t.Fatalf("FormatScore(nil)=%q", got)
	}
	if got := FormatPercent(ptr(100)); got != "100.0%" {
		t.Fatalf("FormatPercent=%q", got)
	}
	if got := FormatPercent(nil); got != "N/A" {
		t.Fatalf("FormatPercent(nil)=%q", got)
	}
}
