// internal/util/util.go
package util

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-runewidth"
)

// WriteFile writes data to a file with 0o644 permissions, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// TruncateWidth truncates a string to a display width in terminal cells,
// appending an ellipsis if truncated.
func TruncateWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// PadRight truncates or pads text to exactly width terminal cells.
func PadRight(text string, width int) string {
	return runewidth.FillRight(TruncateWidth(text, width), width)
}

// Width returns the display width of text in terminal cells.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
