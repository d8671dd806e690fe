// Package textmeasure estimates the rendered width of label text.
//
// The default Ruler is a fixed per-character table calibrated to a 14px
// sans-serif face, so results are deterministic and independent of any
// fonts installed on the host. A TTF-backed Ruler is available for callers
// that prefer glyph-accurate measurements.
package textmeasure

import (
	"math"
	"strings"
)

// BaseFontSize is the size the character table is calibrated for.
const BaseFontSize = 14

// Ruler measures the advance width of a single line of text.
type Ruler interface {
	Width(text string, fontSize int) float64
}

// Table is the fixed character-class ruler.
var Table Ruler = tableRuler{}

type tableRuler struct{}

func (tableRuler) Width(text string, fontSize int) float64 {
	return Width(text, fontSize)
}

// Width returns the estimated width of text at fontSize using the
// character table. Widths scale linearly with fontSize.
func Width(text string, fontSize int) float64 {
	var sum float64
	for _, r := range text {
		sum += charWidth(r)
	}
	return sum * float64(fontSize) / BaseFontSize
}

func charWidth(r rune) float64 {
	switch r {
	case 'i', 'j', 'l', '!', '|', '.', ',', ':', ';', '\'', '`':
		return 4
	case 'I', 'f', 't', 'r':
		return 5
	case ' ', '-', '(', ')', '[', ']', '{', '}':
		return 5
	case 'w', 'm':
		return 10
	case 'M', 'W':
		return 11
	case '@', '#', '$', '%', '&', '+', '=', '<', '>', '?', '/', '\\', '"', '*':
		return 8
	}
	switch {
	case r >= 'A' && r <= 'Z':
		return 9
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return 7
	}
	return 7
}

var lineBreaks = strings.NewReplacer("<br/>", "\n", "<br>", "\n")

// SplitLines breaks a label into display lines. Both <br/> and <br> count
// as line breaks alongside "\n". Lines are trimmed and empty lines dropped.
func SplitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(lineBreaks.Replace(text), "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// MaxWidth returns the width of the widest line, or 0 for no lines.
func MaxWidth(r Ruler, lines []string, fontSize int) float64 {
	var w float64
	for _, l := range lines {
		w = math.Max(w, r.Width(l, fontSize))
	}
	return w
}

// BoxWidth is the widest line plus padding.
func BoxWidth(r Ruler, lines []string, fontSize int, padding float64) float64 {
	return MaxWidth(r, lines, fontSize) + padding
}

// BoxHeight reserves at least one line.
func BoxHeight(lineCount int, lineHeight, padding float64) float64 {
	if lineCount < 1 {
		lineCount = 1
	}
	return float64(lineCount)*lineHeight + padding
}
