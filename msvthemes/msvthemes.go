// msvthemes defines the color palettes diagrams are painted with.
package msvthemes

import (
	"fmt"

	"github.com/Hebububu/msv/lib/color"
)

type Theme struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Colors Palette `json:"colors"`
}

// Palette holds the five colors a diagram uses.
type Palette struct {
	Background string `json:"background"`
	// Text is used for participant labels and message labels.
	Text string `json:"text"`
	// Line is used for lifelines, arrows and arrowheads.
	Line              string `json:"line"`
	ParticipantFill   string `json:"participantFill"`
	ParticipantBorder string `json:"participantBorder"`
}

// Overrides replaces individual palette slots. nil fields keep the theme's
// color.
type Overrides struct {
	Background        *string `json:"background"`
	Text              *string `json:"text"`
	Line              *string `json:"line"`
	ParticipantFill   *string `json:"participantFill"`
	ParticipantBorder *string `json:"participantBorder"`
}

// ApplyOverrides returns a copy of t with overrides applied. Override colors
// may be any CSS color and are normalized to lowercase hex.
func (t Theme) ApplyOverrides(overrides *Overrides) (Theme, error) {
	if overrides == nil {
		return t, nil
	}
	slots := []struct {
		name string
		src  *string
		dst  *string
	}{
		{"background", overrides.Background, &t.Colors.Background},
		{"text", overrides.Text, &t.Colors.Text},
		{"line", overrides.Line, &t.Colors.Line},
		{"participant-fill", overrides.ParticipantFill, &t.Colors.ParticipantFill},
		{"participant-border", overrides.ParticipantBorder, &t.Colors.ParticipantBorder},
	}
	for _, s := range slots {
		if s.src == nil {
			continue
		}
		c, err := color.Normalize(*s.src)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", s.name, err)
		}
		*s.dst = c
	}
	return t, nil
}

// IsDark reports whether the background is dark.
func (t Theme) IsDark() bool {
	c, err := color.LuminanceCategory(t.Colors.Background)
	if err != nil {
		return false
	}
	return c == "dark" || c == "darker"
}
