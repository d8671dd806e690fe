package msvthemescatalog

import "github.com/Hebububu/msv/msvthemes"

var Dark = msvthemes.Theme{
	ID:   1,
	Name: "dark",
	Colors: msvthemes.Palette{
		Background:        "#1a1a2e",
		Text:              "#eaeaea",
		Line:              "#eaeaea",
		ParticipantFill:   "#16213e",
		ParticipantBorder: "#eaeaea",
	},
}
