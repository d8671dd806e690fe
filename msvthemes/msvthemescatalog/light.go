package msvthemescatalog

import "github.com/Hebububu/msv/msvthemes"

var Light = msvthemes.Theme{
	ID:   0,
	Name: "light",
	Colors: msvthemes.Palette{
		Background:        "#ffffff",
		Text:              "#333333",
		Line:              "#333333",
		ParticipantFill:   "#ecf0f1",
		ParticipantBorder: "#333333",
	},
}
