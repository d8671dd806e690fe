package msvthemescatalog

import (
	"fmt"
	"strings"

	"github.com/Hebububu/msv/msvthemes"
)

var Catalog = []msvthemes.Theme{
	Light,
	Dark,
}

// Find looks a theme up by case-insensitive name.
func Find(name string) (msvthemes.Theme, bool) {
	for _, theme := range Catalog {
		if strings.EqualFold(theme.Name, strings.TrimSpace(name)) {
			return theme, true
		}
	}
	return msvthemes.Theme{}, false
}

func FindByID(id int64) (msvthemes.Theme, bool) {
	for _, theme := range Catalog {
		if theme.ID == id {
			return theme, true
		}
	}
	return msvthemes.Theme{}, false
}

func CLIString() string {
	var s strings.Builder
	for _, t := range Catalog {
		s.WriteString(fmt.Sprintf("- %s: %d\n", t.Name, t.ID))
	}
	return s.String()
}
