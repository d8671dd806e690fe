package svg

import (
	"fmt"
	"strings"
)

// Document collects fragments in paint order and wraps them in the root
// svg element. Later fragments paint over earlier ones.
type Document struct {
	Width      int
	Height     int
	Background string
	// Transparent omits the full-canvas background rect.
	Transparent bool

	elements []string
}

func NewDocument(width, height int, background string, transparent bool) *Document {
	return &Document{
		Width:       width,
		Height:      height,
		Background:  background,
		Transparent: transparent,
	}
}

func (d *Document) Add(fragments ...string) {
	for _, f := range fragments {
		if f != "" {
			d.elements = append(d.elements, f)
		}
	}
}

func (d *Document) Len() int {
	return len(d.elements)
}

func (d *Document) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		d.Width, d.Height, d.Width, d.Height)
	b.WriteString("\n")
	if !d.Transparent {
		bg := NewElement("rect")
		bg.WidthAttr = "100%"
		bg.HeightAttr = "100%"
		bg.Fill = d.Background
		b.WriteString("  " + bg.Render() + "\n")
	}
	b.WriteString("  " + strings.Join(d.elements, "\n  ") + "\n")
	b.WriteString("</svg>")
	return b.String()
}

func (d *Document) Bytes() []byte {
	return []byte(d.String())
}
