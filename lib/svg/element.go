package svg

import (
	"math"
	"strconv"
	"strings"
)

// Element is a helper for building SVG elements with a stable attribute
// order. Numeric attributes left at math.MaxFloat64 and empty string
// attributes are omitted.
type Element struct {
	tag string

	X      float64
	Y      float64
	X1     float64
	Y1     float64
	X2     float64
	Y2     float64
	Width  float64
	Height float64
	Rx     float64

	// WidthAttr and HeightAttr take precedence over Width and Height for
	// non-numeric values such as "100%".
	WidthAttr  string
	HeightAttr string

	D      string
	Points string

	Fill            string
	Stroke          string
	StrokeWidth     float64
	StrokeDasharray string

	FontSize   float64
	FontFamily string
	TextAnchor string

	// Content is emitted verbatim between the tags. Callers escape text.
	Content string
}

func NewElement(tag string) *Element {
	return &Element{
		tag:         tag,
		X:           math.MaxFloat64,
		Y:           math.MaxFloat64,
		X1:          math.MaxFloat64,
		Y1:          math.MaxFloat64,
		X2:          math.MaxFloat64,
		Y2:          math.MaxFloat64,
		Width:       math.MaxFloat64,
		Height:      math.MaxFloat64,
		Rx:          math.MaxFloat64,
		StrokeWidth: math.MaxFloat64,
		FontSize:    math.MaxFloat64,
	}
}

func (el *Element) Render() string {
	var b strings.Builder
	b.WriteString("<" + el.tag)

	num := func(name string, v float64) {
		if v != math.MaxFloat64 {
			b.WriteString(" " + name + `="` + FormatFloat(v) + `"`)
		}
	}
	str := func(name, v string) {
		if v != "" {
			b.WriteString(" " + name + `="` + v + `"`)
		}
	}

	num("x", el.X)
	num("y", el.Y)
	num("x1", el.X1)
	num("y1", el.Y1)
	num("x2", el.X2)
	num("y2", el.Y2)
	if el.WidthAttr != "" {
		str("width", el.WidthAttr)
	} else {
		num("width", el.Width)
	}
	if el.HeightAttr != "" {
		str("height", el.HeightAttr)
	} else {
		num("height", el.Height)
	}
	num("rx", el.Rx)
	str("d", el.D)
	str("points", el.Points)
	str("fill", el.Fill)
	str("stroke", el.Stroke)
	num("stroke-width", el.StrokeWidth)
	str("stroke-dasharray", el.StrokeDasharray)
	num("font-size", el.FontSize)
	str("font-family", el.FontFamily)
	str("text-anchor", el.TextAnchor)

	if el.Content != "" || el.tag == "text" {
		b.WriteString(">" + el.Content + "</" + el.tag + ">")
		return b.String()
	}
	b.WriteString("/>")
	return b.String()
}

// TODO probably use math.Big
func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// FormatFloat renders coordinates with at most four decimals and no
// trailing zeros.
func FormatFloat(f float64) string {
	f = chopPrecision(f)
	if f == 0 {
		// Avoid "-0".
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
