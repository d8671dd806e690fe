package svg

import (
	"math"
	"strings"

	"github.com/Hebububu/msv/lib/geo"
)

type LineStyle int

const (
	Solid LineStyle = iota
	Dotted
)

func (s LineStyle) String() string {
	if s == Dotted {
		return "dotted"
	}
	return "solid"
}

func (s LineStyle) dasharray() string {
	if s == Dotted {
		return "5,5"
	}
	return ""
}

// HeadKind is the marker drawn at an end of an arrow.
type HeadKind int

const (
	HeadNone HeadKind = iota
	HeadClosed
	HeadOpen
	HeadCross
)

func (k HeadKind) String() string {
	switch k {
	case HeadClosed:
		return "closed"
	case HeadOpen:
		return "open"
	case HeadCross:
		return "cross"
	}
	return "none"
}

const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

const (
	ArrowheadLength = 10.
	ArrowheadAngle  = 0.5
	CrossHalfSize   = 6.

	SelfLoopWidth  = 40.
	SelfLoopHeight = 30.

	BaselineFactor = 0.35
	cornerRadius   = 4.
)

type TextStyle struct {
	Fill       string
	FontFamily string
	FontSize   int
}

func Line(x1, y1, x2, y2 float64, stroke string, style LineStyle) string {
	el := NewElement("line")
	el.X1 = x1
	el.Y1 = y1
	el.X2 = x2
	el.Y2 = y2
	el.Stroke = stroke
	el.StrokeWidth = 1
	el.StrokeDasharray = style.dasharray()
	return el.Render()
}

// Arrowhead draws a marker whose tip is at (x, y) pointing along angle.
// HeadCross ignores angle. HeadNone yields "".
func Arrowhead(x, y, angle float64, stroke string, kind HeadKind) string {
	tip := geo.NewPoint(x, y)
	switch kind {
	case HeadClosed:
		b1 := tip.Behind(ArrowheadLength, angle-ArrowheadAngle)
		b2 := tip.Behind(ArrowheadLength, angle+ArrowheadAngle)
		el := NewElement("polygon")
		el.Points = points(tip, b1, b2)
		el.Fill = stroke
		return el.Render()
	case HeadOpen:
		b1 := tip.Behind(ArrowheadLength, angle-ArrowheadAngle)
		b2 := tip.Behind(ArrowheadLength, angle+ArrowheadAngle)
		return Line(b1.X, b1.Y, x, y, stroke, Solid) + "\n" +
			Line(b2.X, b2.Y, x, y, stroke, Solid)
	case HeadCross:
		return Line(x-CrossHalfSize, y-CrossHalfSize, x+CrossHalfSize, y+CrossHalfSize, stroke, Solid) + "\n" +
			Line(x-CrossHalfSize, y+CrossHalfSize, x+CrossHalfSize, y-CrossHalfSize, stroke, Solid)
	}
	return ""
}

// Arrow draws the shaft from (x1, y1) to (x2, y2), then the end marker,
// then the start marker pointing back the other way.
func Arrow(x1, y1, x2, y2 float64, stroke string, style LineStyle, start, end HeadKind) string {
	from := geo.NewPoint(x1, y1)
	angle := from.AngleTo(geo.NewPoint(x2, y2))

	parts := []string{
		Line(x1, y1, x2, y2, stroke, style),
		Arrowhead(x2, y2, angle, stroke, end),
		Arrowhead(x1, y1, angle+math.Pi, stroke, start),
	}
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}

// SelfLoop draws an oval loop to the right of (x, y) that returns to
// (x, y+SelfLoopHeight), capped by a filled arrowhead pointing back at the
// lifeline.
func SelfLoop(x, y float64, stroke string, style LineStyle) string {
	pc := NewPathContext()
	pc.StartAt(geo.NewPoint(x, y))
	pc.Q(x+SelfLoopWidth, y, x+SelfLoopWidth, y+SelfLoopHeight/2)
	pc.Q(x+SelfLoopWidth, y+SelfLoopHeight, x, y+SelfLoopHeight)

	path := NewElement("path")
	path.D = pc.PathData()
	path.Fill = "none"
	path.Stroke = stroke
	path.StrokeWidth = 1
	path.StrokeDasharray = style.dasharray()

	end := y + SelfLoopHeight
	head := NewElement("polygon")
	head.Points = points(
		geo.NewPoint(x, end),
		geo.NewPoint(x+8, end-5),
		geo.NewPoint(x+8, end+5),
	)
	head.Fill = stroke

	return path.Render() + "\n" + head.Render()
}

func Rect(x, y, width, height float64, fill, stroke string) string {
	el := NewElement("rect")
	el.X = x
	el.Y = y
	el.Width = width
	el.Height = height
	el.Rx = cornerRadius
	el.Fill = fill
	el.Stroke = stroke
	el.StrokeWidth = 1
	return el.Render()
}

// Text draws a single line with its baseline at y. The text is escaped.
func Text(x, y float64, text string, style TextStyle, anchor string) string {
	el := NewElement("text")
	el.X = x
	el.Y = y
	el.Fill = style.Fill
	el.FontSize = float64(style.FontSize)
	el.FontFamily = EscapeText(style.FontFamily)
	el.TextAnchor = anchor
	el.Content = EscapeText(text)
	return el.Render()
}

// MultilineText centers a block of lines vertically on centerY. Baselines
// are shifted down by BaselineFactor*FontSize so the block looks centered.
func MultilineText(x, centerY float64, lines []string, style TextStyle, lineHeight float64, anchor string) string {
	if len(lines) == 0 {
		return ""
	}
	total := float64(len(lines)-1) * lineHeight
	startY := centerY - total/2 + float64(style.FontSize)*BaselineFactor

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Text(x, startY+float64(i)*lineHeight, l, style, anchor)
	}
	return strings.Join(out, "\n")
}

func points(pts ...*geo.Point) string {
	s := make([]string, len(pts))
	for i, p := range pts {
		s[i] = FormatFloat(p.X) + "," + FormatFloat(p.Y)
	}
	return strings.Join(s, " ")
}
