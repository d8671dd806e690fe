package geo

import "math"

// Bounds accumulates the bottom-right extent of everything drawn in a layout pass.
// The extent only ever grows. A Bounds belongs to a single render and is not safe for concurrent use.
type Bounds struct {
	maxX float64
	maxY float64
}

func NewBounds() *Bounds {
	return &Bounds{}
}

func (b *Bounds) MaxX() float64 {
	return b.maxX
}

func (b *Bounds) MaxY() float64 {
	return b.maxY
}

func (b *Bounds) IncludePoint(x, y float64) {
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

func (b *Bounds) IncludeRect(x, y, width, height float64) {
	b.IncludePoint(x+width, y+height)
}

// IncludeText includes the right edge of a text run anchored at x.
// anchor is an SVG text-anchor value; anything unrecognized is treated as "start".
func (b *Bounds) IncludeText(x, y, textWidth float64, anchor string) {
	var right float64
	switch anchor {
	case "middle":
		right = x + textWidth/2
	case "end":
		right = x
	default:
		right = x + textWidth
	}
	b.IncludePoint(right, y)
}

// Size returns the canvas dimensions: the extent plus pad, rounded up to whole pixels.
func (b *Bounds) Size(pad float64) (width, height int) {
	width = int(math.Max(0, math.Ceil(b.maxX+pad)))
	height = int(math.Max(0, math.Ceil(b.maxY+pad)))
	return width, height
}
