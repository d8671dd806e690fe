package svg

import (
	"strings"

	"github.com/Hebububu/msv/lib/geo"
)

// PathContext accumulates absolute path commands for a path element's d
// attribute.
type PathContext struct {
	Commands []string
	Start    *geo.Point
	Current  *geo.Point
}

func NewPathContext() *PathContext {
	return &PathContext{}
}

func (c *PathContext) point(x, y float64) string {
	return FormatFloat(x) + " " + FormatFloat(y)
}

func (c *PathContext) StartAt(p *geo.Point) {
	c.Start = p.Copy()
	c.Commands = append(c.Commands, "M "+c.point(p.X, p.Y))
	c.Current = p.Copy()
}

func (c *PathContext) L(x, y float64) {
	c.Commands = append(c.Commands, "L "+c.point(x, y))
	c.Current = geo.NewPoint(x, y)
}

// Q appends a quadratic Bézier segment with control point (cx, cy).
func (c *PathContext) Q(cx, cy, x, y float64) {
	c.Commands = append(c.Commands, "Q "+c.point(cx, cy)+" "+c.point(x, y))
	c.Current = geo.NewPoint(x, y)
}

func (c *PathContext) Z() {
	c.Commands = append(c.Commands, "Z")
	c.Current = c.Start.Copy()
}

func (c *PathContext) PathData() string {
	return strings.Join(c.Commands, " ")
}
