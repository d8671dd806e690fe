package geo

import (
	"fmt"
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

func (p *Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

// AngleTo returns the direction, in radians, of the segment going from p1 to p2.
func (p1 *Point) AngleTo(p2 *Point) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

// Behind returns the point at distance length behind p when facing angle (radians).
func (p *Point) Behind(length, angle float64) *Point {
	return NewPoint(p.X-length*math.Cos(angle), p.Y-length*math.Sin(angle))
}

func (p *Point) Translate(dx, dy float64) *Point {
	return NewPoint(p.X+dx, p.Y+dy)
}
