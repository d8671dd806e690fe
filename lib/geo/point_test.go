package geo

import (
	"math"
	"testing"
)

func TestAngleTo(t *testing.T) {
	p1 := NewPoint(0, 0)
	if a := p1.AngleTo(NewPoint(10, 0)); a != 0 {
		t.Fatalf("expected 0 and got %v", a)
	}
	if a := p1.AngleTo(NewPoint(-10, 0)); a != math.Pi {
		t.Fatalf("expected pi and got %v", a)
	}
	if a := p1.AngleTo(NewPoint(0, 10)); a != math.Pi/2 {
		t.Fatalf("expected pi/2 and got %v", a)
	}
}

func TestBehind(t *testing.T) {
	p := NewPoint(100, 50).Behind(10, 0)
	if !p.Equals(NewPoint(90, 50)) {
		t.Fatalf("expected (90, 50) and got %v", p)
	}

	p = NewPoint(100, 50).Behind(10, math.Pi)
	if math.Abs(p.X-110) > 1e-9 || math.Abs(p.Y-50) > 1e-9 {
		t.Fatalf("expected (110, 50) and got %v", p)
	}
}

func TestTranslate(t *testing.T) {
	start := NewPoint(1.5, 5.3)
	p2 := start.Translate(-3.5, -2.3)

	if p2.X != -2 || math.Abs(p2.Y-3) > 1e-9 {
		t.Fatalf("expected resulting point to be (-2, 3), got %+v", p2)
	}
	if start.X != 1.5 {
		t.Fatal("expected Translate to leave the receiver untouched")
	}
}
