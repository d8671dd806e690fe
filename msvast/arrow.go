package msvast

import "fmt"

// ArrowKind is the closed set of message line and endpoint styles.
type ArrowKind int

const (
	SolidOpen ArrowKind = iota
	SolidClosed
	Cross
	// Point is the open async arrow.
	Point
	BiDirectionalSolid
	DottedOpen
	DottedClosed
	BiDirectionalDotted
)

var ArrowKinds = []ArrowKind{
	SolidOpen,
	SolidClosed,
	Cross,
	Point,
	BiDirectionalSolid,
	DottedOpen,
	DottedClosed,
	BiDirectionalDotted,
}

var arrowNames = map[ArrowKind]string{
	SolidOpen:           "solid_open",
	SolidClosed:         "solid_closed",
	Cross:               "cross",
	Point:               "point",
	BiDirectionalSolid:  "bidirectional_solid",
	DottedOpen:          "dotted_open",
	DottedClosed:        "dotted_closed",
	BiDirectionalDotted: "bidirectional_dotted",
}

var arrowTokens = map[ArrowKind]string{
	SolidOpen:           "->",
	SolidClosed:         "->>",
	Cross:               "-x",
	Point:               "-)",
	BiDirectionalSolid:  "<<->>",
	DottedOpen:          "-->",
	DottedClosed:        "-->>",
	BiDirectionalDotted: "<<-->>",
}

func (k ArrowKind) String() string {
	if s, ok := arrowNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ArrowKind(%d)", int(k))
}

// Token is the source syntax of the arrow.
func (k ArrowKind) Token() string {
	return arrowTokens[k]
}

func (k ArrowKind) MarshalText() ([]byte, error) {
	if _, ok := arrowNames[k]; !ok {
		return nil, fmt.Errorf("unknown arrow kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *ArrowKind) UnmarshalText(b []byte) error {
	for kind, name := range arrowNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown arrow kind %q", b)
}
