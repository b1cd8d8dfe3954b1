package boundary

// boundary.go - boundary segment model
// Segments are consumed strictly in the order given; each segment after the
// first continues from the last resolved point of the previous segment.

import (
	"regexp"
	"strconv"
	"strings"
)

// Direction is the winding direction of an arc segment.
type Direction int

const (
	Clockwise Direction = iota + 1
	CounterClockwise
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Segment is the closed set of boundary segment kinds. The resolver's
// dispatch is an exhaustive switch over these types; adding a new kind is a
// compile-time-checked extension point.
type Segment interface {
	segment()
}

// Line joins its boundary point tokens with straight edges.
type Line struct {
	// Points are "DDMMSS[N|S] DDDMMSS[E|W]" tokens, in order.
	Points []string
}

// Arc is a circular arc from the previous boundary point to To, swept
// around Centre at the given radius.
type Arc struct {
	Direction Direction
	Radius    string // nautical miles, numeric with optional "NM" suffix
	Centre    string // boundary point token
	To        string // boundary point token
}

// Circle is a full circle around Centre.
type Circle struct {
	Radius string
	Centre string
}

func (Line) segment()   {}
func (Arc) segment()    {}
func (Circle) segment() {}

// Radius tokens are a positive number in nautical miles with an optional
// unit suffix, e.g. "10", "4.5" or "10 NM".
var radiusPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*(?:NM)?$`)

// parseRadius converts a radius token in nautical miles to meters.
func parseRadius(token string) (float64, error) {
	m := radiusPattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, &ErrInvalidArcParameter{Field: "radius", Value: token}
	}
	nm, err := strconv.ParseFloat(m[1], 64)
	if err != nil || nm <= 0 {
		return 0, &ErrInvalidArcParameter{Field: "radius", Value: token}
	}
	return nm * metersPerNauticalMile, nil
}
