package boundary

import (
	"fmt"

	"github.com/paulmach/orb"
)

// ErrMalformedCoordinate indicates a coordinate token that fails the
// DMS pattern or its degree/minute/second range checks.
type ErrMalformedCoordinate struct {
	Token  string
	Reason string
}

func (e *ErrMalformedCoordinate) Error() string {
	return fmt.Sprintf("malformed coordinate %q: %s", e.Token, e.Reason)
}

// ErrEmptyLineSegment indicates a line segment with no points.
type ErrEmptyLineSegment struct {
	Index int
}

func (e *ErrEmptyLineSegment) Error() string {
	return fmt.Sprintf("segment %d: line segment has no points", e.Index)
}

// ErrMissingPrecedingPoint indicates an arc segment with no prior boundary
// point to serve as the arc's starting point.
type ErrMissingPrecedingPoint struct {
	Index int
}

func (e *ErrMissingPrecedingPoint) Error() string {
	return fmt.Sprintf("segment %d: arc requires a preceding boundary point", e.Index)
}

// ErrInvalidArcParameter indicates an arc or circle parameter that fails
// validation, naming the offending field.
type ErrInvalidArcParameter struct {
	Field string
	Value string
}

func (e *ErrInvalidArcParameter) Error() string {
	return fmt.Sprintf("invalid arc parameter %s: %q", e.Field, e.Value)
}

// ErrUnsupportedSegment indicates a boundary segment outside the supported
// line/arc/circle set.
type ErrUnsupportedSegment struct {
	Index int
}

func (e *ErrUnsupportedSegment) Error() string {
	return fmt.Sprintf("segment %d: unsupported boundary segment type", e.Index)
}

// ErrDegeneratePolygon indicates a ring with fewer than 4 points after
// closure.
type ErrDegeneratePolygon struct {
	Points int
}

func (e *ErrDegeneratePolygon) Error() string {
	return fmt.Sprintf("degenerate polygon: %d points after closure, need at least 4", e.Points)
}

// ErrInvalidGeometry indicates a ring that failed validation while repair
// was disabled. Witness is a point where two edges cross, when one was
// found.
type ErrInvalidGeometry struct {
	Witness *orb.Point
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Witness != nil {
		return fmt.Sprintf("invalid geometry: self-intersection near [%f, %f]",
			e.Witness[0], e.Witness[1])
	}
	return "invalid geometry: ring encloses no valid area"
}

// ErrUnrepairableGeometry indicates that the repair pipeline was exhausted
// without producing a valid ring.
type ErrUnrepairableGeometry struct {
	ID       string
	Sequence int
}

func (e *ErrUnrepairableGeometry) Error() string {
	return fmt.Sprintf("airspace %s (sequence %d): geometry could not be repaired",
		e.ID, e.Sequence)
}
