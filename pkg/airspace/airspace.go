package airspace

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/airspace/internal/boundary"
)

// Converter turns airspace boundary descriptions into closed polygon rings.
//
// Create a converter with NewConverter and use Convert or
// ConvertWithOptions to resolve boundaries.
type Converter interface {
	// Convert resolves one airspace boundary into a Feature using default
	// options.
	//
	// Returns an error if the boundary cannot be resolved or its geometry
	// cannot be validated or repaired.
	Convert(airspace Airspace) (*Feature, error)

	// ConvertWithOptions converts with custom options.
	//
	// Use ConvertOptions to control tessellation detail, validation and
	// repair behavior.
	ConvertWithOptions(airspace Airspace, opts ConvertOptions) (*Feature, error)
}

// NewConverter creates a new boundary converter with default settings.
//
// Example:
//
//	converter := airspace.NewConverter()
//	feature, err := converter.Convert(ctr)
func NewConverter() Converter {
	return &converter{}
}

type converter struct{}

// Airspace describes one airspace to convert: identifying metadata plus
// the ordered boundary segment list. The ID and Sequence are opaque to the
// converter and only annotate error messages.
type Airspace struct {
	// ID is the airspace identifier, e.g. "EHAM CTR".
	ID string
	// Sequence distinguishes multiple boundaries published under one ID.
	Sequence int
	// Name is the published airspace name.
	Name string
	// Type is the raw airspace type code, e.g. "CTR", "TMA", "R".
	Type string
	// Class is the ICAO airspace class letter, e.g. "C".
	Class string
	// Ceiling and Floor are the raw vertical limit strings, e.g. "FL 95"
	// and "GND".
	Ceiling string
	Floor   string
	// Segments is the ordered boundary segment list.
	Segments []BoundarySegment
}

// BoundarySegment is the closed set of boundary segment kinds.
type BoundarySegment interface {
	boundarySegment()
}

// LineSegment joins its points with straight edges.
type LineSegment struct {
	// Points are "DDMMSS[N|S] DDDMMSS[E|W]" tokens, in order.
	Points []string
}

// ArcSegment sweeps from the previous boundary point to To around Centre.
type ArcSegment struct {
	// Clockwise selects the winding direction of the arc.
	Clockwise bool
	// Radius is in nautical miles, numeric with an optional "NM" suffix.
	Radius string
	Centre string
	To     string
}

// CircleSegment is a full circle around Centre.
type CircleSegment struct {
	Radius string
	Centre string
}

func (LineSegment) boundarySegment()   {}
func (ArcSegment) boundarySegment()    {}
func (CircleSegment) boundarySegment() {}

// Feature is a converted airspace: the source metadata plus the closed,
// counter-clockwise polygon ring.
type Feature struct {
	Airspace Airspace
	// Ring is the exterior polygon ring: closed, at least 4 points,
	// counter-clockwise.
	Ring orb.Ring

	// TypeName is the canonical name for Airspace.Type, when the code is
	// known.
	TypeName string
	// Upper and Lower are the parsed vertical limits, when parseable.
	Upper *VerticalLimit
	Lower *VerticalLimit
}

// Bound returns the feature's bounding box.
func (f *Feature) Bound() orb.Bound {
	return f.Ring.Bound()
}

func (c *converter) Convert(a Airspace) (*Feature, error) {
	return c.ConvertWithOptions(a, DefaultConvertOptions())
}

func (c *converter) ConvertWithOptions(a Airspace, opts ConvertOptions) (*Feature, error) {
	segments := make([]boundary.Segment, len(a.Segments))
	for i, s := range a.Segments {
		segments[i] = toBoundarySegment(s)
	}

	ctx := boundary.NewContext(a.ID, a.Sequence)
	coords, err := ctx.Resolve(segments, opts.GeometryDetail)
	if err != nil {
		return nil, convertError(a, err)
	}

	ring, err := boundary.AssembleRing(coords)
	if err != nil {
		return nil, convertError(a, err)
	}

	if opts.Validate {
		if report := boundary.Validate(ring); !report.Valid {
			if !opts.Repair {
				return nil, convertError(a, &boundary.ErrInvalidGeometry{
					Witness: report.SelfIntersection,
				})
			}
			ring, err = boundary.Repair(ring, a.ID, a.Sequence)
			if err != nil {
				return nil, convertError(a, err)
			}
		}
	}

	feature := &Feature{Airspace: a, Ring: ring}
	if name, err := TypeName(a.Type); err == nil {
		feature.TypeName = name
	}
	if limit, err := ParseVerticalLimit(a.Ceiling); err == nil {
		feature.Upper = &limit
	}
	if limit, err := ParseVerticalLimit(a.Floor); err == nil {
		feature.Lower = &limit
	}
	return feature, nil
}

// toBoundarySegment converts a public segment to its internal counterpart.
// The marker method keeps the union closed, so the switch is exhaustive; a
// nil result is reported by the resolver as an unsupported segment.
func toBoundarySegment(s BoundarySegment) boundary.Segment {
	switch s := s.(type) {
	case LineSegment:
		return boundary.Line{Points: s.Points}
	case ArcSegment:
		direction := boundary.CounterClockwise
		if s.Clockwise {
			direction = boundary.Clockwise
		}
		return boundary.Arc{
			Direction: direction,
			Radius:    s.Radius,
			Centre:    s.Centre,
			To:        s.To,
		}
	case CircleSegment:
		return boundary.Circle{Radius: s.Radius, Centre: s.Centre}
	default:
		return nil
	}
}

func convertError(a Airspace, err error) error {
	return fmt.Errorf("airspace %s (sequence %d): %w", a.ID, a.Sequence, err)
}
