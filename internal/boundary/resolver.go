package boundary

import (
	"github.com/paulmach/orb"
)

// Context carries the transient state of one boundary conversion: the
// identifier used to annotate errors, the growing coordinate accumulator
// and the last resolved point.
//
// A Context is created fresh per boundary and discarded once the ring is
// produced or the conversion fails. Nothing is shared between contexts, so
// independent boundaries can be resolved concurrently.
type Context struct {
	ID       string
	Sequence int

	last   *orb.Point
	coords []orb.Point
}

// NewContext creates a conversion context for one boundary.
func NewContext(id string, sequence int) *Context {
	return &Context{ID: id, Sequence: sequence}
}

// Resolve walks the segment list in order and accumulates one continuous
// coordinate sequence. Each segment continues from the last point of the
// previous one; arc segments additionally require that a previous point
// exists. The detail parameter is the tessellation step count for arcs and
// circles (DefaultDetail when <= 0).
func (c *Context) Resolve(segments []Segment, detail int) ([]orb.Point, error) {
	if detail <= 0 {
		detail = DefaultDetail
	}

	for i, segment := range segments {
		switch s := segment.(type) {
		case Line:
			if err := c.resolveLine(i, s); err != nil {
				return nil, err
			}
		case Arc:
			if err := c.resolveArc(i, s, detail); err != nil {
				return nil, err
			}
		case Circle:
			if err := c.resolveCircle(i, s, detail); err != nil {
				return nil, err
			}
		default:
			return nil, &ErrUnsupportedSegment{Index: i}
		}
	}

	return c.coords, nil
}

// resolveLine decodes each point token in order and appends it.
func (c *Context) resolveLine(index int, line Line) error {
	if len(line.Points) == 0 {
		return &ErrEmptyLineSegment{Index: index}
	}
	for _, token := range line.Points {
		point, err := DecodeCoordinate(token)
		if err != nil {
			return err
		}
		c.append(point)
	}
	return nil
}

// resolveArc tessellates an arc from the current last point to the arc's
// "to" point and appends the result, excluding the duplicate of the last
// point itself.
func (c *Context) resolveArc(index int, arc Arc, detail int) error {
	if c.last == nil {
		return &ErrMissingPrecedingPoint{Index: index}
	}
	if arc.Direction != Clockwise && arc.Direction != CounterClockwise {
		return &ErrInvalidArcParameter{Field: "direction", Value: arc.Direction.String()}
	}
	radius, err := parseRadius(arc.Radius)
	if err != nil {
		return err
	}
	centre, err := DecodeCoordinate(arc.Centre)
	if err != nil {
		return err
	}
	to, err := DecodeCoordinate(arc.To)
	if err != nil {
		return err
	}

	points := tessellateArc(centre, *c.last, to, radius, arc.Direction, detail)
	for _, point := range points[1:] {
		c.append(point)
	}
	return nil
}

// resolveCircle tessellates a full circle and appends all of its points.
// Circles do not require a preceding point; the circle's own closing point
// becomes the new last point.
func (c *Context) resolveCircle(index int, circle Circle, detail int) error {
	radius, err := parseRadius(circle.Radius)
	if err != nil {
		return err
	}
	centre, err := DecodeCoordinate(circle.Centre)
	if err != nil {
		return err
	}

	for _, point := range tessellateCircle(centre, radius, detail) {
		c.append(point)
	}
	return nil
}

func (c *Context) append(point orb.Point) {
	c.coords = append(c.coords, point)
	p := point
	c.last = &p
}
