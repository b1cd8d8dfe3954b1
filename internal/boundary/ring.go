package boundary

import (
	"github.com/paulmach/orb"
)

// AssembleRing closes the accumulated coordinate sequence into a polygon
// ring and enforces counter-clockwise exterior winding.
//
// If the first and last points differ, a copy of the first point is
// appended to close the ring. Rings with fewer than 4 points after closure
// are rejected.
func AssembleRing(coords []orb.Point) (orb.Ring, error) {
	if len(coords) == 0 {
		return nil, &ErrDegeneratePolygon{Points: 0}
	}

	ring := make(orb.Ring, len(coords), len(coords)+1)
	copy(ring, coords)
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}

	if len(ring) < 4 {
		return nil, &ErrDegeneratePolygon{Points: len(ring)}
	}

	return orientCCW(ring), nil
}

// orientCCW reverses the ring in place when it is wound clockwise, so the
// exterior ring follows the counter-clockwise convention. Applying it to an
// already counter-clockwise ring is a no-op.
func orientCCW(ring orb.Ring) orb.Ring {
	if ring.Orientation() == orb.CW {
		ring.Reverse()
	}
	return ring
}
