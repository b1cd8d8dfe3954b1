package boundary

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const metersPerNauticalMile = 1852.0

// DefaultDetail is the default tessellation step count for arcs and
// circles. An arc or circle is approximated by DefaultDetail+1 points.
const DefaultDetail = 100

// normalizeBearing maps a bearing in degrees onto [0, 360).
func normalizeBearing(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// tessellateArc approximates the circular arc around centre from the "from"
// point to the "to" point with steps+1 points at equal angular increments.
//
// The arc is always generated clockwise internally: for counter-clockwise
// arcs the start and end bearings are swapped before interpolation and the
// generated sequence is reversed afterwards. The returned points therefore
// always run from "from" to "to" in the requested direction, with the last
// point coinciding with "to" up to the radius/distance mismatch of the
// source data.
func tessellateArc(centre, from, to orb.Point, radius float64, dir Direction, steps int) []orb.Point {
	if steps <= 0 {
		steps = DefaultDetail
	}

	start := normalizeBearing(geo.Bearing(centre, from))
	end := normalizeBearing(geo.Bearing(centre, to))
	if dir == CounterClockwise {
		start, end = end, start
	}

	// Clockwise sweep from start to end. A zero sweep means the start and
	// end bearings coincide, which reads as a full revolution.
	sweep := normalizeBearing(end - start)
	if sweep == 0 {
		sweep = 360
	}

	points := make([]orb.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		bearing := start + sweep*float64(i)/float64(steps)
		points = append(points, geo.PointAtBearingAndDistance(centre, bearing, radius))
	}

	if dir == CounterClockwise {
		reversePoints(points)
	}
	return points
}

// tessellateCircle approximates a full circle around centre as a closed
// polyline of steps+1 points, starting at bearing 0. The first and last
// points are identical.
func tessellateCircle(centre orb.Point, radius float64, steps int) []orb.Point {
	if steps <= 0 {
		steps = DefaultDetail
	}

	points := make([]orb.Point, 0, steps+1)
	for i := 0; i < steps; i++ {
		bearing := 360 * float64(i) / float64(steps)
		points = append(points, geo.PointAtBearingAndDistance(centre, bearing, radius))
	}
	points = append(points, points[0])
	return points
}

func reversePoints(points []orb.Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
