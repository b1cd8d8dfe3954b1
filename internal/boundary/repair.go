package boundary

import (
	"errors"
	"math"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// dedupeTolerance is the distance in meters under which two boundary
// points are collapsed into one.
const dedupeTolerance = 1.0

const earthRadiusMeters = 6371008.8

// Repair runs the deterministic repair chain over a ring that failed
// validation: near-coincident point deduplication, antiparallel spike
// removal, split-and-select unkinking, and finally the bounding-box
// envelope. Stages run in fixed order and the chain stops at the first
// stage whose output passes Validate.
//
// The result is always a ring that passes Validate, or an
// ErrUnrepairableGeometry naming the originating boundary.
func Repair(ring orb.Ring, id string, sequence int) (orb.Ring, error) {
	points := openRing(ring)

	points = dedupe(points, dedupeTolerance)
	if repaired, ok := tryClose(points); ok {
		return repaired, nil
	}

	points = removeOverlaps(points)
	if repaired, ok := tryClose(points); ok {
		return repaired, nil
	}

	if repaired, err := splitAndSelect(points); err == nil {
		return repaired, nil
	}

	repaired, err := envelopeRing(points)
	if err != nil {
		return nil, &ErrUnrepairableGeometry{ID: id, Sequence: sequence}
	}
	if report := Validate(repaired); !report.Valid {
		return nil, &ErrUnrepairableGeometry{ID: id, Sequence: sequence}
	}
	return repaired, nil
}

// openRing returns the ring's point sequence without the closing duplicate
// of the first point. Repair stages operate on the open sequence and
// re-close it afterwards.
func openRing(ring orb.Ring) []orb.Point {
	points := make([]orb.Point, len(ring))
	copy(points, ring)
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	return points
}

// tryClose re-closes a cleaned point sequence and reports whether the
// resulting ring passes validation.
func tryClose(points []orb.Point) (orb.Ring, bool) {
	ring, err := AssembleRing(points)
	if err != nil {
		return nil, false
	}
	if report := Validate(ring); !report.Valid {
		return nil, false
	}
	return ring, true
}

// dedupe drops every point that lies within tolerance meters of a
// previously retained point, scanning in the original order. Running it on
// its own output is a no-op.
func dedupe(points []orb.Point, tolerance float64) []orb.Point {
	retained := make([]orb.Point, 0, len(points))
	for _, point := range points {
		if !nearAny(retained, point, tolerance) {
			retained = append(retained, point)
		}
	}
	return retained
}

func nearAny(points []orb.Point, point orb.Point, tolerance float64) bool {
	ll := s2.LatLngFromDegrees(point[1], point[0])
	for _, q := range points {
		d := s2.LatLngFromDegrees(q[1], q[0]).Distance(ll)
		if d.Radians()*earthRadiusMeters <= tolerance {
			return true
		}
	}
	return false
}

// removeOverlaps drops every point whose outgoing edge heads exactly back
// along the incoming edge, stripping back-and-forth spikes that register as
// self-intersections. Bearings are snapped to the nearest whole degree
// before the comparison; truncating instead would misclassify turns near
// the half-degree boundary.
func removeOverlaps(points []orb.Point) []orb.Point {
	if len(points) < 3 {
		return points
	}

	result := make([]orb.Point, 0, len(points))
	result = append(result, points[0])
	for i := 1; i < len(points)-1; i++ {
		prev := result[len(result)-1]
		in := snappedBearing(prev, points[i])
		out := snappedBearing(points[i], points[i+1])
		if (in+180)%360 == out {
			continue
		}
		result = append(result, points[i])
	}
	result = append(result, points[len(points)-1])
	return result
}

// snappedBearing is the great-circle bearing between two points snapped to
// the nearest whole degree in [0, 360).
func snappedBearing(from, to orb.Point) int {
	return int(math.Round(normalizeBearing(geo.Bearing(from, to)))) % 360
}

// splitAndSelect re-closes the cleaned sequence, decomposes it into its
// maximal set of simple sub-polygons, and keeps the sub-polygon with the
// largest enclosed area, discarding the rest as kinks.
func splitAndSelect(points []orb.Point) (orb.Ring, error) {
	ring, err := AssembleRing(points)
	if err != nil {
		return nil, err
	}

	parts, err := unkink(ring)
	if err != nil {
		return nil, err
	}

	var best orb.Ring
	bestArea := 0.0
	for _, part := range parts {
		if area := math.Abs(planar.Area(part)); area > bestArea {
			best, bestArea = part, area
		}
	}
	if best == nil || bestArea < minRingArea {
		return nil, errors.New("no sub-polygon with non-degenerate area")
	}

	repaired := orientCCW(best)
	if report := Validate(repaired); !report.Valid {
		return nil, errors.New("largest sub-polygon still invalid")
	}
	return repaired, nil
}

// unkink decomposes a closed ring into simple sub-rings by splitting at
// each self-intersection. Every split removes one crossing, so the number
// of rounds is bounded by the crossing count; the guard caps pathological
// inputs.
func unkink(ring orb.Ring) ([]orb.Ring, error) {
	queue := []orb.Ring{ring}
	var simple []orb.Ring

	for guard := 4 * len(ring); len(queue) > 0 && guard > 0; guard-- {
		current := queue[0]
		queue = queue[1:]
		if len(current) < 4 {
			continue
		}

		x, i, j, found := firstCrossing(current)
		if !found {
			simple = append(simple, current)
			continue
		}

		a, b := splitAt(current, i, j, x)
		queue = append(queue, a, b)
	}

	if len(simple) == 0 {
		return nil, errors.New("ring cannot be decomposed into simple parts")
	}
	return simple, nil
}

// splitAt splits a closed ring at the crossing point x of edges i and j
// (i < j) into two closed sub-rings: the outer ring with the kink excised,
// and the kink itself.
func splitAt(ring orb.Ring, i, j int, x orb.Point) (orb.Ring, orb.Ring) {
	outer := make(orb.Ring, 0, len(ring))
	outer = append(outer, ring[:i+1]...)
	outer = append(outer, x)
	outer = append(outer, ring[j+1:]...)

	kink := make(orb.Ring, 0, j-i+2)
	kink = append(kink, x)
	kink = append(kink, ring[i+1:j+1]...)
	kink = append(kink, x)

	return outer, kink
}

// envelopeRing computes the minimal axis-aligned bounding rectangle over
// the cleaned points, as a counter-clockwise ring. Points spanning no area
// (all coincident or collinear on a meridian or parallel) have a degenerate
// envelope and are rejected.
func envelopeRing(points []orb.Point) (orb.Ring, error) {
	if len(points) == 0 {
		return nil, errors.New("no points to compute envelope over")
	}

	bound := orb.MultiPoint(points).Bound()
	if bound.Min[0] == bound.Max[0] || bound.Min[1] == bound.Max[1] {
		return nil, errors.New("envelope has no area")
	}

	return orientCCW(bound.ToRing()), nil
}
