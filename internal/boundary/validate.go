package boundary

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Report is the result of validating a ring.
type Report struct {
	// Valid is true when the ring is simple and encloses a single
	// non-degenerate area.
	Valid bool
	// Simple is true when no two non-adjacent edges of the ring intersect.
	Simple bool
	// SelfIntersection is a witness point where two edges cross. Set only
	// when the ring is not simple.
	SelfIntersection *orb.Point
}

// minRingArea is the planar area in squared degrees below which a ring is
// considered degenerate.
const minRingArea = 1e-12

// Validate reports whether a ring is simple and valid. It is read-only and
// drives both acceptance gating and the repair pipeline's branch logic.
func Validate(ring orb.Ring) Report {
	if witness, _, _, found := firstCrossing(ring); found {
		return Report{Simple: false, Valid: false, SelfIntersection: &witness}
	}
	if len(ring) < 4 || math.Abs(planar.Area(ring)) < minRingArea {
		return Report{Simple: true, Valid: false}
	}
	return Report{Simple: true, Valid: true}
}

// firstCrossing scans all non-adjacent edge pairs of a closed ring and
// returns the first crossing found, with the indices of the two crossing
// edges. Scan order is deterministic: increasing first-edge index, then
// second. Zero-length edges are skipped.
func firstCrossing(ring orb.Ring) (orb.Point, int, int, bool) {
	n := len(ring) - 1 // the closing point duplicates the first
	for i := 0; i < n; i++ {
		if ring[i] == ring[i+1] {
			continue
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // first and last edges share the closure vertex
			}
			if ring[j] == ring[j+1] {
				continue
			}
			if p, ok := segmentIntersection(ring[i], ring[i+1], ring[j], ring[j+1]); ok {
				return p, i, j, true
			}
		}
	}
	return orb.Point{}, 0, 0, false
}

const intersectEpsilon = 1e-12

// segmentIntersection returns the crossing point of two closed segments, if
// any. Collinear segments that overlap in more than a single point report
// the midpoint of the shared extent.
func segmentIntersection(a1, a2, b1, b2 orb.Point) (orb.Point, bool) {
	p := r2.Point{X: a1[0], Y: a1[1]}
	r := r2.Point{X: a2[0], Y: a2[1]}.Sub(p)
	q := r2.Point{X: b1[0], Y: b1[1]}
	s := r2.Point{X: b2[0], Y: b2[1]}.Sub(q)

	qp := q.Sub(p)
	denom := r.Cross(s)

	if math.Abs(denom) < intersectEpsilon {
		if math.Abs(qp.Cross(r)) > intersectEpsilon {
			return orb.Point{}, false // parallel, not collinear
		}
		return collinearOverlap(p, r, qp, s)
	}

	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < -intersectEpsilon || t > 1+intersectEpsilon ||
		u < -intersectEpsilon || u > 1+intersectEpsilon {
		return orb.Point{}, false
	}

	x := p.Add(r.Mul(t))
	return orb.Point{x.X, x.Y}, true
}

// collinearOverlap projects the second segment onto the first and reports
// the midpoint of the overlapping extent, if the segments share one.
func collinearOverlap(p, r, qp, s r2.Point) (orb.Point, bool) {
	rr := r.Dot(r)
	if rr < intersectEpsilon {
		return orb.Point{}, false
	}

	t0 := qp.Dot(r) / rr
	t1 := qp.Add(s).Dot(r) / rr
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	lo := math.Max(t0, 0)
	hi := math.Min(t1, 1)
	if lo > hi+intersectEpsilon {
		return orb.Point{}, false
	}

	x := p.Add(r.Mul((lo + hi) / 2))
	return orb.Point{x.X, x.Y}, true
}
