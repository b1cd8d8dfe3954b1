package boundary

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func TestDedupe(t *testing.T) {
	// The second point is roughly 0.55 meters east of the first.
	points := []orb.Point{
		{0, 0},
		{0.000005, 0},
		{0.001, 0},
		{0.001, 0.001},
	}

	deduped := dedupe(points, dedupeTolerance)
	if len(deduped) != 3 {
		t.Fatalf("expected 3 points after dedupe, got %d", len(deduped))
	}
	if deduped[0] != points[0] {
		t.Error("the earlier of two near-coincident points should be retained")
	}
}

func TestDedupeIdempotent(t *testing.T) {
	points := []orb.Point{
		{0, 0},
		{0.000005, 0},
		{0.001, 0},
		{0.0010000001, 0},
		{0.001, 0.001},
	}

	once := dedupe(points, dedupeTolerance)
	twice := dedupe(once, dedupeTolerance)

	if len(once) != len(twice) {
		t.Fatalf("dedupe is not idempotent: %d vs %d points", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("point %d changed on second pass: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestRemoveOverlaps(t *testing.T) {
	// The path runs east past the target and doubles back: the middle
	// point's outgoing bearing is the exact reverse of its incoming one.
	points := []orb.Point{
		{0, 0},
		{0.002, 0},
		{0.001, 0},
		{0.001, 0.001},
	}

	cleaned := removeOverlaps(points)
	if len(cleaned) != 3 {
		t.Fatalf("expected 3 points after overlap removal, got %d", len(cleaned))
	}
	if cleaned[1] != (orb.Point{0.001, 0}) {
		t.Errorf("expected spike tip to be dropped, kept %v", cleaned[1])
	}
}

func TestRemoveOverlapsKeepsCleanPath(t *testing.T) {
	points := []orb.Point{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
	}

	cleaned := removeOverlaps(points)
	if len(cleaned) != len(points) {
		t.Errorf("clean path should be unchanged, got %d of %d points",
			len(cleaned), len(points))
	}
}

func TestRepairBowtieKeepsLargerLobe(t *testing.T) {
	// Self-crossing ring with two lobes of area 1.125 and 0.125; the
	// crossing is at (0.75, 0.75).
	ring := orb.Ring{
		{0, 0}, {1, 1}, {1, 0}, {0, 3}, {0, 0},
	}
	if Validate(ring).Valid {
		t.Fatal("test ring should be invalid before repair")
	}

	repaired, err := Repair(ring, "EHTEST", 1)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}

	report := Validate(repaired)
	if !report.Valid || !report.Simple {
		t.Fatalf("repaired ring should be valid and simple, got %+v", report)
	}

	area := math.Abs(planar.Area(repaired))
	if math.Abs(area-1.125) > 1e-6 {
		t.Errorf("expected the larger lobe (area 1.125), got area %f", area)
	}
	if repaired.Orientation() != orb.CCW {
		t.Error("repaired ring should be counter-clockwise")
	}
}

func TestRepairSpikeRing(t *testing.T) {
	// A square with a zero-width spike on its top edge.
	ring := orb.Ring{
		{0, 0}, {0.002, 0}, {0.002, 0.002},
		{0.001, 0.002}, {0.001, 0.003}, {0.001, 0.002},
		{0, 0.002}, {0, 0},
	}
	if Validate(ring).Valid {
		t.Fatal("spiked ring should be invalid before repair")
	}

	repaired, err := Repair(ring, "EHTEST", 1)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	if report := Validate(repaired); !report.Valid {
		t.Errorf("repaired ring should be valid, got %+v", report)
	}
}

func TestRepairCollinearFallsBackToEnvelope(t *testing.T) {
	// Simple but zero-area: unkinking cannot help, so the envelope is the
	// last resort. Points span a diagonal, so the envelope is the 2x2 box.
	ring := orb.Ring{
		{0, 0}, {1, 1}, {2, 2}, {0, 0},
	}

	repaired, err := Repair(ring, "EHTEST", 1)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}

	report := Validate(repaired)
	if !report.Valid {
		t.Fatalf("envelope should be valid, got %+v", report)
	}
	area := math.Abs(planar.Area(repaired))
	if math.Abs(area-4.0) > 1e-9 {
		t.Errorf("expected envelope area 4, got %f", area)
	}
}

func TestRepairUnrepairable(t *testing.T) {
	// All points coincide after deduplication; even the envelope has no
	// area left to offer.
	ring := orb.Ring{
		{0, 0}, {0.000001, 0}, {0, 0.000001}, {0, 0},
	}

	_, err := Repair(ring, "LFBAD", 7)
	if err == nil {
		t.Fatal("expected repair to fail")
	}
	var unrepairable *ErrUnrepairableGeometry
	if !errors.As(err, &unrepairable) {
		t.Fatalf("expected ErrUnrepairableGeometry, got %T: %v", err, err)
	}
	if unrepairable.ID != "LFBAD" || unrepairable.Sequence != 7 {
		t.Errorf("error should carry the boundary identifiers, got %+v", unrepairable)
	}
}

func TestUnkinkSimpleRingUntouched(t *testing.T) {
	ring := orb.Ring{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
	}

	parts, err := unkink(ring)
	if err != nil {
		t.Fatalf("unkink failed: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("simple ring should stay whole, got %d parts", len(parts))
	}
	if len(parts[0]) != len(ring) {
		t.Errorf("part should match input length %d, got %d", len(ring), len(parts[0]))
	}
}

func TestEnvelopeRing(t *testing.T) {
	points := []orb.Point{
		{-1, 2}, {3, -4}, {0, 0},
	}

	ring, err := envelopeRing(points)
	if err != nil {
		t.Fatalf("envelopeRing failed: %v", err)
	}
	if len(ring) != 5 {
		t.Fatalf("expected 5 envelope points, got %d", len(ring))
	}
	bound := ring.Bound()
	if bound.Min != (orb.Point{-1, -4}) || bound.Max != (orb.Point{3, 2}) {
		t.Errorf("unexpected envelope bound: %+v", bound)
	}
	if ring.Orientation() != orb.CCW {
		t.Error("envelope ring should be counter-clockwise")
	}
}
