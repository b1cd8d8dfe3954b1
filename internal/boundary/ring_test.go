package boundary

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

func TestAssembleRingClosure(t *testing.T) {
	coords := []orb.Point{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
	}

	ring, err := AssembleRing(coords)
	if err != nil {
		t.Fatalf("AssembleRing failed: %v", err)
	}
	if len(ring) != 5 {
		t.Errorf("expected 5 points after closure, got %d", len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		t.Error("first point should equal last point")
	}
}

func TestAssembleRingAlreadyClosed(t *testing.T) {
	coords := []orb.Point{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
	}

	ring, err := AssembleRing(coords)
	if err != nil {
		t.Fatalf("AssembleRing failed: %v", err)
	}
	if len(ring) != 5 {
		t.Errorf("closed input should not grow, got %d points", len(ring))
	}
}

func TestAssembleRingDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		coords []orb.Point
	}{
		{"empty", nil},
		{"single point", []orb.Point{{0, 0}}},
		{"two points", []orb.Point{{0, 0}, {1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AssembleRing(tt.coords)
			if err == nil {
				t.Fatal("degenerate input should fail")
			}
			var degenerate *ErrDegeneratePolygon
			if !errors.As(err, &degenerate) {
				t.Errorf("expected ErrDegeneratePolygon, got %T: %v", err, err)
			}
		})
	}
}

func TestAssembleRingOrientation(t *testing.T) {
	// Clockwise input: (0,0) -> (0,1) -> (1,1) -> (1,0)
	clockwise := []orb.Point{
		{0, 0}, {0, 1}, {1, 1}, {1, 0},
	}

	ring, err := AssembleRing(clockwise)
	if err != nil {
		t.Fatalf("AssembleRing failed: %v", err)
	}
	if ring.Orientation() != orb.CCW {
		t.Error("exterior ring should be counter-clockwise")
	}
}

func TestAssembleRingOrientationIdempotent(t *testing.T) {
	coords := []orb.Point{
		{0, 0}, {0, 1}, {1, 1}, {1, 0},
	}

	once, err := AssembleRing(coords)
	if err != nil {
		t.Fatalf("AssembleRing failed: %v", err)
	}
	twice, err := AssembleRing([]orb.Point(once))
	if err != nil {
		t.Fatalf("AssembleRing failed: %v", err)
	}

	if len(once) != len(twice) {
		t.Fatalf("point count changed: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("point %d changed: %v vs %v", i, once[i], twice[i])
		}
	}
}
