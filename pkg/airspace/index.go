package airspace

import (
	"sort"
	"strings"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// FeatureIndex provides fast spatial queries over converted airspace
// features.
//
// The index stores each feature's bounding box in an R-tree, so queries
// for "which airspaces cover this region" are O(log N) instead of a
// linear scan over every ring.
//
// Example:
//
//	idx := airspace.NewIndex()
//	for _, feature := range features {
//	    idx.Insert(feature)
//	}
//
//	// All airspaces touching the Amsterdam area
//	hits := idx.Query(orb.Bound{
//	    Min: orb.Point{4.5, 52.0},
//	    Max: orb.Point{5.1, 52.5},
//	}, airspace.QueryOptions{})
type FeatureIndex struct {
	features []*Feature
	rtree    *rtreego.Rtree
}

// QueryOptions controls spatial query filtering.
type QueryOptions struct {
	// Types filters by airspace type code, e.g. "CTR", "TMA".
	// If non-empty, only features with one of these types are returned.
	Types []string

	// Classes filters by ICAO airspace class letter.
	// If non-empty, only features with one of these classes are returned.
	Classes []string
}

type indexEntry struct {
	feature *Feature
}

// Bounds implements rtreego.Spatial.
func (e indexEntry) Bounds() rtreego.Rect {
	bound := e.feature.Bound()
	point := rtreego.Point{bound.Min[0], bound.Min[1]}
	lengths := []float64{
		bound.Max[0] - bound.Min[0],
		bound.Max[1] - bound.Min[1],
	}
	// rtreego rejects zero-extent rectangles.
	for i, length := range lengths {
		if length <= 0 {
			lengths[i] = 1e-9
		}
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// NewIndex creates an empty feature index.
func NewIndex() *FeatureIndex {
	return &FeatureIndex{
		rtree: rtreego.NewTree(2, 25, 50),
	}
}

// BuildIndex creates an index from already-converted features.
func BuildIndex(features []*Feature) *FeatureIndex {
	idx := NewIndex()
	for _, feature := range features {
		idx.Insert(feature)
	}
	return idx
}

// Insert adds a converted feature to the index.
func (idx *FeatureIndex) Insert(feature *Feature) {
	idx.features = append(idx.features, feature)
	idx.rtree.Insert(indexEntry{feature: feature})
}

// Query returns features whose bounding boxes intersect the given bound,
// smallest airspace first. Smaller airspaces are the more specific match
// for a point of interest, so CTRs sort before the TMAs and FIRs that
// contain them.
func (idx *FeatureIndex) Query(bound orb.Bound, opts QueryOptions) []*Feature {
	point := rtreego.Point{bound.Min[0], bound.Min[1]}
	lengths := []float64{
		bound.Max[0] - bound.Min[0],
		bound.Max[1] - bound.Min[1],
	}
	for i, length := range lengths {
		if length <= 0 {
			lengths[i] = 1e-9
		}
	}
	queryRect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return nil
	}

	var result []*Feature
	for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
		feature := spatial.(indexEntry).feature

		if len(opts.Types) > 0 && !matchesCode(feature.Airspace.Type, opts.Types) {
			continue
		}
		if len(opts.Classes) > 0 && !matchesCode(feature.Airspace.Class, opts.Classes) {
			continue
		}

		result = append(result, feature)
	}

	sort.Slice(result, func(i, j int) bool {
		ai := ringArea(result[i].Ring)
		aj := ringArea(result[j].Ring)
		if ai != aj {
			return ai < aj
		}
		return result[i].Airspace.ID < result[j].Airspace.ID
	})

	return result
}

// Count returns the number of features in the index.
func (idx *FeatureIndex) Count() int {
	return len(idx.features)
}

// Bound returns the union of all feature bounds in the index.
func (idx *FeatureIndex) Bound() orb.Bound {
	if len(idx.features) == 0 {
		return orb.Bound{}
	}

	bound := idx.features[0].Bound()
	for i := 1; i < len(idx.features); i++ {
		bound = bound.Union(idx.features[i].Bound())
	}
	return bound
}

// All returns all features in the index, in insertion order.
func (idx *FeatureIndex) All() []*Feature {
	return idx.features
}

func matchesCode(code string, wanted []string) bool {
	for _, w := range wanted {
		if strings.EqualFold(code, w) {
			return true
		}
	}
	return false
}

func ringArea(ring orb.Ring) float64 {
	area := planar.Area(ring)
	if area < 0 {
		return -area
	}
	return area
}
