// Package airspace converts published airspace boundary descriptions into
// closed, validated polygon rings.
//
// Aeronautical publications describe airspace boundaries as an ordered list
// of segments: point lists in degrees-minutes-seconds notation, arcs around
// a centre point, and full circles. This package resolves those descriptions
// into counter-clockwise polygon rings, validates them, and repairs
// self-intersecting geometry.
//
// # Basic Usage
//
//	converter := airspace.NewConverter()
//	feature, err := converter.Convert(airspace.Airspace{
//	    ID:      "EHRD CTR",
//	    Type:    "CTR",
//	    Class:   "C",
//	    Ceiling: "3000 FT AMSL",
//	    Floor:   "GND",
//	    Segments: []airspace.BoundarySegment{
//	        airspace.LineSegment{Points: []string{
//	            "515710N 0041953E",
//	            "520052N 0043131E",
//	        }},
//	        airspace.ArcSegment{
//	            Clockwise: true,
//	            Radius:    "8 NM",
//	            Centre:    "515643N 0042622E",
//	            To:        "515710N 0041953E",
//	        },
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%s covers %+v\n", feature.Airspace.ID, feature.Bound())
//
// # Validation and Repair
//
// Converted rings are checked for simplicity and non-zero area. Published
// boundaries are frequently sloppy: duplicated points, zero-width spikes
// where a boundary runs out and doubles back, and genuinely self-crossing
// outlines. By default invalid rings are repaired automatically; set
// ConvertOptions.Repair to false to get an error carrying a witness point
// of the self-intersection instead:
//
//	_, err := converter.ConvertWithOptions(a, airspace.ConvertOptions{
//	    GeometryDetail: 100,
//	    Validate:       true,
//	    Repair:         false,
//	})
//
// # Batch Conversion
//
// Whole airspace files convert in parallel with ConvertAll:
//
//	features, errs := airspace.ConvertAll(converter, airspaces,
//	    airspace.DefaultBatchOptions())
//
// # Spatial Queries
//
// Converted features can be indexed for region queries:
//
//	idx := airspace.BuildIndex(features)
//	hits := idx.Query(viewport, airspace.QueryOptions{
//	    Types: []string{"CTR", "TMA"},
//	})
//
// # Export
//
// Features marshal to GeoJSON via ToGeoJSON and FeatureCollection, and
// convert to go-geom polygons via GeomPolygon for WKB/PostGIS interop.
package airspace
