package airspace

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ToGeoJSON converts the feature to a GeoJSON feature with a Polygon
// geometry and the airspace metadata as properties.
//
// Properties always include "id" and "sequence"; the remaining fields are
// set only when the source airspace carries them.
func (f *Feature) ToGeoJSON() *geojson.Feature {
	out := geojson.NewFeature(orb.Polygon{f.Ring})

	out.Properties["id"] = f.Airspace.ID
	out.Properties["sequence"] = f.Airspace.Sequence
	if f.Airspace.Name != "" {
		out.Properties["name"] = f.Airspace.Name
	}
	if f.Airspace.Type != "" {
		out.Properties["type"] = f.Airspace.Type
	}
	if f.TypeName != "" {
		out.Properties["typeName"] = f.TypeName
	}
	if f.Airspace.Class != "" {
		out.Properties["class"] = f.Airspace.Class
	}
	if f.Airspace.Ceiling != "" {
		out.Properties["ceiling"] = f.Airspace.Ceiling
	}
	if f.Airspace.Floor != "" {
		out.Properties["floor"] = f.Airspace.Floor
	}
	if f.Upper != nil {
		out.Properties["upper"] = f.Upper.String()
	}
	if f.Lower != nil {
		out.Properties["lower"] = f.Lower.String()
	}

	return out
}

// FeatureCollection bundles converted features into a GeoJSON feature
// collection, ready for Marshal.
func FeatureCollection(features []*Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, feature := range features {
		fc.Append(feature.ToGeoJSON())
	}
	return fc
}
