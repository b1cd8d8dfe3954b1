package airspace

// ConvertOptions configures boundary conversion behavior.
type ConvertOptions struct {
	// GeometryDetail is the tessellation step count for arcs and circles:
	// an arc or circle is approximated by GeometryDetail+1 points.
	// Default is 100. Values <= 0 fall back to the default.
	GeometryDetail int

	// Validate runs the geometry validator on the assembled ring.
	// Default is true.
	//
	// When false, rings are returned as assembled, including
	// self-intersecting ones.
	Validate bool

	// Repair runs the repair pipeline when validation fails, instead of
	// returning an invalid-geometry error. Only consulted when Validate
	// is true. Default is true.
	Repair bool
}

// DefaultConvertOptions returns convert options with defaults.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		GeometryDetail: 100,
		Validate:       true,
		Repair:         true,
	}
}
