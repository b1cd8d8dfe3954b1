package airspace

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// AltitudeUnit is the unit of a vertical limit value.
type AltitudeUnit int

const (
	UnitFeet AltitudeUnit = iota + 1
	UnitFlightLevel
	UnitMeters
)

// String returns the publication abbreviation for the unit.
func (u AltitudeUnit) String() string {
	switch u {
	case UnitFeet:
		return "FT"
	case UnitFlightLevel:
		return "FL"
	case UnitMeters:
		return "M"
	default:
		return "?"
	}
}

// AltitudeReference is the datum a vertical limit is measured against.
type AltitudeReference int

const (
	// ReferenceMSL is height above mean sea level.
	ReferenceMSL AltitudeReference = iota + 1
	// ReferenceAGL is height above ground level.
	ReferenceAGL
	// ReferenceSTD is the standard pressure datum used by flight levels.
	ReferenceSTD
)

// String returns the publication abbreviation for the reference datum.
func (r AltitudeReference) String() string {
	switch r {
	case ReferenceMSL:
		return "AMSL"
	case ReferenceAGL:
		return "AGL"
	case ReferenceSTD:
		return "STD"
	default:
		return "?"
	}
}

// VerticalLimit is a parsed airspace ceiling or floor.
type VerticalLimit struct {
	// Value is the numeric altitude in Unit. Zero when Surface or
	// Unlimited is set.
	Value int
	Unit  AltitudeUnit
	// Reference is the measurement datum. Flight levels are always STD.
	Reference AltitudeReference
	// Surface marks a limit published as ground/surface level.
	Surface bool
	// Unlimited marks a limit published as unlimited.
	Unlimited bool
}

// String formats the limit the way publications print it.
func (v VerticalLimit) String() string {
	switch {
	case v.Surface:
		return "GND"
	case v.Unlimited:
		return "UNLTD"
	case v.Unit == UnitFlightLevel:
		return fmt.Sprintf("FL %d", v.Value)
	default:
		return fmt.Sprintf("%d %s %s", v.Value, v.Unit, v.Reference)
	}
}

// ErrMalformedVerticalLimit indicates a ceiling/floor string outside the
// recognized forms.
type ErrMalformedVerticalLimit struct {
	Value string
}

func (e *ErrMalformedVerticalLimit) Error() string {
	return fmt.Sprintf("malformed vertical limit: %q", e.Value)
}

// Recognized vertical limit forms: "FL 95", "2500 FT AMSL", "1000 FT AGL",
// "300 M GND", "GND", "SFC", "UNLTD".
var (
	flightLevelPattern = regexp.MustCompile(`^FL\s*([0-9]{1,3})$`)
	altitudePattern    = regexp.MustCompile(`^([0-9]+)\s*(FT|F|M)\s*(AMSL|MSL|AGL|GND|SFC)?$`)
	surfacePattern     = regexp.MustCompile(`^(GND|SFC)$`)
	unlimitedPattern   = regexp.MustCompile(`^(UNL|UNLTD|UNLIM|UNLIMITED)$`)
)

// ParseVerticalLimit parses a raw ceiling or floor string.
func ParseVerticalLimit(s string) (VerticalLimit, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))

	if surfacePattern.MatchString(trimmed) {
		return VerticalLimit{Surface: true, Unit: UnitFeet, Reference: ReferenceAGL}, nil
	}
	if unlimitedPattern.MatchString(trimmed) {
		return VerticalLimit{Unlimited: true, Unit: UnitFlightLevel, Reference: ReferenceSTD}, nil
	}
	if m := flightLevelPattern.FindStringSubmatch(trimmed); m != nil {
		level, _ := strconv.Atoi(m[1])
		return VerticalLimit{Value: level, Unit: UnitFlightLevel, Reference: ReferenceSTD}, nil
	}
	if m := altitudePattern.FindStringSubmatch(trimmed); m != nil {
		value, _ := strconv.Atoi(m[1])
		unit := UnitFeet
		if m[2] == "M" {
			unit = UnitMeters
		}
		reference := ReferenceMSL
		switch m[3] {
		case "AGL", "GND", "SFC":
			reference = ReferenceAGL
		}
		return VerticalLimit{Value: value, Unit: unit, Reference: reference}, nil
	}

	return VerticalLimit{}, &ErrMalformedVerticalLimit{Value: s}
}
