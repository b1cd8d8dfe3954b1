package airspace

import (
	"errors"
	"testing"
)

func TestParseVerticalLimit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  VerticalLimit
	}{
		{"flight level", "FL 95", VerticalLimit{Value: 95, Unit: UnitFlightLevel, Reference: ReferenceSTD}},
		{"flight level no space", "FL660", VerticalLimit{Value: 660, Unit: UnitFlightLevel, Reference: ReferenceSTD}},
		{"feet amsl", "2500 FT AMSL", VerticalLimit{Value: 2500, Unit: UnitFeet, Reference: ReferenceMSL}},
		{"feet msl", "4500 FT MSL", VerticalLimit{Value: 4500, Unit: UnitFeet, Reference: ReferenceMSL}},
		{"feet agl", "1000 FT AGL", VerticalLimit{Value: 1000, Unit: UnitFeet, Reference: ReferenceAGL}},
		{"feet no datum", "3000 FT", VerticalLimit{Value: 3000, Unit: UnitFeet, Reference: ReferenceMSL}},
		{"short feet unit", "1500 F AGL", VerticalLimit{Value: 1500, Unit: UnitFeet, Reference: ReferenceAGL}},
		{"meters gnd", "300 M GND", VerticalLimit{Value: 300, Unit: UnitMeters, Reference: ReferenceAGL}},
		{"ground", "GND", VerticalLimit{Surface: true, Unit: UnitFeet, Reference: ReferenceAGL}},
		{"surface", "SFC", VerticalLimit{Surface: true, Unit: UnitFeet, Reference: ReferenceAGL}},
		{"unlimited", "UNL", VerticalLimit{Unlimited: true, Unit: UnitFlightLevel, Reference: ReferenceSTD}},
		{"unlimited long", "UNLIMITED", VerticalLimit{Unlimited: true, Unit: UnitFlightLevel, Reference: ReferenceSTD}},
		{"lowercase", "fl 45", VerticalLimit{Value: 45, Unit: UnitFlightLevel, Reference: ReferenceSTD}},
		{"padded", "  1000 FT AGL  ", VerticalLimit{Value: 1000, Unit: UnitFeet, Reference: ReferenceAGL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVerticalLimit(tt.input)
			if err != nil {
				t.Fatalf("ParseVerticalLimit(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVerticalLimit(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseVerticalLimitMalformed(t *testing.T) {
	inputs := []string{
		"",
		"see NOTAM",
		"FL",
		"FL 1234",
		"1000 KM",
		"FT 1000",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseVerticalLimit(input)
			if err == nil {
				t.Fatalf("ParseVerticalLimit(%q) should fail", input)
			}
			var malformed *ErrMalformedVerticalLimit
			if !errors.As(err, &malformed) {
				t.Fatalf("expected ErrMalformedVerticalLimit, got %T: %v", err, err)
			}
			if malformed.Value != input {
				t.Errorf("error should carry the raw value %q, got %q", input, malformed.Value)
			}
		})
	}
}

func TestVerticalLimitString(t *testing.T) {
	tests := []struct {
		limit VerticalLimit
		want  string
	}{
		{VerticalLimit{Value: 95, Unit: UnitFlightLevel, Reference: ReferenceSTD}, "FL 95"},
		{VerticalLimit{Value: 2500, Unit: UnitFeet, Reference: ReferenceMSL}, "2500 FT AMSL"},
		{VerticalLimit{Value: 300, Unit: UnitMeters, Reference: ReferenceAGL}, "300 M AGL"},
		{VerticalLimit{Surface: true, Unit: UnitFeet, Reference: ReferenceAGL}, "GND"},
		{VerticalLimit{Unlimited: true, Unit: UnitFlightLevel, Reference: ReferenceSTD}, "UNLTD"},
	}

	for _, tt := range tests {
		if got := tt.limit.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
