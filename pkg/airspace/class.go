package airspace

import (
	"fmt"
	"strings"
)

// Airspace type vocabulary.
// Codes follow the conventions of European AIP airspace publications.
var airspaceTypeNames = map[string]string{
	"FIR":     "Flight Information Region",
	"UIR":     "Upper Flight Information Region",
	"CTA":     "Control Area",
	"UTA":     "Upper Control Area",
	"TMA":     "Terminal Control Area",
	"CTR":     "Control Zone",
	"ATZ":     "Aerodrome Traffic Zone",
	"MATZ":    "Military Aerodrome Traffic Zone",
	"D":       "Danger Area",
	"P":       "Prohibited Area",
	"R":       "Restricted Area",
	"TSA":     "Temporary Segregated Area",
	"TRA":     "Temporary Reserved Area",
	"RMZ":     "Radio Mandatory Zone",
	"TMZ":     "Transponder Mandatory Zone",
	"ADIZ":    "Air Defense Identification Zone",
	"AWY":     "Airway",
	"GLIDING": "Gliding Area",
	"WAVE":    "Wave Window",
}

// ICAO airspace classes A through G, plus the marker used for airspaces
// published without a class.
var airspaceClasses = map[string]bool{
	"A": true, "B": true, "C": true, "D": true,
	"E": true, "F": true, "G": true,
	"UNCLASSIFIED": true,
}

// ErrUnknownAirspaceType indicates an airspace type code outside the
// vocabulary.
type ErrUnknownAirspaceType struct {
	Code string
}

func (e *ErrUnknownAirspaceType) Error() string {
	return fmt.Sprintf("unknown airspace type: %q", e.Code)
}

// TypeName resolves a raw airspace type code to its canonical name.
// Codes are matched case-insensitively.
func TypeName(code string) (string, error) {
	name, ok := airspaceTypeNames[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return "", &ErrUnknownAirspaceType{Code: code}
	}
	return name, nil
}

// KnownTypes returns all airspace type codes in the vocabulary.
func KnownTypes() []string {
	codes := make([]string, 0, len(airspaceTypeNames))
	for code := range airspaceTypeNames {
		codes = append(codes, code)
	}
	return codes
}

// ValidClass reports whether a string is a recognized ICAO airspace class.
func ValidClass(class string) bool {
	return airspaceClasses[strings.ToUpper(strings.TrimSpace(class))]
}
