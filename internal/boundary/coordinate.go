package boundary

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Coordinate tokens are fixed-width degrees-minutes-seconds values:
// latitude as DDMMSS followed by N or S, longitude as DDDMMSS followed by
// E or W. A boundary point token carries both halves separated by spaces,
// latitude first: "522137N 0044649E".
var (
	latPattern   = regexp.MustCompile(`^([0-9]{2})([0-9]{2})([0-9]{2})([NS])$`)
	lonPattern   = regexp.MustCompile(`^([0-9]{3})([0-9]{2})([0-9]{2})([EW])$`)
	pointPattern = regexp.MustCompile(`^([0-9]{6}[NS])\s+([0-9]{7}[EW])$`)
)

// DecodeCoordinate parses a boundary point token into a decimal-degree
// point in [longitude, latitude] order.
func DecodeCoordinate(token string) (orb.Point, error) {
	m := pointPattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return orb.Point{}, &ErrMalformedCoordinate{
			Token:  token,
			Reason: `expected "DDMMSS[N|S] DDDMMSS[E|W]"`,
		}
	}
	lat, err := DecodeLatitude(m[1])
	if err != nil {
		return orb.Point{}, err
	}
	lon, err := DecodeLongitude(m[2])
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{lon, lat}, nil
}

// DecodeLatitude parses a DDMMSS[N|S] token into decimal degrees.
// Southern latitudes are negative.
func DecodeLatitude(token string) (float64, error) {
	m := latPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, &ErrMalformedCoordinate{Token: token, Reason: `expected "DDMMSS[N|S]"`}
	}
	value, err := dmsToDegrees(m[1], m[2], m[3], 90)
	if err != nil {
		return 0, &ErrMalformedCoordinate{Token: token, Reason: err.Error()}
	}
	if m[4] == "S" {
		value = -value
	}
	return value, nil
}

// DecodeLongitude parses a DDDMMSS[E|W] token into decimal degrees.
// Western longitudes are negative.
func DecodeLongitude(token string) (float64, error) {
	m := lonPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, &ErrMalformedCoordinate{Token: token, Reason: `expected "DDDMMSS[E|W]"`}
	}
	value, err := dmsToDegrees(m[1], m[2], m[3], 180)
	if err != nil {
		return 0, &ErrMalformedCoordinate{Token: token, Reason: err.Error()}
	}
	if m[4] == "W" {
		value = -value
	}
	return value, nil
}

// dmsToDegrees converts degree/minute/second digit groups to decimal
// degrees, enforcing minutes/seconds < 60 and degrees <= maxDegrees.
func dmsToDegrees(degStr, minStr, secStr string, maxDegrees int) (float64, error) {
	deg, _ := strconv.Atoi(degStr)
	min, _ := strconv.Atoi(minStr)
	sec, _ := strconv.Atoi(secStr)

	if min >= 60 {
		return 0, &rangeError{field: "minutes", value: min, limit: 59}
	}
	if sec >= 60 {
		return 0, &rangeError{field: "seconds", value: sec, limit: 59}
	}
	if deg > maxDegrees {
		return 0, &rangeError{field: "degrees", value: deg, limit: maxDegrees}
	}

	value := float64(deg) + float64(min)/60.0 + float64(sec)/3600.0
	if value > float64(maxDegrees) {
		return 0, &rangeError{field: "degrees", value: deg, limit: maxDegrees}
	}
	return value, nil
}

type rangeError struct {
	field string
	value int
	limit int
}

func (e *rangeError) Error() string {
	return e.field + " out of range: " + strconv.Itoa(e.value) +
		" exceeds " + strconv.Itoa(e.limit)
}
