package gml

import (
	"strconv"
	"strings"
)

// DefaultWrapWidth is the line width used when laying out posList text.
const DefaultWrapWidth = 200

// ShiftPos offsets the coordinate pair in a gml:pos text value. The first
// token is latitude, the second longitude. Values that do not parse are
// returned unchanged; tokens beyond the pair are dropped.
func ShiftPos(text string, dLat, dLon float64) string {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return text
	}
	lat, errLat := strconv.ParseFloat(parts[0], 64)
	lon, errLon := strconv.ParseFloat(parts[1], 64)
	if errLat != nil || errLon != nil {
		return text
	}
	return FormatCoordinate(lat+dLat) + " " + FormatCoordinate(lon+dLon)
}

// ShiftPairs offsets the consecutive latitude/longitude pairs of a
// gml:posList text value and returns one "lat lon" string per pair.
// Pairs that do not parse pass through verbatim; a trailing unpaired token
// is dropped.
func ShiftPairs(text string, dLat, dLon float64) []string {
	values := strings.Fields(text)
	pairs := make([]string, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		lat, errLat := strconv.ParseFloat(values[i], 64)
		lon, errLon := strconv.ParseFloat(values[i+1], 64)
		if errLat != nil || errLon != nil {
			pairs = append(pairs, values[i]+" "+values[i+1])
			continue
		}
		pairs = append(pairs, FormatCoordinate(lat+dLat)+" "+FormatCoordinate(lon+dLon))
	}
	return pairs
}

// WrapPairs lays pairs out into lines no longer than width, joined with a
// single space and never splitting a pair. A pair longer than width gets a
// line of its own. Lines are joined with bare newlines; indentation is the
// serializer's concern.
func WrapPairs(pairs []string, width int) string {
	var lines []string
	current := ""
	for _, pair := range pairs {
		test := pair
		if current != "" {
			test = current + " " + pair
		}
		if len(test) > width && current != "" {
			lines = append(lines, current)
			current = pair
		} else {
			current = test
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}

// FormatCoordinate renders a coordinate value with the shortest
// representation that round-trips.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ValidCoordinate reports whether a latitude/longitude pair lies inside
// WGS-84 bounds.
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
