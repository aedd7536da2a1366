package multiply

// Offset is a grid displacement in decimal degrees.
type Offset struct {
	Lat float64
	Lon float64
}

const (
	// One nautical mile spans one minute of latitude.
	minutesPerDegree = 60.0

	// cos(52°), the latitude band of the reference dataset. Longitude
	// spacing uses this fixed factor for every cell, so the grid stays
	// uniform instead of tracking each feature's true latitude.
	refLatitudeCos = 0.6157
)

// GridOffset maps a 0-based copy index to its displacement on a row-major
// grid with the given column count and spacing in nautical miles.
func GridOffset(index, columns int, distanceNM float64) Offset {
	if columns < 1 {
		columns = 1
	}
	row := index / columns
	col := index % columns
	return Offset{
		Lat: float64(row) * distanceNM / minutesPerDegree,
		Lon: float64(col) * distanceNM / (minutesPerDegree * refLatitudeCos),
	}
}

// GridSpacing returns the displacement between adjacent grid cells, one row
// down and one column across.
func GridSpacing(distanceNM float64) Offset {
	return Offset{
		Lat: distanceNM / minutesPerDegree,
		Lon: distanceNM / (minutesPerDegree * refLatitudeCos),
	}
}
