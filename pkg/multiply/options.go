package multiply

import (
	"log/slog"
)

// DefaultAnchorID is the UUID of the Donlon International AirportHeliport,
// the anchor feature of the reference dataset.
const DefaultAnchorID = "1b54b2d6-a5ff-4e57-94c2-f4047a381c64"

// Default label formats. Each receives the 1-based copy number.
const (
	DefaultDesignatorFormat = "E%02dD"
	DefaultNameFormat       = "DONLON INTL. %02d"
	DefaultSuffixFormat     = "-%02d"
)

// DefaultAirspaceDesignators returns the designators of the airspaces that
// belong to the reference airport: its restricted, prohibited and danger
// areas.
func DefaultAirspaceDesignators() []string {
	return []string{"EAR1", "EAV10", "EAP2", "EAV8", "EAD4", "EAV11", "EAD5", "EAR4"}
}

// Options controls collection and clone generation.
type Options struct {
	// AnchorID is the UUID of the AirportHeliport whose belonging-set is
	// multiplied. When no such feature exists the run produces zero copies.
	AnchorID string

	// GridRows and GridCols shape the placement grid. Copies are laid out
	// row-major: copy index i lands at (i/GridCols, i%GridCols).
	GridRows int
	GridCols int

	// DistanceNM is the grid spacing in nautical miles. Navaids and
	// equipment not tied to the anchor airport move at a tenth of it.
	DistanceNM float64

	// Count is the number of copies to generate, capped at GridRows*GridCols.
	Count int

	// AirspaceDesignators lists the designators of airspaces to carry into
	// every copy. Matching is exact.
	AirspaceDesignators []string

	// DesignatorFormat, NameFormat and SuffixFormat relabel each copy.
	// DesignatorFormat and NameFormat replace the cloned airport's codes;
	// SuffixFormat is appended to navaid, obstacle and airspace labels.
	// Each receives the 1-based copy number.
	DesignatorFormat string
	NameFormat       string
	SuffixFormat     string

	// IDs supplies fresh feature identifiers. Defaults to random UUIDs.
	// Implementations must be safe for concurrent use when Parallel is set.
	IDs IDGenerator

	// Parallel enables concurrent clone generation.
	// When true, copies are produced by multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of clone worker goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// Progress is an optional callback for tracking generation progress.
	// Called after each copy is produced.
	// Parameters: (done, total) where done is the count of copies so far.
	Progress func(done, total int)

	// Logger receives run diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns options matching the reference Donlon dataset: a
// 5x6 grid at 30 NM spacing, 30 copies, the Donlon anchor and airspaces.
func DefaultOptions() Options {
	return Options{
		AnchorID:            DefaultAnchorID,
		GridRows:            5,
		GridCols:            6,
		DistanceNM:          30.0,
		Count:               30,
		AirspaceDesignators: DefaultAirspaceDesignators(),
		DesignatorFormat:    DefaultDesignatorFormat,
		NameFormat:          DefaultNameFormat,
		SuffixFormat:        DefaultSuffixFormat,
		IDs:                 NewUUIDGenerator(),
	}
}
