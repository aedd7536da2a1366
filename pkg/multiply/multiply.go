// Package multiply clones an airport's feature set across a geographic
// grid.
//
// Starting from one anchor AirportHeliport in a parsed AIXM 5.1.1 dataset,
// the package collects every feature that belongs to that airport (its
// runways, taxiways, aprons, the global navaid and obstacle picture, and
// selected airspaces) and produces any number of independent copies of the
// whole set, each with fresh UUIDs, internally rewritten references, offset
// coordinates and its own labels. The copies land row-major on a grid, one
// per index.
//
// Example:
//
//	doc, err := aixm.ParseFile("Donlon_ALL_Baseline.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen := multiply.NewGenerator(multiply.DefaultOptions())
//	result := gen.Run(doc)
//
//	err = multiply.WriteResult(result, "Donlon_Dataset_Copies",
//	    multiply.DefaultOutputOptions())
package multiply

import (
	"fmt"
	"log/slog"

	"github.com/beetlebugorg/go-aixm/pkg/aixm"
)

// Generator runs collection and clone generation for one configuration.
type Generator struct {
	opts Options
	log  *slog.Logger
}

// NewGenerator returns a generator for the given options. A nil ID
// generator, empty label formats and a nil logger fall back to defaults;
// everything else is taken as configured.
func NewGenerator(opts Options) *Generator {
	if opts.IDs == nil {
		opts.IDs = NewUUIDGenerator()
	}
	if opts.DesignatorFormat == "" {
		opts.DesignatorFormat = DefaultDesignatorFormat
	}
	if opts.NameFormat == "" {
		opts.NameFormat = DefaultNameFormat
	}
	if opts.SuffixFormat == "" {
		opts.SuffixFormat = DefaultSuffixFormat
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Generator{opts: opts, log: log}
}

// Result is the outcome of one Run: the collected belonging-set and the
// generated instances in grid order.
type Result struct {
	Set       *BelongingSet
	Instances []*Instance
}

// TotalFeatures returns the number of cloned features across all instances.
func (r *Result) TotalFeatures() int {
	n := 0
	for _, inst := range r.Instances {
		n += len(inst.Features)
	}
	return n
}

// Run collects the anchor's belonging-set from doc and generates the
// configured number of copies, capped at the grid size. A missing anchor
// yields a result with zero instances.
func (g *Generator) Run(doc *aixm.Document) *Result {
	cat := NewCatalog(doc)
	g.log.Info("dataset parsed", "features", cat.Total())
	for _, t := range aixm.KnownFeatureTypes() {
		g.log.Debug("dataset features", "type", string(t), "count", cat.Count(t))
	}

	set := Collect(cat, g.opts)
	if set.Len() == 0 {
		g.log.Warn("anchor airport not found, nothing to clone",
			"anchor", g.opts.AnchorID)
		return &Result{Set: set}
	}
	g.logCollection(set)

	count := g.copyCount()
	g.log.Info("generating copies", "count", count, "features", count*set.Len())
	for i := 0; i < count; i++ {
		offset := GridOffset(i, g.opts.GridCols, g.opts.DistanceNM)
		g.log.Info("copy",
			"designator", fmt.Sprintf(g.opts.DesignatorFormat, i+1),
			"row", i/g.opts.GridCols,
			"col", i%g.opts.GridCols,
			"latOffset", fmt.Sprintf("%+.4f", offset.Lat),
			"lonOffset", fmt.Sprintf("%+.4f", offset.Lon),
		)
	}

	return &Result{Set: set, Instances: g.cloneAll(set, count)}
}

func (g *Generator) logCollection(set *BelongingSet) {
	counts := make(map[aixm.FeatureType]int)
	navaids, relevant := 0, 0
	for _, f := range set.Features() {
		counts[f.Type()]++
		if aixm.IsNavaidOrEquipment(f.Type()) {
			navaids++
			if set.LocallyRelevant(f.ID()) {
				relevant++
			}
		}
	}
	for _, t := range aixm.KnownFeatureTypes() {
		if counts[t] > 0 {
			g.log.Info("collected", "type", string(t), "count", counts[t])
		}
	}
	g.log.Info("collection complete",
		"features", set.Len(),
		"fullSpacingNavaids", relevant,
		"reducedSpacingNavaids", navaids-relevant,
	)
}

// copyCount caps the requested count at the grid size.
func (g *Generator) copyCount() int {
	count := g.opts.Count
	if cells := g.opts.GridRows * g.opts.GridCols; count > cells {
		count = cells
	}
	if count < 0 {
		count = 0
	}
	return count
}
