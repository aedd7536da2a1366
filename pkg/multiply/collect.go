package multiply

import (
	"github.com/beetlebugorg/go-aixm/pkg/aixm"
)

// BelongingSet is the closure of features belonging to one anchor airport,
// in collection order, plus the subset of navaid and equipment UUIDs that
// are tied to that airport (the "locally relevant" ones, which keep full
// grid spacing when cloned).
type BelongingSet struct {
	entries  []*aixm.Feature
	index    map[string]bool
	relevant map[string]bool
}

func newBelongingSet() *BelongingSet {
	return &BelongingSet{
		index:    make(map[string]bool),
		relevant: make(map[string]bool),
	}
}

func (s *BelongingSet) add(f *aixm.Feature) {
	s.entries = append(s.entries, f)
	s.index[f.ID()] = true
}

// Features returns the collected features in collection order. The slice
// and the features are shared with the source document; clone before
// modifying.
func (s *BelongingSet) Features() []*aixm.Feature {
	return s.entries
}

// Len returns the number of collected features.
func (s *BelongingSet) Len() int {
	return len(s.entries)
}

// Contains reports whether the feature with the given UUID was collected.
func (s *BelongingSet) Contains(id string) bool {
	return s.index[id]
}

// LocallyRelevant reports whether the navaid or equipment feature with the
// given UUID serves the anchor airport.
func (s *BelongingSet) LocallyRelevant(id string) bool {
	return s.relevant[id]
}

// ids returns a snapshot of every collected UUID.
func (s *BelongingSet) ids() map[string]bool {
	out := make(map[string]bool, len(s.index))
	for id := range s.index {
		out[id] = true
	}
	return out
}

// relevantIDs returns a snapshot of the locally relevant UUIDs.
func (s *BelongingSet) relevantIDs() []string {
	out := make([]string, 0, len(s.relevant))
	for id := range s.relevant {
		out = append(out, id)
	}
	return out
}

// Collect walks the reference chains of the anchor airport and returns its
// belonging-set.
//
// Airport surface features join the set when they reference a feature
// already in it, stage by stage: runways off the airport, directions and
// elements off the runways, centreline points off the directions, TLOFs off
// the airport or a runway, then taxiways, aprons, their elements, and
// stands off apron elements or the airport.
//
// Navaids and equipment are global: every one joins the set regardless of
// what it references, because a dataset clone must carry the full radio
// picture. Each one is additionally marked locally relevant when it is tied
// to the anchor airport, directly or through a relevant navaid. Relevance
// is decided against a snapshot taken before the navaid stages, so tags
// never chain through other tags; a final top-down pass marks every piece
// of equipment a relevant navaid points at.
//
// Vertical structures are global too, with no relevance marking. Airspaces
// join only when the designator of their first time slice is exactly in
// opts.AirspaceDesignators.
//
// A missing anchor yields an empty set.
func Collect(cat *Catalog, opts Options) *BelongingSet {
	set := newBelongingSet()

	anchor, ok := cat.Get(aixm.TypeAirportHeliport, opts.AnchorID)
	if !ok {
		return set
	}
	set.add(anchor)
	anchorID := map[string]bool{opts.AnchorID: true}

	runways := set.addReferencing(cat, aixm.TypeRunway, anchorID)
	runwayDirs := set.addReferencing(cat, aixm.TypeRunwayDirection, runways)
	set.addReferencing(cat, aixm.TypeRunwayElement, runways)
	set.addReferencing(cat, aixm.TypeRunwayCentrelinePoint, runwayDirs)
	set.addReferencing(cat, aixm.TypeTouchDownLiftOff, union(anchorID, runways))
	taxiways := set.addReferencing(cat, aixm.TypeTaxiway, anchorID)
	set.addReferencing(cat, aixm.TypeTaxiwayElement, taxiways)
	aprons := set.addReferencing(cat, aixm.TypeApron, anchorID)
	apronElements := set.addReferencing(cat, aixm.TypeApronElement, aprons)
	set.addReferencing(cat, aixm.TypeAircraftStand, union(apronElements, anchorID))

	collectNavaids(cat, set)

	for _, f := range cat.OfType(aixm.TypeVerticalStructure) {
		if !set.Contains(f.ID()) {
			set.add(f)
		}
	}

	collectAirspaces(cat, set, opts.AirspaceDesignators)

	return set
}

// addReferencing collects every feature of type t that references a UUID in
// roots, returning the UUIDs added.
func (s *BelongingSet) addReferencing(cat *Catalog, t aixm.FeatureType, roots map[string]bool) map[string]bool {
	added := make(map[string]bool)
	for _, f := range cat.OfType(t) {
		if s.Contains(f.ID()) || !referencesAny(f, roots) {
			continue
		}
		s.add(f)
		added[f.ID()] = true
	}
	return added
}

func collectNavaids(cat *Catalog, set *BelongingSet) {
	// Snapshot of the airport surface set. Navaid-to-navaid references do
	// not extend it.
	surface := set.ids()
	for _, f := range cat.OfType(aixm.TypeNavaid) {
		if set.Contains(f.ID()) {
			continue
		}
		if referencesAny(f, surface) {
			set.relevant[f.ID()] = true
		}
		set.add(f)
	}

	// Equipment relevance is decided against the surface set plus the
	// relevant navaids, fixed before any equipment is tagged.
	withNavaids := union(surface, set.relevant)
	for _, t := range aixm.NavaidEquipmentTypes() {
		for _, f := range cat.OfType(t) {
			if set.Contains(f.ID()) {
				continue
			}
			if referencesAny(f, withNavaids) {
				set.relevant[f.ID()] = true
			}
			set.add(f)
		}
	}

	// A relevant navaid drags its equipment along even when the equipment
	// references nothing relevant itself (the navaid points down at it via
	// theNavaidEquipment, not the other way around).
	for _, id := range set.relevantIDs() {
		nav, ok := cat.Get(aixm.TypeNavaid, id)
		if !ok {
			continue
		}
		for _, ref := range nav.References() {
			if isEquipment(cat, ref) {
				set.relevant[ref] = true
			}
		}
	}
}

func collectAirspaces(cat *Catalog, set *BelongingSet, designators []string) {
	allow := make(map[string]bool, len(designators))
	for _, d := range designators {
		allow[d] = true
	}
	for _, f := range cat.OfType(aixm.TypeAirspace) {
		if set.Contains(f.ID()) {
			continue
		}
		if allow[f.Designator()] {
			set.add(f)
		}
	}
}

// referencesAny reports whether any of f's references is in roots.
func referencesAny(f *aixm.Feature, roots map[string]bool) bool {
	for _, ref := range f.References() {
		if roots[ref] {
			return true
		}
	}
	return false
}

// isEquipment reports whether id names a feature of an equipment type.
func isEquipment(cat *Catalog, id string) bool {
	for _, t := range aixm.NavaidEquipmentTypes() {
		if _, ok := cat.Get(t, id); ok {
			return true
		}
	}
	return false
}

func union(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for id := range a {
		out[id] = true
	}
	for id := range b {
		out[id] = true
	}
	return out
}
