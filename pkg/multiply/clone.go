package multiply

import (
	"fmt"

	"github.com/beetlebugorg/go-aixm/pkg/aixm"
)

// Instance is one generated copy of a belonging-set.
type Instance struct {
	// Index is the copy's 0-based grid index.
	Index int

	// AnchorID is the new UUID of the copy's airport.
	AnchorID string

	// Features holds the cloned features in collection order. They are
	// fully independent of the source document and of other instances.
	Features []*aixm.Feature
}

// CloneInstance produces the copy at the given grid index: every feature of
// the set deep-copied, re-identified, re-referenced against the new
// identifiers, repositioned and relabeled.
//
// References between set members are rewritten to the copy's fresh UUIDs;
// references leaving the set are kept verbatim. Navaids and equipment not
// locally relevant move at a tenth of the grid spacing, so the shared radio
// picture stays clustered near its origin instead of marching off with
// each airport.
func (g *Generator) CloneInstance(set *BelongingSet, index int) *Instance {
	ids := make(map[string]string, set.Len())
	for _, f := range set.Features() {
		ids[f.ID()] = g.opts.IDs.Next()
	}

	primary := GridOffset(index, g.opts.GridCols, g.opts.DistanceNM)
	reduced := GridOffset(index, g.opts.GridCols, g.opts.DistanceNM/10.0)

	ctx := labelContext{
		designator: fmt.Sprintf(g.opts.DesignatorFormat, index+1),
		name:       fmt.Sprintf(g.opts.NameFormat, index+1),
		suffix:     fmt.Sprintf(g.opts.SuffixFormat, index+1),
	}

	features := make([]*aixm.Feature, 0, set.Len())
	for _, src := range set.Features() {
		clone := src.Clone()
		clone.SetIdentifier(ids[src.ID()])
		clone.RewriteReferences(ids)

		offset := primary
		if aixm.IsNavaidOrEquipment(src.Type()) && !set.LocallyRelevant(src.ID()) {
			offset = reduced
		}
		clone.ShiftCoordinates(offset.Lat, offset.Lon)

		if relabel, ok := relabelers[src.Type()]; ok {
			relabel(clone, ctx)
		}
		features = append(features, clone)
	}

	return &Instance{
		Index:    index,
		AnchorID: ids[g.opts.AnchorID],
		Features: features,
	}
}
