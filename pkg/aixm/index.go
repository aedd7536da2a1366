package aixm

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// SpatialIndex provides fast spatial queries over a set of features.
//
// The index stores the bounding box of every feature with resolvable
// geometry and answers intersection queries through an R-tree, so picking
// the features near a point or inside a viewport does not scan the whole
// dataset.
//
// Example:
//
//	idx := aixm.NewSpatialIndex(doc.Members())
//	hits := idx.Query(aixm.Bounds{
//	    MinLat: 52.0, MinLon: -32.5,
//	    MaxLat: 52.5, MaxLon: -31.5,
//	})
type SpatialIndex struct {
	entries []indexEntry
	rtree   *rtreego.Rtree
}

// boundsEpsilon pads degenerate rectangles; point geometry would otherwise
// produce zero-length R-tree extents, which rtreego rejects.
const boundsEpsilon = 0.0001

type indexEntry struct {
	feature *Feature
	bounds  Bounds
	pos     int
}

// Bounds method for the rtreego.Spatial interface.
func (e indexEntry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.bounds.MinLon, e.bounds.MinLat}
	lengths := []float64{
		max(e.bounds.Width(), boundsEpsilon),
		max(e.bounds.Height(), boundsEpsilon),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// NewSpatialIndex indexes every feature with resolvable coordinates.
// Features without usable geometry (pure reference records) are skipped.
func NewSpatialIndex(features []*Feature) *SpatialIndex {
	idx := &SpatialIndex{
		// 2D, 25-50 children per node.
		rtree: rtreego.NewTree(2, 25, 50),
	}
	for _, f := range features {
		b, ok := f.Bounds()
		if !ok {
			continue
		}
		entry := indexEntry{feature: f, bounds: b, pos: len(idx.entries)}
		idx.entries = append(idx.entries, entry)
		idx.rtree.Insert(entry)
	}
	return idx
}

// Query returns the features whose bounds intersect b, in document order.
func (idx *SpatialIndex) Query(b Bounds) []*Feature {
	point := rtreego.Point{b.MinLon, b.MinLat}
	lengths := []float64{
		max(b.Width(), boundsEpsilon),
		max(b.Height(), boundsEpsilon),
	}
	rect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return nil
	}

	spatials := idx.rtree.SearchIntersect(rect)
	hits := make([]indexEntry, 0, len(spatials))
	for _, s := range spatials {
		hits = append(hits, s.(indexEntry))
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	result := make([]*Feature, len(hits))
	for i, h := range hits {
		result[i] = h.feature
	}
	return result
}

// Count returns the number of indexed features.
func (idx *SpatialIndex) Count() int {
	return len(idx.entries)
}

// Extent returns the union of every indexed bounding box. ok is false for
// an empty index.
func (idx *SpatialIndex) Extent() (Bounds, bool) {
	if len(idx.entries) == 0 {
		return Bounds{}, false
	}
	extent := idx.entries[0].bounds
	for _, e := range idx.entries[1:] {
		extent = extent.Union(e.bounds)
	}
	return extent, true
}
