package multiply

import (
	"github.com/beetlebugorg/go-aixm/pkg/aixm"
)

// Catalog indexes a parsed dataset's features by type and UUID.
//
// Per-type order follows document order; a UUID seen twice within a type
// keeps its first occurrence.
type Catalog struct {
	order map[aixm.FeatureType][]*aixm.Feature
	index map[aixm.FeatureType]map[string]*aixm.Feature
	total int
}

// NewCatalog indexes every recognized member of doc.
func NewCatalog(doc *aixm.Document) *Catalog {
	c := &Catalog{
		order: make(map[aixm.FeatureType][]*aixm.Feature),
		index: make(map[aixm.FeatureType]map[string]*aixm.Feature),
	}
	for _, f := range doc.Members() {
		byID := c.index[f.Type()]
		if byID == nil {
			byID = make(map[string]*aixm.Feature)
			c.index[f.Type()] = byID
		}
		if _, dup := byID[f.ID()]; dup {
			continue
		}
		byID[f.ID()] = f
		c.order[f.Type()] = append(c.order[f.Type()], f)
		c.total++
	}
	return c
}

// Get returns the feature of the given type with the given UUID.
func (c *Catalog) Get(t aixm.FeatureType, id string) (*aixm.Feature, bool) {
	f, ok := c.index[t][id]
	return f, ok
}

// OfType returns the features of one type in document order. The returned
// slice is shared; callers must not modify it.
func (c *Catalog) OfType(t aixm.FeatureType) []*aixm.Feature {
	return c.order[t]
}

// Count returns the number of features of one type.
func (c *Catalog) Count(t aixm.FeatureType) int {
	return len(c.order[t])
}

// Total returns the number of indexed features across all types.
func (c *Catalog) Total() int {
	return c.total
}
