package multiply

import (
	"github.com/beetlebugorg/go-aixm/pkg/aixm"
)

// labelContext carries the strings one relabel pass writes: the cloned
// airport's new codes and the suffix for shared-feature labels.
type labelContext struct {
	designator string
	name       string
	suffix     string
}

type relabelFunc func(f *aixm.Feature, ctx labelContext)

// verticalStructureRelations are the VerticalStructure properties dropped
// from clones; they point at units and services that are not cloned.
var verticalStructureRelations = []string{
	"hostedPassengerService",
	"supportedGroundLight",
	"hostedSpecialNavStation",
	"hostedUnit",
	"hostedOrganisation",
	"supportedService",
}

// relabelers maps each feature type to its label treatment. Types without
// an entry keep their labels verbatim.
var relabelers = map[aixm.FeatureType]relabelFunc{
	aixm.TypeAirportHeliport:   relabelAirport,
	aixm.TypeNavaid:            relabelSuffixed,
	aixm.TypeVOR:               relabelSuffixed,
	aixm.TypeDME:               relabelSuffixed,
	aixm.TypeNDB:               relabelSuffixed,
	aixm.TypeTACAN:             relabelSuffixed,
	aixm.TypeLocalizer:         relabelSuffixed,
	aixm.TypeGlidepath:         relabelSuffixed,
	aixm.TypeVerticalStructure: relabelVerticalStructure,
	aixm.TypeAirspace:          relabelSuffixed,
}

// relabelAirport gives the cloned airport its own codes. Both are written
// whenever the property exists, even over empty text.
func relabelAirport(f *aixm.Feature, ctx labelContext) {
	f.SetProperty("designator", ctx.designator)
	f.SetProperty("name", ctx.name)
}

// relabelSuffixed appends the copy suffix to non-empty designator and name
// labels.
func relabelSuffixed(f *aixm.Feature, ctx labelContext) {
	f.AppendProperty("designator", ctx.suffix)
	f.AppendProperty("name", ctx.suffix)
}

func relabelVerticalStructure(f *aixm.Feature, ctx labelContext) {
	f.AppendProperty("name", ctx.suffix)
	f.AppendNestedDesignators("VerticalStructurePart", ctx.suffix)
	f.RemoveProperties(verticalStructureRelations...)
}
