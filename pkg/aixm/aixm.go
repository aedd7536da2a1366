// Package aixm provides a document model for AIXM 5.1.1 Basic Messages.
//
// The model is deliberately thin: features stay opaque XML subtrees that
// survive a parse/transform/serialize round trip unchanged outside the
// fields a caller rewrites. The package exposes typed access to the handful
// of structures the format defines for every feature (gml:identifier,
// TimeSlice version blocks, xlink:href references, gml:pos/posList
// geometry) plus message assembly and a spatial index.
package aixm

// Namespace URIs of an AIXM 5.1.1 Basic Message.
const (
	NSMessage = "http://www.aixm.aero/schema/5.1.1/message"
	NSAIXM    = "http://www.aixm.aero/schema/5.1.1"
	NSGML     = "http://www.opengis.net/gml/3.2"
	NSXLink   = "http://www.w3.org/1999/xlink"
	NSXSI     = "http://www.w3.org/2001/XMLSchema-instance"
	NSEvent   = "http://www.aixm.aero/schema/5.1.1/event"
	NSGTS     = "http://www.isotc211.org/2005/gts"
	NSGCO     = "http://www.isotc211.org/2005/gco"
	NSGSR     = "http://www.isotc211.org/2005/gsr"
	NSGSS     = "http://www.isotc211.org/2005/gss"
	NSGMD     = "http://www.isotc211.org/2005/gmd"
	NSXSD     = "http://www.w3.org/2001/XMLSchema"
)

// SchemaLocation is the xsi:schemaLocation value written on generated
// messages.
const SchemaLocation = "http://www.aixm.aero/schema/5.1.1/message " +
	"http://www.aixm.aero/schema/5.1.1/message/AIXM_BasicMessage.xsd " +
	"http://www.aixm.aero/schema/5.1.1/event " +
	"https://aixm.aero/schema/5.1.1/event/version_5.1.1-k/Event_Features.xsd"

// FeatureType identifies one of the AIXM 5.1.1 feature kinds this package
// handles: the airport surface features, the globally scoped navaid,
// equipment and obstacle features, and airspaces.
type FeatureType string

const (
	TypeAirportHeliport       FeatureType = "AirportHeliport"
	TypeRunway                FeatureType = "Runway"
	TypeRunwayDirection       FeatureType = "RunwayDirection"
	TypeRunwayElement         FeatureType = "RunwayElement"
	TypeRunwayCentrelinePoint FeatureType = "RunwayCentrelinePoint"
	TypeTouchDownLiftOff      FeatureType = "TouchDownLiftOff"
	TypeTaxiway               FeatureType = "Taxiway"
	TypeTaxiwayElement        FeatureType = "TaxiwayElement"
	TypeApron                 FeatureType = "Apron"
	TypeApronElement          FeatureType = "ApronElement"
	TypeAircraftStand         FeatureType = "AircraftStand"
	TypeNavaid                FeatureType = "Navaid"
	TypeVOR                   FeatureType = "VOR"
	TypeDME                   FeatureType = "DME"
	TypeNDB                   FeatureType = "NDB"
	TypeTACAN                 FeatureType = "TACAN"
	TypeLocalizer             FeatureType = "Localizer"
	TypeGlidepath             FeatureType = "Glidepath"
	TypeVerticalStructure     FeatureType = "VerticalStructure"
	TypeAirspace              FeatureType = "Airspace"
)

var featureTypes = []FeatureType{
	TypeAirportHeliport,
	TypeRunway,
	TypeRunwayDirection,
	TypeRunwayElement,
	TypeRunwayCentrelinePoint,
	TypeTouchDownLiftOff,
	TypeTaxiway,
	TypeTaxiwayElement,
	TypeApron,
	TypeApronElement,
	TypeAircraftStand,
	TypeNavaid,
	TypeVOR,
	TypeDME,
	TypeNDB,
	TypeTACAN,
	TypeLocalizer,
	TypeGlidepath,
	TypeVerticalStructure,
	TypeAirspace,
}

var navaidEquipmentTypes = []FeatureType{
	TypeVOR, TypeDME, TypeNDB, TypeTACAN, TypeLocalizer, TypeGlidepath,
}

var featureTypeSet = make(map[FeatureType]bool, len(featureTypes))

func init() {
	for _, t := range featureTypes {
		featureTypeSet[t] = true
	}
}

// KnownFeatureTypes returns every handled feature type, in extraction order.
func KnownFeatureTypes() []FeatureType {
	out := make([]FeatureType, len(featureTypes))
	copy(out, featureTypes)
	return out
}

// NavaidEquipmentTypes returns the navaid equipment feature types in the
// order they are processed. Equipment is referenced by Navaids through
// aixm:theNavaidEquipment links.
func NavaidEquipmentTypes() []FeatureType {
	out := make([]FeatureType, len(navaidEquipmentTypes))
	copy(out, navaidEquipmentTypes)
	return out
}

// IsNavaidOrEquipment reports whether t is the Navaid type or one of the
// equipment types. These features are globally scoped: a dataset carries all
// of them regardless of which airport they serve.
func IsNavaidOrEquipment(t FeatureType) bool {
	if t == TypeNavaid {
		return true
	}
	for _, e := range navaidEquipmentTypes {
		if t == e {
			return true
		}
	}
	return false
}

// KnownFeatureType reports whether t is in the handled enumeration.
func KnownFeatureType(t FeatureType) bool {
	return featureTypeSet[t]
}

// Bounds is a geographic bounding box in degrees.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// Intersects reports whether the two boxes overlap.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinLat <= o.MaxLat && b.MaxLat >= o.MinLat &&
		b.MinLon <= o.MaxLon && b.MaxLon >= o.MinLon
}

// Union returns the smallest box covering both.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinLat: min(b.MinLat, o.MinLat),
		MinLon: min(b.MinLon, o.MinLon),
		MaxLat: max(b.MaxLat, o.MaxLat),
		MaxLon: max(b.MaxLon, o.MaxLon),
	}
}

// Width returns the longitude span in degrees.
func (b Bounds) Width() float64 { return b.MaxLon - b.MinLon }

// Height returns the latitude span in degrees.
func (b Bounds) Height() float64 { return b.MaxLat - b.MinLat }
