package multiply

import (
	"strings"
	"testing"

	"github.com/beetlebugorg/go-aixm/pkg/aixm"
)

// member builds one feature member with the standard identifier and
// TimeSlice scaffolding around inner.
func member(typ, id, inner string) string {
	return `<message:hasMember>
    <aixm:` + typ + ` gml:id="uuid.` + id + `">
      <gml:identifier codeSpace="urn:uuid:">` + id + `</gml:identifier>
      <aixm:timeSlice>
        <aixm:` + typ + `TimeSlice gml:id="` + id + `_ts">
          <aixm:interpretation>BASELINE</aixm:interpretation>
          <aixm:sequenceNumber>1</aixm:sequenceNumber>
          <aixm:correctionNumber>0</aixm:correctionNumber>
` + inner + `
        </aixm:` + typ + `TimeSlice>
      </aixm:timeSlice>
    </aixm:` + typ + `>
  </message:hasMember>`
}

// ref builds a UUID reference property.
func ref(property, target string) string {
	return `<aixm:` + property + ` xlink:href="urn:uuid:` + target + `"/>`
}

// point builds a named point geometry property.
func point(property, id, pos string) string {
	return `<aixm:` + property + `>
            <aixm:ElevatedPoint gml:id="` + id + `">
              <gml:pos>` + pos + `</gml:pos>
            </aixm:ElevatedPoint>
          </aixm:` + property + `>`
}

// testDataset is a miniature dataset around one anchor airport: surface
// features chained off it, a second airport with its own runway, the
// global navaid and equipment picture, an obstacle and three airspaces.
func testDataset(t *testing.T) *aixm.Document {
	t.Helper()

	members := []string{
		member("AirportHeliport", "airport",
			`<aixm:designator>EADD</aixm:designator>
          <aixm:name>DONLON/INTL</aixm:name>
          `+point("ARP", "airport_p", "52.88 -32.03")),
		member("AirportHeliport", "other-airport",
			`<aixm:designator>EADX</aixm:designator>
          `+point("ARP", "other_airport_p", "48.0 11.0")),
		member("Runway", "rwy",
			`<aixm:designator>09L/27R</aixm:designator>
          `+ref("associatedAirportHeliport", "airport")),
		member("Runway", "other-rwy",
			`<aixm:designator>18/36</aixm:designator>
          `+ref("associatedAirportHeliport", "other-airport")),
		member("RunwayDirection", "rd",
			`<aixm:designator>09L</aixm:designator>
          `+ref("usedRunway", "rwy")),
		member("RunwayElement", "re",
			ref("associatedRunway", "rwy")+`
          <aixm:extent>
            <aixm:ElevatedSurface gml:id="re_s">
              <gml:patches>
                <gml:PolygonPatch>
                  <gml:exterior>
                    <gml:LinearRing>
                      <gml:posList>52.86 -32.05 52.86 -32.01 52.9 -32.01 52.9 -32.05 52.86 -32.05</gml:posList>
                    </gml:LinearRing>
                  </gml:exterior>
                </gml:PolygonPatch>
              </gml:patches>
            </aixm:ElevatedSurface>
          </aixm:extent>`),
		member("RunwayCentrelinePoint", "rcp",
			ref("onRunway", "rd")+`
          `+point("location", "rcp_p", "52.88 -32.04")),
		member("TouchDownLiftOff", "tlof",
			ref("associatedAirportHeliport", "airport")),
		member("Taxiway", "twy",
			`<aixm:designator>A</aixm:designator>
          `+ref("associatedAirportHeliport", "airport")),
		member("TaxiwayElement", "twye",
			ref("associatedTaxiway", "twy")),
		member("Apron", "apr",
			`<aixm:name>MAIN APRON</aixm:name>
          `+ref("associatedAirportHeliport", "airport")),
		member("ApronElement", "apre",
			ref("associatedApron", "apr")),
		member("AircraftStand", "stand",
			`<aixm:designator>A1</aixm:designator>
          `+ref("apronLocation", "apre")),
		member("Navaid", "nav-local",
			`<aixm:designator>DON</aixm:designator>
          <aixm:name>DONLON VOR/DME</aixm:name>
          `+ref("servedAirport", "airport")+`
          `+ref("theNavaidEquipment", "vor-owned")+`
          `+point("location", "nav_local_p", "52.9 -32.1")),
		member("Navaid", "nav-remote",
			`<aixm:designator>BOR</aixm:designator>
          <aixm:name>BOLDER</aixm:name>
          `+ref("servedAirport", "other-airport")+`
          `+point("location", "nav_remote_p", "52.7 -32.2")),
		member("VOR", "vor-owned",
			`<aixm:designator>DON</aixm:designator>
          `+point("location", "vor_owned_p", "52.9 -32.1")),
		member("VOR", "vor-direct",
			`<aixm:designator>DIR</aixm:designator>
          `+ref("servedAirport", "airport")+`
          `+point("location", "vor_direct_p", "52.91 -32.11")),
		member("DME", "dme-chained",
			`<aixm:designator>DIR</aixm:designator>
          `+ref("extension", "vor-direct")+`
          `+point("location", "dme_chained_p", "52.75 -32.15")),
		member("NDB", "ndb-remote",
			`<aixm:designator>RMT</aixm:designator>
          `+point("location", "ndb_remote_p", "53.5 -33.5")),
		member("TACAN", "tacan-nav",
			`<aixm:designator>TCN</aixm:designator>
          `+ref("extension", "nav-local")+`
          `+point("location", "tacan_nav_p", "52.89 -32.12")),
		member("VerticalStructure", "vs-1",
			`<aixm:name>DONLON TOWER</aixm:name>
          <aixm:part>
            <aixm:VerticalStructurePart gml:id="vs1_p1">
              <aixm:designator>OB1</aixm:designator>
              `+point("horizontalProjection", "vs1_pt1", "52.95 -32.08")+`
            </aixm:VerticalStructurePart>
          </aixm:part>
          <aixm:part>
            <aixm:VerticalStructurePart gml:id="vs1_p2">
              <aixm:designator xsi:nil="true"/>
            </aixm:VerticalStructurePart>
          </aixm:part>
          <aixm:part>
            <aixm:VerticalStructurePart gml:id="vs1_p3">
              <aixm:designator>  </aixm:designator>
            </aixm:VerticalStructurePart>
          </aixm:part>
          <aixm:hostedUnit xlink:href="urn:uuid:unit-x"/>
          <aixm:supportedService xlink:href="urn:uuid:svc-x"/>`),
		member("Airspace", "asp-ear1",
			`<aixm:designator>EAR1</aixm:designator>
          <aixm:name>DONLON RESTRICTED 1</aixm:name>`),
		member("Airspace", "asp-xyz9",
			`<aixm:designator>XYZ9</aixm:designator>`),
		member("Airspace", "asp-nodesig",
			`<aixm:name>UNNAMED AREA</aixm:name>`),
	}

	msg := `<message:AIXMBasicMessage
    xmlns:message="http://www.aixm.aero/schema/5.1.1/message"
    xmlns:aixm="http://www.aixm.aero/schema/5.1.1"
    xmlns:gml="http://www.opengis.net/gml/3.2"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    gml:id="M0000001">
  ` + strings.Join(members, "\n  ") + `
</message:AIXMBasicMessage>`

	doc, err := aixm.Parse(strings.NewReader(msg))
	if err != nil {
		t.Fatalf("Failed to parse test dataset: %v", err)
	}
	return doc
}

// testOptions returns options for the miniature dataset: its anchor, a 2x3
// grid and the one airspace designator it carries.
func testOptions() Options {
	opts := DefaultOptions()
	opts.AnchorID = "airport"
	opts.GridRows = 2
	opts.GridCols = 3
	opts.AirspaceDesignators = []string{"EAR1"}
	return opts
}

func collectTestSet(t *testing.T) *BelongingSet {
	t.Helper()
	return Collect(NewCatalog(testDataset(t)), testOptions())
}

func TestCollectMembership(t *testing.T) {
	set := collectTestSet(t)

	expected := []string{
		"airport", "rwy", "rd", "re", "rcp", "tlof", "twy", "twye",
		"apr", "apre", "stand",
		"nav-local", "nav-remote",
		"vor-owned", "vor-direct", "dme-chained", "ndb-remote", "tacan-nav",
		"vs-1", "asp-ear1",
	}
	if set.Len() != len(expected) {
		t.Fatalf("Expected %d collected features, got %d", len(expected), set.Len())
	}
	for i, f := range set.Features() {
		if f.ID() != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], f.ID())
		}
	}
}

func TestCollectExcludesOtherAirport(t *testing.T) {
	set := collectTestSet(t)

	for _, id := range []string{"other-airport", "other-rwy", "asp-xyz9", "asp-nodesig"} {
		if set.Contains(id) {
			t.Errorf("Expected %s to stay outside the belonging-set", id)
		}
	}
}

func TestCollectLocalRelevance(t *testing.T) {
	set := collectTestSet(t)

	relevant := []string{"nav-local", "vor-direct", "tacan-nav", "vor-owned"}
	for _, id := range relevant {
		if !set.LocallyRelevant(id) {
			t.Errorf("Expected %s to be locally relevant", id)
		}
	}
	reduced := []string{"nav-remote", "dme-chained", "ndb-remote"}
	for _, id := range reduced {
		if set.LocallyRelevant(id) {
			t.Errorf("Expected %s to not be locally relevant", id)
		}
	}
}

// vor-owned references nothing itself; it is tagged only because the
// locally relevant nav-local points at it.
func TestCollectEquipmentRepair(t *testing.T) {
	set := collectTestSet(t)

	if !set.LocallyRelevant("vor-owned") {
		t.Error("Expected equipment referenced by a relevant navaid to be tagged")
	}
}

// dme-chained references vor-direct, which is itself tagged during the
// equipment stage. Relevance is decided against a snapshot, so the tag
// must not chain.
func TestCollectNoRelevanceChaining(t *testing.T) {
	set := collectTestSet(t)

	if !set.LocallyRelevant("vor-direct") {
		t.Fatal("Expected vor-direct to be tagged via the airport")
	}
	if set.LocallyRelevant("dme-chained") {
		t.Error("Expected no relevance chaining through equipment tags")
	}
}

func TestCollectAirspaceAllowList(t *testing.T) {
	cat := NewCatalog(testDataset(t))

	opts := testOptions()
	opts.AirspaceDesignators = []string{"XYZ9"}
	set := Collect(cat, opts)

	if set.Contains("asp-ear1") {
		t.Error("Expected asp-ear1 to be excluded under a different allow-list")
	}
	if !set.Contains("asp-xyz9") {
		t.Error("Expected asp-xyz9 to be collected")
	}
}

func TestCollectMissingAnchor(t *testing.T) {
	cat := NewCatalog(testDataset(t))

	opts := testOptions()
	opts.AnchorID = "00000000-0000-0000-0000-000000000000"
	set := Collect(cat, opts)

	if set.Len() != 0 {
		t.Errorf("Expected an empty set for a missing anchor, got %d features", set.Len())
	}
}

func TestCollectDeterminism(t *testing.T) {
	first := collectTestSet(t)
	second := collectTestSet(t)

	if first.Len() != second.Len() {
		t.Fatalf("Expected identical set sizes, got %d and %d", first.Len(), second.Len())
	}
	for i := range first.Features() {
		a, b := first.Features()[i], second.Features()[i]
		if a.ID() != b.ID() {
			t.Errorf("Position %d: expected %s, got %s", i, a.ID(), b.ID())
		}
		if first.LocallyRelevant(a.ID()) != second.LocallyRelevant(b.ID()) {
			t.Errorf("Relevance of %s differs between runs", a.ID())
		}
	}
}

func TestCatalog(t *testing.T) {
	cat := NewCatalog(testDataset(t))

	if got := cat.Total(); got != 24 {
		t.Errorf("Expected 24 features in the catalog, got %d", got)
	}
	if got := cat.Count(aixm.TypeAirportHeliport); got != 2 {
		t.Errorf("Expected 2 airports, got %d", got)
	}
	if got := cat.Count(aixm.TypeAirspace); got != 3 {
		t.Errorf("Expected 3 airspaces, got %d", got)
	}

	f, ok := cat.Get(aixm.TypeNavaid, "nav-local")
	if !ok || f.ID() != "nav-local" {
		t.Error("Expected to find nav-local among the navaids")
	}
	if _, ok := cat.Get(aixm.TypeRunway, "nav-local"); ok {
		t.Error("Expected type-scoped lookup to miss features of other types")
	}

	runways := cat.OfType(aixm.TypeRunway)
	if len(runways) != 2 || runways[0].ID() != "rwy" || runways[1].ID() != "other-rwy" {
		t.Errorf("Expected runways in document order, got %v",
			[]string{runways[0].ID(), runways[1].ID()})
	}
}
