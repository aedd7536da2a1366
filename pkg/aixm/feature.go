package aixm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/beetlebugorg/go-aixm/internal/gml"
)

// Feature is one AIXM feature element (aixm:Runway, aixm:Navaid, ...) with
// typed access to the structures every feature shares. The underlying XML
// subtree is preserved verbatim apart from the fields a caller rewrites.
type Feature struct {
	el    *etree.Element
	typ   FeatureType
	scope *gml.Scope
}

// Type returns the feature's AIXM type.
func (f *Feature) Type() FeatureType {
	return f.typ
}

// Element returns the underlying XML element.
func (f *Feature) Element() *etree.Element {
	return f.el
}

// ID returns the feature's UUID, the text of its direct gml:identifier
// child, or "" when the feature carries none.
func (f *Feature) ID() string {
	ident := f.scope.Child(f.el, NSGML, "identifier")
	if ident == nil {
		return ""
	}
	return strings.TrimSpace(ident.Text())
}

// References returns every UUID the feature links to through
// xlink:href="urn:uuid:..." attributes anywhere in its subtree, in document
// order without duplicates. Hrefs using other schemes are not references.
func (f *Feature) References() []string {
	var refs []string
	seen := make(map[string]bool)
	gml.Walk(f.el, func(el *etree.Element) {
		href := f.scope.AttrValue(el, NSXLink, "href")
		if href == "" {
			return
		}
		id, ok := gml.ParseUUIDHref(href)
		if !ok || seen[id] {
			return
		}
		seen[id] = true
		refs = append(refs, id)
	})
	return refs
}

// TimeSlice returns the feature's first versioned TimeSlice element
// (aixm:RunwayTimeSlice and friends), or nil. The lowercase aixm:timeSlice
// property wrapper never matches.
func (f *Feature) TimeSlice() *etree.Element {
	return gml.FindDescendant(f.el, func(el *etree.Element) bool {
		return strings.Contains(el.Tag, "TimeSlice")
	})
}

// Version returns the sequence and correction numbers of the feature's
// TimeSlice. Missing or unparseable values default to sequence 1,
// correction 0.
func (f *Feature) Version() (seq, corr int) {
	return f.versionOf(f.TimeSlice())
}

func (f *Feature) versionOf(ts *etree.Element) (int, int) {
	seq, corr := 1, 0
	if ts == nil {
		return seq, corr
	}
	if el := f.scope.Child(ts, NSAIXM, "sequenceNumber"); el != nil {
		if v, err := strconv.Atoi(strings.TrimSpace(el.Text())); err == nil {
			seq = v
		}
	}
	if el := f.scope.Child(ts, NSAIXM, "correctionNumber"); el != nil {
		if v, err := strconv.Atoi(strings.TrimSpace(el.Text())); err == nil {
			corr = v
		}
	}
	return seq, corr
}

// Designator returns the text of the TimeSlice's direct aixm:designator
// child, or "" when absent.
func (f *Feature) Designator() string {
	ts := f.TimeSlice()
	if ts == nil {
		return ""
	}
	if el := f.scope.Child(ts, NSAIXM, "designator"); el != nil {
		return el.Text()
	}
	return ""
}

// Name returns the text of the TimeSlice's direct aixm:name child, or ""
// when absent.
func (f *Feature) Name() string {
	ts := f.TimeSlice()
	if ts == nil {
		return ""
	}
	if el := f.scope.Child(ts, NSAIXM, "name"); el != nil {
		return el.Text()
	}
	return ""
}

// Clone returns a deep copy of the feature, detached from its document.
func (f *Feature) Clone() *Feature {
	return &Feature{el: f.el.Copy(), typ: f.typ, scope: f.scope}
}

// SetIdentifier rewrites the feature's own identifiers to id:
//
//   - the feature gml:id becomes "uuid.<id>",
//   - the gml:identifier text becomes id,
//   - the TimeSlice gml:id becomes "id_<id>_<seq>_<corr>_B",
//   - every TimeSlice descendant already carrying a gml:id is renumbered
//     "id_<id>_<seq>_<corr>_B_<n>" with n counting from 1 in document order.
//
// References to other features are untouched; see RewriteReferences.
func (f *Feature) SetIdentifier(id string) {
	f.scope.SetAttr(f.el, NSGML, "id", "uuid."+id)
	if ident := f.scope.Child(f.el, NSGML, "identifier"); ident != nil {
		ident.SetText(id)
	}

	ts := f.TimeSlice()
	if ts == nil {
		return
	}
	seq, corr := f.versionOf(ts)
	base := fmt.Sprintf("id_%s_%d_%d_B", id, seq, corr)
	f.scope.SetAttr(ts, NSGML, "id", base)

	n := 1
	gml.Walk(ts, func(el *etree.Element) {
		if el == ts {
			return
		}
		if f.scope.Attr(el, NSGML, "id") == nil {
			return
		}
		f.scope.SetAttr(el, NSGML, "id", fmt.Sprintf("%s_%d", base, n))
		n++
	})
}

// RewriteReferences redirects every urn:uuid xlink:href whose target is a
// key of ids to the mapped identifier. Hrefs pointing outside the map are
// left verbatim; they reference shared, uncloned data.
func (f *Feature) RewriteReferences(ids map[string]string) {
	gml.Walk(f.el, func(el *etree.Element) {
		a := f.scope.Attr(el, NSXLink, "href")
		if a == nil {
			return
		}
		old, ok := gml.ParseUUIDHref(a.Value)
		if !ok {
			return
		}
		if newID, mapped := ids[old]; mapped {
			a.Value = gml.UUIDHref(newID)
		}
	})
}

// ShiftCoordinates displaces every gml:pos and gml:posList value in the
// feature by (dLat, dLon) degrees. posList values are re-wrapped at the
// default line width. Tokens that fail to parse pass through unchanged.
func (f *Feature) ShiftCoordinates(dLat, dLon float64) {
	gml.Walk(f.el, func(el *etree.Element) {
		if f.scope.ElementURI(el) != NSGML {
			return
		}
		switch el.Tag {
		case "pos":
			if text := el.Text(); strings.TrimSpace(text) != "" {
				el.SetText(gml.ShiftPos(text, dLat, dLon))
			}
		case "posList":
			if text := el.Text(); strings.TrimSpace(text) != "" {
				el.SetText(gml.WrapPairs(gml.ShiftPairs(text, dLat, dLon), gml.DefaultWrapWidth))
			}
		}
	})
}

// Bounds returns the feature's bounding box over every parseable, in-range
// coordinate pair in its geometry. ok is false when the feature carries no
// usable coordinates.
func (f *Feature) Bounds() (Bounds, bool) {
	var b Bounds
	found := false
	gml.Walk(f.el, func(el *etree.Element) {
		if f.scope.ElementURI(el) != NSGML {
			return
		}
		if el.Tag != "pos" && el.Tag != "posList" {
			return
		}
		values := strings.Fields(el.Text())
		for i := 0; i+1 < len(values); i += 2 {
			lat, errLat := strconv.ParseFloat(values[i], 64)
			lon, errLon := strconv.ParseFloat(values[i+1], 64)
			if errLat != nil || errLon != nil || !gml.ValidCoordinate(lat, lon) {
				continue
			}
			if !found {
				b = Bounds{MinLat: lat, MinLon: lon, MaxLat: lat, MaxLon: lon}
				found = true
				continue
			}
			b.MinLat = min(b.MinLat, lat)
			b.MinLon = min(b.MinLon, lon)
			b.MaxLat = max(b.MaxLat, lat)
			b.MaxLon = max(b.MaxLon, lon)
		}
	})
	return b, found
}
