package aixm

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/beetlebugorg/go-aixm/internal/gml"
)

// SetProperty replaces the text of the TimeSlice's direct aixm child with
// the given local name. It reports whether the property element exists;
// absent properties are not created.
func (f *Feature) SetProperty(local, value string) bool {
	ts := f.TimeSlice()
	if ts == nil {
		return false
	}
	el := f.scope.Child(ts, NSAIXM, local)
	if el == nil {
		return false
	}
	el.SetText(value)
	return true
}

// AppendProperty appends suffix to the text of the TimeSlice's direct aixm
// child with the given local name. Absent or empty properties are left
// alone; it reports whether a suffix was written.
func (f *Feature) AppendProperty(local, suffix string) bool {
	ts := f.TimeSlice()
	if ts == nil {
		return false
	}
	el := f.scope.Child(ts, NSAIXM, local)
	if el == nil || el.Text() == "" {
		return false
	}
	el.SetText(el.Text() + suffix)
	return true
}

// RemoveProperties removes every direct aixm child of the TimeSlice whose
// local name is in locals, returning the number removed.
func (f *Feature) RemoveProperties(locals ...string) int {
	ts := f.TimeSlice()
	if ts == nil {
		return 0
	}
	names := make(map[string]bool, len(locals))
	for _, l := range locals {
		names[l] = true
	}
	removed := 0
	for i := len(ts.Child) - 1; i >= 0; i-- {
		el, ok := ts.Child[i].(*etree.Element)
		if !ok || !names[el.Tag] || f.scope.ElementURI(el) != NSAIXM {
			continue
		}
		ts.RemoveChildAt(i)
		removed++
	}
	return removed
}

// AppendNestedDesignators appends suffix to the designator of every aixm
// element with the given local name inside the TimeSlice. Designators with
// blank text or an xsi:nil marker are skipped. Returns the number of
// designators rewritten.
func (f *Feature) AppendNestedDesignators(local, suffix string) int {
	ts := f.TimeSlice()
	if ts == nil {
		return 0
	}
	appended := 0
	gml.Walk(ts, func(el *etree.Element) {
		if el.Tag != local || f.scope.ElementURI(el) != NSAIXM {
			return
		}
		d := f.scope.Child(el, NSAIXM, "designator")
		if d == nil || strings.TrimSpace(d.Text()) == "" {
			return
		}
		if a := f.scope.Attr(d, NSXSI, "nil"); a != nil && a.Value != "" {
			return
		}
		d.SetText(d.Text() + suffix)
		appended++
	})
	return appended
}
