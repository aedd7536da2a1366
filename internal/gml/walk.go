package gml

import "github.com/beevik/etree"

// Walk visits el and every descendant element in document order.
func Walk(el *etree.Element, fn func(*etree.Element)) {
	fn(el)
	for _, c := range el.ChildElements() {
		Walk(c, fn)
	}
}

// FindDescendant returns the first descendant of el (el itself excluded)
// matching pred, in document order, or nil.
func FindDescendant(el *etree.Element, pred func(*etree.Element) bool) *etree.Element {
	for _, c := range el.ChildElements() {
		if pred(c) {
			return c
		}
		if m := FindDescendant(c, pred); m != nil {
			return m
		}
	}
	return nil
}
