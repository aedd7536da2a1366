// Package gml provides low-level helpers for GML-flavoured XML trees:
// namespace resolution, urn:uuid reference handling, coordinate text
// transforms, and output indentation.
//
// The package operates directly on etree nodes. AIXM features are opaque
// subtrees that must survive a parse/transform/serialize round trip outside
// the handful of fields being rewritten, so they are never bound to structs.
package gml

import (
	"github.com/beevik/etree"
)

// Scope resolves namespace prefixes against the declarations found on a
// document root. Detached (cloned) elements cannot resolve prefixes by
// walking their parents, so every namespace lookup goes through a Scope
// captured at parse time.
//
// Declarations nested below the root are not tracked; AIXM messages declare
// all namespaces on the message root.
type Scope struct {
	uriByPrefix map[string]string
	prefixByURI map[string]string
	prefixes    []string
}

// ScopeOf builds a Scope from the xmlns declarations on root. A nil or
// declaration-free root yields an empty scope.
func ScopeOf(root *etree.Element) *Scope {
	s := &Scope{
		uriByPrefix: make(map[string]string),
		prefixByURI: make(map[string]string),
	}
	if root == nil {
		return s
	}
	for _, a := range root.Attr {
		switch {
		case a.Space == "xmlns":
			s.Declare(a.Key, a.Value)
		case a.Space == "" && a.Key == "xmlns":
			s.Declare("", a.Value)
		}
	}
	return s
}

// Declare adds a prefix binding. The first declaration of a prefix wins;
// later duplicates are ignored.
func (s *Scope) Declare(prefix, uri string) {
	if _, ok := s.uriByPrefix[prefix]; ok {
		return
	}
	s.uriByPrefix[prefix] = uri
	s.prefixes = append(s.prefixes, prefix)
	if _, ok := s.prefixByURI[uri]; !ok {
		s.prefixByURI[uri] = prefix
	}
}

// URI returns the namespace bound to prefix, or "" when undeclared.
func (s *Scope) URI(prefix string) string {
	return s.uriByPrefix[prefix]
}

// Prefix returns the first prefix declared for uri.
func (s *Scope) Prefix(uri string) (string, bool) {
	p, ok := s.prefixByURI[uri]
	return p, ok
}

// ElementURI resolves el's namespace within the scope. Unprefixed elements
// resolve to the default namespace, if one is declared.
func (s *Scope) ElementURI(el *etree.Element) string {
	return s.uriByPrefix[el.Space]
}

// Declarations returns the (prefix, uri) pairs in declaration order.
func (s *Scope) Declarations() [][2]string {
	decls := make([][2]string, 0, len(s.prefixes))
	for _, p := range s.prefixes {
		decls = append(decls, [2]string{p, s.uriByPrefix[p]})
	}
	return decls
}

// Child returns the first direct child of el with the given namespace URI
// and local name, or nil.
func (s *Scope) Child(el *etree.Element, uri, local string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == local && s.uriByPrefix[c.Space] == uri {
			return c
		}
	}
	return nil
}

// Children returns every direct child of el with the given namespace URI and
// local name, in document order.
func (s *Scope) Children(el *etree.Element, uri, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == local && s.uriByPrefix[c.Space] == uri {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns el's attribute with the given namespace URI and local name,
// or nil. Unprefixed attributes carry no namespace and never match a
// non-empty uri.
func (s *Scope) Attr(el *etree.Element, uri, local string) *etree.Attr {
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Key == local && a.Space != "" && a.Space != "xmlns" && s.uriByPrefix[a.Space] == uri {
			return a
		}
	}
	return nil
}

// AttrValue returns the value of el's (uri, local) attribute, or "" when the
// attribute is absent.
func (s *Scope) AttrValue(el *etree.Element, uri, local string) string {
	if a := s.Attr(el, uri, local); a != nil {
		return a.Value
	}
	return ""
}

// SetAttr updates el's (uri, local) attribute in place, preserving whatever
// prefix the document already uses. When the attribute is absent it is
// created with the scope's prefix for uri.
func (s *Scope) SetAttr(el *etree.Element, uri, local, value string) {
	if a := s.Attr(el, uri, local); a != nil {
		a.Value = value
		return
	}
	if p, ok := s.prefixByURI[uri]; ok && p != "" {
		el.CreateAttr(p+":"+local, value)
		return
	}
	el.CreateAttr(local, value)
}
