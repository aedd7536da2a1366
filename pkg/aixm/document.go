package aixm

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/beetlebugorg/go-aixm/internal/gml"
)

// Document is a parsed or assembled AIXM 5.1.1 Basic Message.
//
// Parsed documents keep the full XML tree; Members exposes the recognized
// features in document order. The namespace declarations of the message root
// are captured once at parse time and used for every namespace lookup, so
// features stay resolvable after they are cloned out of the tree.
type Document struct {
	doc     *etree.Document
	root    *etree.Element
	scope   *gml.Scope
	members []*Feature
}

// ParseFile reads an AIXM Basic Message from path.
//
// Returns *ErrInvalidMessage when the document is well-formed XML but not a
// Basic Message, and a wrapped I/O or syntax error otherwise.
func ParseFile(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := newDocument(doc)
	if err != nil {
		var invalid *ErrInvalidMessage
		if errors.As(err, &invalid) {
			invalid.Path = path
		}
		return nil, err
	}
	return d, nil
}

// Parse reads an AIXM Basic Message from r.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	return newDocument(doc)
}

func newDocument(doc *etree.Document) (*Document, error) {
	root := doc.Root()
	if root == nil {
		return nil, &ErrInvalidMessage{Reason: "document has no root element"}
	}
	scope := gml.ScopeOf(root)
	if root.Tag != "AIXMBasicMessage" || scope.ElementURI(root) != NSMessage {
		return nil, &ErrInvalidMessage{
			Reason: fmt.Sprintf("root element is %s, expected message:AIXMBasicMessage", root.FullTag()),
		}
	}
	d := &Document{doc: doc, root: root, scope: scope}
	d.members = extractMembers(root, scope)
	return d, nil
}

// extractMembers walks the direct message:hasMember children. The first
// child element of each member that is a known AIXM feature type and carries
// a gml:identifier becomes a Feature; everything else is skipped silently.
func extractMembers(root *etree.Element, scope *gml.Scope) []*Feature {
	var members []*Feature
	for _, member := range scope.Children(root, NSMessage, "hasMember") {
		for _, el := range member.ChildElements() {
			t := FeatureType(el.Tag)
			if scope.ElementURI(el) != NSAIXM || !KnownFeatureType(t) {
				continue
			}
			f := &Feature{el: el, typ: t, scope: scope}
			if f.ID() != "" {
				members = append(members, f)
			}
			break
		}
	}
	return members
}

// Members returns the message's recognized features in document order.
func (d *Document) Members() []*Feature {
	return d.members
}

// Namespaces returns the prefix declarations of the message root in
// declaration order, as (prefix, uri) pairs.
func (d *Document) Namespaces() [][2]string {
	return d.scope.Declarations()
}

// WriteTo serializes the document to w with two-space indentation.
// Multi-line posList values keep one row of coordinates per line.
func (d *Document) WriteTo(w io.Writer) error {
	gml.Indent(d.root)
	if _, err := d.doc.WriteTo(w); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// WriteToFile serializes the document to path.
func (d *Document) WriteToFile(path string) error {
	gml.Indent(d.root)
	if err := d.doc.WriteToFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
