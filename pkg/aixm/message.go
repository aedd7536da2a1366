package aixm

import (
	"github.com/beevik/etree"

	"github.com/beetlebugorg/go-aixm/internal/gml"
)

// outputNamespaces are the declarations written on every generated message
// root, in this order.
var outputNamespaces = [][2]string{
	{"message", NSMessage},
	{"gts", NSGTS},
	{"gco", NSGCO},
	{"xsd", NSXSD},
	{"gml", NSGML},
	{"gss", NSGSS},
	{"aixm", NSAIXM},
	{"event", NSEvent},
	{"gsr", NSGSR},
	{"gmd", NSGMD},
	{"xlink", NSXLink},
	{"xsi", NSXSI},
}

// MessageOptions configures assembly of a generated Basic Message.
type MessageOptions struct {
	// ID is the gml:id written on the message root.
	ID string

	// Comment, when non-empty, is emitted as an XML comment before the
	// root element.
	Comment string

	// Namespaces adds prefix declarations beyond the standard set,
	// typically the source document's, so cloned subtrees keep their
	// prefixes resolvable. Prefixes already in the standard set are
	// ignored.
	Namespaces [][2]string
}

// DefaultMessageOptions returns message options with the standard root ID.
func DefaultMessageOptions() MessageOptions {
	return MessageOptions{ID: "Generated_Airports"}
}

// NewMessage assembles a Basic Message from features.
//
// Feature elements are attached, not copied: each one is moved under its own
// message:hasMember, so the caller hands over ownership. Cloned features are
// detached already; attaching a feature still parented by another document
// removes it from that document.
func NewMessage(features []*Feature, opts MessageOptions) *Document {
	if opts.ID == "" {
		opts.ID = DefaultMessageOptions().ID
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.AddChild(etree.NewText("\n"))
	if opts.Comment != "" {
		doc.AddChild(etree.NewComment(" " + opts.Comment + " "))
		doc.AddChild(etree.NewText("\n"))
	}

	root := etree.NewElement("message:AIXMBasicMessage")
	declared := make(map[string]bool)
	for _, d := range outputNamespaces {
		root.CreateAttr(xmlnsKey(d[0]), d[1])
		declared[d[0]] = true
	}
	for _, d := range opts.Namespaces {
		if declared[d[0]] {
			continue
		}
		root.CreateAttr(xmlnsKey(d[0]), d[1])
		declared[d[0]] = true
	}
	root.CreateAttr("xsi:schemaLocation", SchemaLocation)
	root.CreateAttr("gml:id", opts.ID)

	for _, f := range features {
		member := root.CreateElement("message:hasMember")
		member.AddChild(f.el)
	}

	doc.AddChild(root)
	doc.AddChild(etree.NewText("\n"))

	return &Document{
		doc:     doc,
		root:    root,
		scope:   gml.ScopeOf(root),
		members: features,
	}
}

func xmlnsKey(prefix string) string {
	if prefix == "" {
		return "xmlns"
	}
	return "xmlns:" + prefix
}
