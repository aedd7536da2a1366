package gml

import (
	"strings"

	"github.com/beevik/etree"
)

// DefaultIndent is the indentation unit for serialized output.
const DefaultIndent = "  "

// Indent pretty-prints the subtree rooted at el in place with two-space
// indentation. Existing inter-element whitespace is discarded, so the pass
// is safe to run on trees assembled from differently formatted sources.
//
// Multi-line leaf text (wrapped coordinate lists) is re-indented so that
// every line sits one level below the element and the closing tag returns
// to the element's own level.
func Indent(el *etree.Element) {
	IndentWith(el, DefaultIndent)
}

// IndentWith is Indent with a caller-chosen indentation unit.
func IndentWith(el *etree.Element, unit string) {
	indentElement(el, 0, unit)
}

func indentElement(el *etree.Element, level int, unit string) {
	children := el.ChildElements()
	if len(children) == 0 {
		reindentLeafText(el, level, unit)
		return
	}
	for _, c := range children {
		indentElement(c, level+1, unit)
	}
	stripWhitespace(el)

	pad := "\n" + strings.Repeat(unit, level+1)
	i := 0
	for i < len(el.Child) {
		el.InsertChildAt(i, etree.NewText(pad))
		i += 2
	}
	el.AddChild(etree.NewText("\n" + strings.Repeat(unit, level)))
}

func stripWhitespace(el *etree.Element) {
	for i := len(el.Child) - 1; i >= 0; i-- {
		if cd, ok := el.Child[i].(*etree.CharData); ok && strings.TrimSpace(cd.Data) == "" {
			el.RemoveChildAt(i)
		}
	}
}

func reindentLeafText(el *etree.Element, level int, unit string) {
	text := el.Text()
	if !strings.Contains(text, "\n") {
		return
	}
	pad := strings.Repeat(unit, level+1)
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		b.WriteString("\n")
		b.WriteString(pad)
		b.WriteString(strings.TrimSpace(line))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat(unit, level))
	el.SetText(b.String())
}
