package dsl

import (
	"fmt"
	"strings"

	"github.com/c4kit/c4kit/pkg/c4"
)

// escaper handles quoted-value escaping: backslashes first, then
// double quotes.
var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escape(s string) string {
	return escaper.Replace(s)
}

// writeModel emits the model block: the element forest in pre-order,
// then the relationships in the order they were added.
func (s *Serializer) writeModel(w *Writer, idx *index) {
	w.Block("model", func() {
		for _, root := range s.roots {
			writeElement(w, idx, root)
		}
		for _, r := range s.relationships {
			w.Line(relationshipLine(r))
		}
	})
}

// writeElement renders one element header line and, for element kinds
// that own children, either a nested block or a literal {} when
// childless. External persons and systems carry a tags line inside
// their block.
func writeElement(w *Writer, idx *index, el c4.Element) {
	id := idx.byRef[el.Ref()].id
	switch e := el.(type) {
	case *c4.Person:
		line := elementLine(id, "person", e.Name(), e.Description(), e.Technology())
		if e.Location() == c4.External {
			w.Block(line, func() {
				w.Line(`tags "External"`)
			})
			return
		}
		w.Line(line)
	case *c4.SoftwareSystem:
		line := elementLine(id, "softwareSystem", e.Name(), e.Description(), "")
		external := e.Location() == c4.External
		if len(e.Containers()) == 0 && !external {
			w.Line(line + " {}")
			return
		}
		w.Block(line, func() {
			if external {
				w.Line(`tags "External"`)
			}
			for _, child := range e.Containers() {
				writeElement(w, idx, child)
			}
		})
	case *c4.Container:
		line := elementLine(id, "container", e.Name(), e.Description(), e.Technology())
		if len(e.Components()) == 0 {
			w.Line(line + " {}")
			return
		}
		w.Block(line, func() {
			for _, child := range e.Components() {
				writeElement(w, idx, child)
			}
		})
	case *c4.Component:
		line := elementLine(id, "component", e.Name(), e.Description(), e.Technology())
		if len(e.CodeElements()) == 0 {
			w.Line(line + " {}")
			return
		}
		w.Block(line, func() {
			for _, child := range e.CodeElements() {
				writeElement(w, idx, child)
			}
		})
	case *c4.CodeElement:
		w.Line(elementLine(id, "code", e.Name(), e.Description(), e.Language()))
	}
}

// technologyOf returns the quoted technology segment source for an
// element: the technology field for persons, containers, and
// components, the language for code elements, nothing for systems.
func technologyOf(el c4.Element) string {
	switch e := el.(type) {
	case *c4.Person:
		return e.Technology()
	case *c4.Container:
		return e.Technology()
	case *c4.Component:
		return e.Technology()
	case *c4.CodeElement:
		return e.Language()
	default:
		return ""
	}
}

// elementLine formats an element header. The technology segment is
// omitted entirely when empty.
func elementLine(id, keyword, name, description, technology string) string {
	line := fmt.Sprintf("%s = %s \"%s\" \"%s\"", id, keyword, escape(name), escape(description))
	if technology != "" {
		line += " \"" + escape(technology) + "\""
	}
	return line
}

// relationshipLine formats a relationship. Endpoints are emitted as
// given by the caller; check has already proven they resolve.
func relationshipLine(r *c4.Relationship) string {
	line := fmt.Sprintf("%s -> %s \"%s\"", r.Source(), r.Target(), escape(r.Description()))
	if r.Technology() != "" {
		line += " \"" + escape(r.Technology()) + "\""
	}
	return line
}
