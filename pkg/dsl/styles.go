package dsl

import (
	"fmt"
	"strconv"
)

// ElementStyle is a sparse set of visual properties applied to elements
// matching Selector (an element type name such as "Person", or any
// tag). Empty properties are omitted from the output.
type ElementStyle struct {
	Selector    string
	Background  string
	Color       string
	Shape       string
	Size        string
	Stroke      string
	StrokeWidth string
}

// RelationshipStyle is a sparse set of visual properties for
// relationships. An empty Selector renders a bare relationship rule
// applying to all relationships; a set Selector (including the
// implicit "Relationship" tag) is always emitted. Dashed is tri-state:
// nil means unset.
type RelationshipStyle struct {
	Selector  string
	Thickness string
	Color     string
	Router    string
	Dashed    *bool
}

// writeStyles emits the styles block. Rules render in addition order,
// element styles before relationship styles, and only explicitly set
// properties appear.
func (s *Serializer) writeStyles(w *Writer) {
	w.Block("styles", func() {
		for _, st := range s.elementStyles {
			w.Block(fmt.Sprintf("element \"%s\"", escape(st.Selector)), func() {
				writeProperty(w, "background", st.Background)
				writeProperty(w, "color", st.Color)
				writeProperty(w, "shape", st.Shape)
				writeProperty(w, "size", st.Size)
				writeProperty(w, "stroke", st.Stroke)
				writeProperty(w, "strokeWidth", st.StrokeWidth)
			})
		}
		for _, st := range s.relationshipStyles {
			header := "relationship"
			if st.Selector != "" {
				header = fmt.Sprintf("relationship \"%s\"", escape(st.Selector))
			}
			w.Block(header, func() {
				writeProperty(w, "thickness", st.Thickness)
				writeProperty(w, "color", st.Color)
				writeProperty(w, "router", st.Router)
				if st.Dashed != nil {
					w.Line("dashed " + strconv.FormatBool(*st.Dashed))
				}
			})
		}
	})
}

func writeProperty(w *Writer, key, value string) {
	if value != "" {
		w.Line(key + " " + value)
	}
}
