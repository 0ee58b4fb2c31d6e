package dsl

import (
	"fmt"
	"strings"
)

// Wildcard targets or includes every element.
const Wildcard = "*"

// ViewType selects the kind of diagram a view declares.
type ViewType int

const (
	ViewSystemContext ViewType = iota
	ViewContainer
	ViewComponent
	ViewSystemLandscape
	ViewFiltered
	ViewDynamic
	ViewDeployment
	ViewCustom
)

// String returns the DSL keyword for the view type.
func (t ViewType) String() string {
	switch t {
	case ViewSystemContext:
		return "systemContext"
	case ViewContainer:
		return "container"
	case ViewComponent:
		return "component"
	case ViewSystemLandscape:
		return "systemLandscape"
	case ViewFiltered:
		return "filtered"
	case ViewDynamic:
		return "dynamic"
	case ViewDeployment:
		return "deployment"
	default:
		return "custom"
	}
}

// ViewConfiguration declares one view. Target is an element identifier
// or hierarchical path, or [Wildcard]; it is ignored for
// [ViewSystemLandscape], which takes no scoping element. Include
// defaults to a single wildcard when empty.
type ViewConfiguration struct {
	Type    ViewType
	Target  string
	Title   string
	Include []string
	Exclude []string
}

// header formats the view declaration line. Spaces in the title are
// replaced with underscores to keep the view key valid.
func (v ViewConfiguration) header() string {
	title := escape(strings.ReplaceAll(v.Title, " ", "_"))
	if v.Type == ViewSystemLandscape {
		return fmt.Sprintf("%s \"%s\"", v.Type, title)
	}
	return fmt.Sprintf("%s %s \"%s\"", v.Type, v.Target, title)
}

// writeViews emits the views block: each view in addition order, then
// the styles block when any styles were added.
func (s *Serializer) writeViews(w *Writer) {
	w.Block("views", func() {
		for _, v := range s.views {
			w.Block(v.header(), func() {
				includes := v.Include
				if len(includes) == 0 {
					includes = []string{Wildcard}
				}
				for _, in := range includes {
					w.Line("include " + in)
				}
				for _, ex := range v.Exclude {
					w.Line("exclude " + ex)
				}
			})
		}
		if s.hasStyles() {
			if len(s.views) > 0 {
				w.Blank()
			}
			s.writeStyles(w)
		}
	})
}
