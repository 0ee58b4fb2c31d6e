package dsl

import (
	"fmt"
	"strings"

	"github.com/c4kit/c4kit/pkg/c4"
)

// Defaults used when the workspace header was not configured.
const (
	defaultWorkspaceName        = "Name"
	defaultWorkspaceDescription = "Description"
)

// Serializer accumulates a workspace and renders it as Structurizr DSL.
// All With/Add methods return the receiver for chaining. The facade is
// single-use: after [Serializer.Serialize] runs, further mutation is
// ignored and recorded as a usage error (see [Serializer.Err]), and a
// second Serialize returns [ErrSerializerConsumed].
//
// Serializer is not safe for concurrent use.
type Serializer struct {
	name        string
	description string

	// roots holds persons and software systems in the order they were
	// added. Identifier assignment follows this order.
	roots              []c4.Element
	relationships      []*c4.Relationship
	views              []ViewConfiguration
	elementStyles      []ElementStyle
	relationshipStyles []RelationshipStyle

	consumed bool
	misused  bool
}

// NewSerializer returns an empty serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// WithName sets the workspace name.
func (s *Serializer) WithName(name string) *Serializer {
	if s.guard() {
		s.name = name
	}
	return s
}

// WithDescription sets the workspace description.
func (s *Serializer) WithDescription(description string) *Serializer {
	if s.guard() {
		s.description = description
	}
	return s
}

// AddPerson adds a person to the model.
func (s *Serializer) AddPerson(p *c4.Person) *Serializer {
	if s.guard() {
		s.roots = append(s.roots, p)
	}
	return s
}

// AddSoftwareSystem adds a software system, including its owned
// containers, components, and code elements.
func (s *Serializer) AddSoftwareSystem(sys *c4.SoftwareSystem) *Serializer {
	if s.guard() {
		s.roots = append(s.roots, sys)
	}
	return s
}

// AddRelationship adds a relationship. Endpoints are resolved against
// the identifier map when Serialize runs, so the referenced elements
// may be added later.
func (s *Serializer) AddRelationship(r *c4.Relationship) *Serializer {
	if s.guard() {
		s.relationships = append(s.relationships, r)
	}
	return s
}

// AddView adds a view configuration.
func (s *Serializer) AddView(v ViewConfiguration) *Serializer {
	if s.guard() {
		s.views = append(s.views, v)
	}
	return s
}

// AddElementStyle adds an element style rule.
func (s *Serializer) AddElementStyle(st ElementStyle) *Serializer {
	if s.guard() {
		s.elementStyles = append(s.elementStyles, st)
	}
	return s
}

// AddRelationshipStyle adds a relationship style rule.
func (s *Serializer) AddRelationshipStyle(st RelationshipStyle) *Serializer {
	if s.guard() {
		s.relationshipStyles = append(s.relationshipStyles, st)
	}
	return s
}

// guard reports whether the serializer may still be mutated, recording
// a usage error otherwise.
func (s *Serializer) guard() bool {
	if s.consumed {
		s.misused = true
		return false
	}
	return true
}

// Err returns [ErrSerializerConsumed] if any mutation was attempted
// after Serialize, and nil otherwise.
func (s *Serializer) Err() error {
	if s.misused {
		return ErrSerializerConsumed
	}
	return nil
}

// Serialize consumes the facade and returns the complete DSL document.
// The first pass assigns identifiers over the full element forest and
// validates every reference and quoted value; the second pass emits
// text. On error no partial document is returned.
func (s *Serializer) Serialize() (string, error) {
	if s.consumed {
		return "", ErrSerializerConsumed
	}
	s.consumed = true

	idx, err := s.assign()
	if err != nil {
		return "", err
	}
	if err := s.check(idx); err != nil {
		return "", err
	}

	name := s.name
	if name == "" {
		name = defaultWorkspaceName
	}
	description := s.description
	if description == "" {
		description = defaultWorkspaceDescription
	}

	w := NewWriter()
	header := fmt.Sprintf("workspace \"%s\" \"%s\"", escape(name), escape(description))
	w.Block(header, func() {
		w.Line("!identifiers hierarchical")
		w.Blank()
		s.writeModel(w, idx)
		if len(s.views) > 0 || s.hasStyles() {
			w.Blank()
			s.writeViews(w)
		}
	})
	return w.String(), nil
}

func (s *Serializer) hasStyles() bool {
	return len(s.elementStyles) > 0 || len(s.relationshipStyles) > 0
}

// assign performs the identifier pass: a pre-order depth-first walk of
// the element forest, roots in facade insertion order, children in
// builder insertion order.
func (s *Serializer) assign() (*index, error) {
	idx := newIndex()
	for _, root := range s.roots {
		if err := assignElement(idx, root, ""); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func assignElement(idx *index, el c4.Element, parentPath string) error {
	path, err := idx.add(el, parentPath)
	if err != nil {
		return err
	}
	switch e := el.(type) {
	case *c4.SoftwareSystem:
		for _, child := range e.Containers() {
			if err := assignElement(idx, child, path); err != nil {
				return err
			}
		}
	case *c4.Container:
		for _, child := range e.Components() {
			if err := assignElement(idx, child, path); err != nil {
				return err
			}
		}
	case *c4.Component:
		for _, child := range e.CodeElements() {
			if err := assignElement(idx, child, path); err != nil {
				return err
			}
		}
	}
	return nil
}

// check validates everything that can fail before emission starts:
// quoted values must be single-line, and every relationship endpoint
// and view target must resolve against the identifier map.
func (s *Serializer) check(idx *index) error {
	if err := checkText("workspace name", s.name); err != nil {
		return err
	}
	if err := checkText("workspace description", s.description); err != nil {
		return err
	}
	for _, root := range s.roots {
		if err := checkElementText(root); err != nil {
			return err
		}
	}
	for _, r := range s.relationships {
		if err := checkText("relationship description", r.Description()); err != nil {
			return err
		}
		if err := checkText("relationship technology", r.Technology()); err != nil {
			return err
		}
		if !idx.resolve(r.Source()) {
			return fmt.Errorf("relationship source %q: %w", r.Source(), ErrUnknownReference)
		}
		if !idx.resolve(r.Target()) {
			return fmt.Errorf("relationship target %q: %w", r.Target(), ErrUnknownReference)
		}
	}
	for _, v := range s.views {
		if err := checkText("view title", v.Title); err != nil {
			return err
		}
		for _, in := range v.Include {
			if err := checkText("view include", in); err != nil {
				return err
			}
		}
		for _, ex := range v.Exclude {
			if err := checkText("view exclude", ex); err != nil {
				return err
			}
		}
		if v.Type == ViewSystemLandscape || v.Target == Wildcard {
			continue
		}
		if !idx.resolve(v.Target) {
			return fmt.Errorf("view target %q: %w", v.Target, ErrUnknownReference)
		}
	}
	for _, st := range s.elementStyles {
		if err := checkText("element style selector", st.Selector); err != nil {
			return err
		}
		for _, value := range []string{st.Background, st.Color, st.Shape, st.Size, st.Stroke, st.StrokeWidth} {
			if err := checkText("element style property", value); err != nil {
				return err
			}
		}
	}
	for _, st := range s.relationshipStyles {
		if err := checkText("relationship style selector", st.Selector); err != nil {
			return err
		}
		for _, value := range []string{st.Thickness, st.Color, st.Router} {
			if err := checkText("relationship style property", value); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkElementText(el c4.Element) error {
	if err := checkText("element name", el.Name()); err != nil {
		return err
	}
	if err := checkText("element description", el.Description()); err != nil {
		return err
	}
	if err := checkText("element technology", technologyOf(el)); err != nil {
		return err
	}
	switch e := el.(type) {
	case *c4.SoftwareSystem:
		for _, child := range e.Containers() {
			if err := checkElementText(child); err != nil {
				return err
			}
		}
	case *c4.Container:
		for _, child := range e.Components() {
			if err := checkElementText(child); err != nil {
				return err
			}
		}
	case *c4.Component:
		for _, child := range e.CodeElements() {
			if err := checkElementText(child); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkText(field, value string) error {
	if strings.ContainsAny(value, "\n\r") {
		return fmt.Errorf("%s: %w", field, ErrInvalidText)
	}
	return nil
}
