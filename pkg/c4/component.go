package c4

import (
	"fmt"

	"github.com/google/uuid"
)

// ComponentSpec configures a new Component.
type ComponentSpec struct {
	Name             string
	Description      string
	Technology       string
	Responsibilities []string
	CodeElements     []*CodeElement
}

// Component is a grouping of related functionality inside a container.
// It exclusively owns its code elements.
type Component struct {
	ref              uuid.UUID
	name             string
	description      string
	technology       string
	responsibilities []string
	codeElements     []*CodeElement
}

// NewComponent validates spec and returns an immutable Component.
func NewComponent(spec ComponentSpec) (*Component, error) {
	if err := requireText("component name", spec.Name, MaxNameLength); err != nil {
		return nil, err
	}
	if err := requireText("component description", spec.Description, MaxDescriptionLength); err != nil {
		return nil, err
	}
	if err := limitText("component technology", spec.Technology, MaxTechnologyLength); err != nil {
		return nil, err
	}
	for i, r := range spec.Responsibilities {
		field := fmt.Sprintf("component responsibility[%d]", i)
		if err := requireText(field, r, MaxResponsibilityLength); err != nil {
			return nil, err
		}
	}
	responsibilities := make([]string, len(spec.Responsibilities))
	copy(responsibilities, spec.Responsibilities)
	codeElements := make([]*CodeElement, len(spec.CodeElements))
	copy(codeElements, spec.CodeElements)
	return &Component{
		ref:              uuid.New(),
		name:             spec.Name,
		description:      spec.Description,
		technology:       spec.Technology,
		responsibilities: responsibilities,
		codeElements:     codeElements,
	}, nil
}

func (c *Component) Ref() uuid.UUID      { return c.ref }
func (c *Component) Name() string        { return c.name }
func (c *Component) Description() string { return c.description }
func (c *Component) Type() ElementType   { return TypeComponent }
func (c *Component) Technology() string  { return c.technology }

// Responsibilities returns the component's documented responsibilities.
func (c *Component) Responsibilities() []string { return c.responsibilities }

// CodeElements returns the owned code elements in declaration order.
// The returned slice must not be modified.
func (c *Component) CodeElements() []*CodeElement { return c.codeElements }
