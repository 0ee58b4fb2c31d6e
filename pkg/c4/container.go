package c4

import "github.com/google/uuid"

// ContainerSpec configures a new Container.
type ContainerSpec struct {
	Name          string
	Description   string
	ContainerType ContainerType
	Technology    string
	Components    []*Component
}

// Container is a deployable or runnable unit within a software system.
// It exclusively owns its components.
type Container struct {
	ref           uuid.UUID
	name          string
	description   string
	containerType ContainerType
	technology    string
	components    []*Component
}

// NewContainer validates spec and returns an immutable Container.
func NewContainer(spec ContainerSpec) (*Container, error) {
	if err := requireText("container name", spec.Name, MaxNameLength); err != nil {
		return nil, err
	}
	if err := requireText("container description", spec.Description, MaxDescriptionLength); err != nil {
		return nil, err
	}
	if err := limitText("container technology", spec.Technology, MaxTechnologyLength); err != nil {
		return nil, err
	}
	components := make([]*Component, len(spec.Components))
	copy(components, spec.Components)
	return &Container{
		ref:           uuid.New(),
		name:          spec.Name,
		description:   spec.Description,
		containerType: spec.ContainerType,
		technology:    spec.Technology,
		components:    components,
	}, nil
}

func (c *Container) Ref() uuid.UUID               { return c.ref }
func (c *Container) Name() string                 { return c.name }
func (c *Container) Description() string          { return c.description }
func (c *Container) Type() ElementType            { return TypeContainer }
func (c *Container) ContainerType() ContainerType { return c.containerType }
func (c *Container) Technology() string           { return c.technology }

// Components returns the owned components in declaration order.
// The returned slice must not be modified.
func (c *Container) Components() []*Component { return c.components }
