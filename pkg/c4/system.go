package c4

import "github.com/google/uuid"

// SoftwareSystemSpec configures a new SoftwareSystem. Containers are
// owned exclusively by the system and keep their slice order.
type SoftwareSystemSpec struct {
	Name        string
	Description string
	Location    Location
	Containers  []*Container
}

// SoftwareSystem is a top-level system in the model. It exclusively
// owns its containers.
type SoftwareSystem struct {
	ref         uuid.UUID
	name        string
	description string
	location    Location
	containers  []*Container
}

// NewSoftwareSystem validates spec and returns an immutable system.
func NewSoftwareSystem(spec SoftwareSystemSpec) (*SoftwareSystem, error) {
	if err := requireText("software system name", spec.Name, MaxNameLength); err != nil {
		return nil, err
	}
	if err := requireText("software system description", spec.Description, MaxDescriptionLength); err != nil {
		return nil, err
	}
	containers := make([]*Container, len(spec.Containers))
	copy(containers, spec.Containers)
	return &SoftwareSystem{
		ref:         uuid.New(),
		name:        spec.Name,
		description: spec.Description,
		location:    spec.Location,
		containers:  containers,
	}, nil
}

func (s *SoftwareSystem) Ref() uuid.UUID      { return s.ref }
func (s *SoftwareSystem) Name() string        { return s.name }
func (s *SoftwareSystem) Description() string { return s.description }
func (s *SoftwareSystem) Type() ElementType   { return TypeSoftwareSystem }
func (s *SoftwareSystem) Location() Location  { return s.location }

// Containers returns the owned containers in declaration order.
// The returned slice must not be modified.
func (s *SoftwareSystem) Containers() []*Container { return s.containers }
