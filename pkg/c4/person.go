package c4

import "github.com/google/uuid"

// PersonSpec configures a new Person. Name and Description are
// required; the zero Location is Internal.
type PersonSpec struct {
	Name        string
	Description string
	Location    Location
	Technology  string
}

// Person is a human actor at the context level of the model.
type Person struct {
	ref         uuid.UUID
	name        string
	description string
	location    Location
	technology  string
}

// NewPerson validates spec and returns an immutable Person.
func NewPerson(spec PersonSpec) (*Person, error) {
	if err := requireText("person name", spec.Name, MaxNameLength); err != nil {
		return nil, err
	}
	if err := requireText("person description", spec.Description, MaxDescriptionLength); err != nil {
		return nil, err
	}
	if err := limitText("person technology", spec.Technology, MaxTechnologyLength); err != nil {
		return nil, err
	}
	return &Person{
		ref:         uuid.New(),
		name:        spec.Name,
		description: spec.Description,
		location:    spec.Location,
		technology:  spec.Technology,
	}, nil
}

func (p *Person) Ref() uuid.UUID      { return p.ref }
func (p *Person) Name() string        { return p.name }
func (p *Person) Description() string { return p.description }
func (p *Person) Type() ElementType   { return TypePerson }
func (p *Person) Location() Location  { return p.location }
func (p *Person) Technology() string  { return p.technology }
