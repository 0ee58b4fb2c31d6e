package c4

// RelationshipSpec configures a new Relationship. Source and Target
// are element identifiers (hierarchical paths for nested elements),
// resolved against the identifier map at serialization time.
type RelationshipSpec struct {
	Source      string
	Target      string
	Description string
	Technology  string
	Interaction Interaction
}

// Relationship is a non-owning, directed reference between two
// elements. Endpoints are held as identifiers, never as element
// values, so a relationship can be declared before both elements
// exist in the model.
type Relationship struct {
	source      string
	target      string
	description string
	technology  string
	interaction Interaction
}

// NewRelationship validates spec and returns an immutable Relationship.
func NewRelationship(spec RelationshipSpec) (*Relationship, error) {
	if err := requireText("relationship source", spec.Source, MaxNameLength); err != nil {
		return nil, err
	}
	if err := requireText("relationship target", spec.Target, MaxNameLength); err != nil {
		return nil, err
	}
	if err := requireText("relationship description", spec.Description, MaxDescriptionLength); err != nil {
		return nil, err
	}
	if err := limitText("relationship technology", spec.Technology, MaxTechnologyLength); err != nil {
		return nil, err
	}
	return &Relationship{
		source:      spec.Source,
		target:      spec.Target,
		description: spec.Description,
		technology:  spec.Technology,
		interaction: spec.Interaction,
	}, nil
}

func (r *Relationship) Source() string           { return r.source }
func (r *Relationship) Target() string           { return r.target }
func (r *Relationship) Description() string      { return r.description }
func (r *Relationship) Technology() string       { return r.technology }
func (r *Relationship) Interaction() Interaction { return r.interaction }
