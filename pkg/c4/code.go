package c4

import "github.com/google/uuid"

// CodeElementSpec configures a new CodeElement.
type CodeElementSpec struct {
	Name        string
	Description string
	CodeType    CodeType
	Language    string
	FilePath    string
}

// CodeElement is a code-level building block: a class, struct,
// function, interface, module, or enum.
type CodeElement struct {
	ref         uuid.UUID
	name        string
	description string
	codeType    CodeType
	language    string
	filePath    string
}

// NewCodeElement validates spec and returns an immutable CodeElement.
func NewCodeElement(spec CodeElementSpec) (*CodeElement, error) {
	if err := requireText("code element name", spec.Name, MaxNameLength); err != nil {
		return nil, err
	}
	if err := requireText("code element description", spec.Description, MaxDescriptionLength); err != nil {
		return nil, err
	}
	if err := limitText("code element language", spec.Language, MaxLanguageLength); err != nil {
		return nil, err
	}
	if err := limitText("code element file path", spec.FilePath, MaxFilePathLength); err != nil {
		return nil, err
	}
	return &CodeElement{
		ref:         uuid.New(),
		name:        spec.Name,
		description: spec.Description,
		codeType:    spec.CodeType,
		language:    spec.Language,
		filePath:    spec.FilePath,
	}, nil
}

func (c *CodeElement) Ref() uuid.UUID      { return c.ref }
func (c *CodeElement) Name() string        { return c.name }
func (c *CodeElement) Description() string { return c.description }
func (c *CodeElement) Type() ElementType   { return TypeCodeElement }
func (c *CodeElement) CodeType() CodeType  { return c.codeType }
func (c *CodeElement) Language() string    { return c.language }
func (c *CodeElement) FilePath() string    { return c.filePath }
