package c4

import "github.com/google/uuid"

// Field length limits enforced by the constructors.
const (
	MaxNameLength           = 255
	MaxDescriptionLength    = 1000
	MaxTechnologyLength     = 255
	MaxLanguageLength       = 255
	MaxFilePathLength       = 512
	MaxResponsibilityLength = 500
)

// ElementType identifies the C4 hierarchy level of an element.
type ElementType int

const (
	TypePerson ElementType = iota
	TypeSoftwareSystem
	TypeContainer
	TypeComponent
	TypeCodeElement
)

// String returns the display name of the element type, which is also
// the selector used by element styles.
func (t ElementType) String() string {
	switch t {
	case TypePerson:
		return "Person"
	case TypeSoftwareSystem:
		return "SoftwareSystem"
	case TypeContainer:
		return "Container"
	case TypeComponent:
		return "Component"
	case TypeCodeElement:
		return "CodeElement"
	default:
		return "Unknown"
	}
}

// Location marks an element as part of the modeled enterprise or
// external to it. External elements are tagged in the DSL output.
type Location int

const (
	Internal Location = iota
	External
)

func (l Location) String() string {
	if l == External {
		return "External"
	}
	return "Internal"
}

// ContainerType classifies the deployable/runnable unit a container
// represents.
type ContainerType int

const (
	WebApplication ContainerType = iota
	DesktopApplication
	MobileApplication
	Database
	FileSystem
	API
	MessageBus
	OtherContainer
)

func (t ContainerType) String() string {
	switch t {
	case WebApplication:
		return "Web Application"
	case DesktopApplication:
		return "Desktop Application"
	case MobileApplication:
		return "Mobile Application"
	case Database:
		return "Database"
	case FileSystem:
		return "File System"
	case API:
		return "API"
	case MessageBus:
		return "Message Bus"
	default:
		return "Other"
	}
}

// CodeType classifies a code-level element.
type CodeType int

const (
	Class CodeType = iota
	Struct
	Function
	Interface
	Module
	Enum
)

func (t CodeType) String() string {
	switch t {
	case Class:
		return "Class"
	case Struct:
		return "Struct"
	case Function:
		return "Function"
	case Interface:
		return "Interface"
	case Module:
		return "Module"
	default:
		return "Enum"
	}
}

// Interaction describes how a relationship's source communicates with
// its target.
type Interaction int

const (
	Synchronous Interaction = iota
	Asynchronous
)

func (i Interaction) String() string {
	if i == Asynchronous {
		return "Asynchronous"
	}
	return "Synchronous"
}

// Element is implemented by all five C4 element kinds. Elements are
// immutable once constructed; the ref returned by Ref is a stable
// opaque identity used to key identifier assignments.
type Element interface {
	Ref() uuid.UUID
	Name() string
	Description() string
	Type() ElementType
}
