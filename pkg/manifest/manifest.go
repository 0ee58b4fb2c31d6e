// Package manifest loads workspace definition files and turns them
// into a ready-to-run dsl.Serializer.
//
// Definitions are plain TOML or JSON documents describing the
// workspace metadata, the element forest, relationships, views, and
// styles. All element content passes through the validated c4
// constructors, so a manifest can never produce a model the
// serializer would reject on structural grounds.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/c4kit/c4kit/pkg/c4"
	"github.com/c4kit/c4kit/pkg/dsl"
)

// ErrUnsupportedFormat is returned by [Load] for file extensions other
// than .toml and .json.
var ErrUnsupportedFormat = errors.New("unsupported manifest format")

// Workspace is the wire representation of a workspace definition.
type Workspace struct {
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description"`

	Persons       []Person       `toml:"person" json:"persons,omitempty"`
	Systems       []System       `toml:"system" json:"systems,omitempty"`
	Relationships []Relationship `toml:"relationship" json:"relationships,omitempty"`
	Views         []View         `toml:"view" json:"views,omitempty"`

	ElementStyles      []ElementStyle      `toml:"element_style" json:"element_styles,omitempty"`
	RelationshipStyles []RelationshipStyle `toml:"relationship_style" json:"relationship_styles,omitempty"`
}

type Person struct {
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description"`
	Location    string `toml:"location" json:"location,omitempty"`
	Technology  string `toml:"technology" json:"technology,omitempty"`
}

type System struct {
	Name        string      `toml:"name" json:"name"`
	Description string      `toml:"description" json:"description"`
	Location    string      `toml:"location" json:"location,omitempty"`
	Containers  []Container `toml:"container" json:"containers,omitempty"`
}

type Container struct {
	Name        string      `toml:"name" json:"name"`
	Description string      `toml:"description" json:"description"`
	Type        string      `toml:"type" json:"type,omitempty"`
	Technology  string      `toml:"technology" json:"technology,omitempty"`
	Components  []Component `toml:"component" json:"components,omitempty"`
}

type Component struct {
	Name             string        `toml:"name" json:"name"`
	Description      string        `toml:"description" json:"description"`
	Technology       string        `toml:"technology" json:"technology,omitempty"`
	Responsibilities []string      `toml:"responsibilities" json:"responsibilities,omitempty"`
	CodeElements     []CodeElement `toml:"code" json:"code_elements,omitempty"`
}

type CodeElement struct {
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description"`
	Type        string `toml:"type" json:"type,omitempty"`
	Language    string `toml:"language" json:"language,omitempty"`
	FilePath    string `toml:"file_path" json:"file_path,omitempty"`
}

type Relationship struct {
	Source      string `toml:"source" json:"source"`
	Target      string `toml:"target" json:"target"`
	Description string `toml:"description" json:"description"`
	Technology  string `toml:"technology" json:"technology,omitempty"`
	Interaction string `toml:"interaction" json:"interaction,omitempty"`
}

type View struct {
	Type    string   `toml:"type" json:"type"`
	Target  string   `toml:"target" json:"target,omitempty"`
	Title   string   `toml:"title" json:"title"`
	Include []string `toml:"include" json:"include,omitempty"`
	Exclude []string `toml:"exclude" json:"exclude,omitempty"`
}

type ElementStyle struct {
	Selector    string `toml:"selector" json:"selector"`
	Background  string `toml:"background" json:"background,omitempty"`
	Color       string `toml:"color" json:"color,omitempty"`
	Shape       string `toml:"shape" json:"shape,omitempty"`
	Size        string `toml:"size" json:"size,omitempty"`
	Stroke      string `toml:"stroke" json:"stroke,omitempty"`
	StrokeWidth string `toml:"stroke_width" json:"stroke_width,omitempty"`
}

type RelationshipStyle struct {
	Selector  string `toml:"selector" json:"selector,omitempty"`
	Thickness string `toml:"thickness" json:"thickness,omitempty"`
	Color     string `toml:"color" json:"color,omitempty"`
	Router    string `toml:"router" json:"router,omitempty"`
	Dashed    *bool  `toml:"dashed" json:"dashed,omitempty"`
}

// Load reads a workspace definition from path, choosing the decoder by
// file extension (.toml or .json).
func Load(path string) (*Workspace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return DecodeTOML(f)
	case ".json":
		return DecodeJSON(f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// DecodeTOML decodes a TOML workspace definition.
func DecodeTOML(r io.Reader) (*Workspace, error) {
	var ws Workspace
	if _, err := toml.NewDecoder(r).Decode(&ws); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return &ws, nil
}

// DecodeJSON decodes a JSON workspace definition.
func DecodeJSON(r io.Reader) (*Workspace, error) {
	var ws Workspace
	if err := json.NewDecoder(r).Decode(&ws); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &ws, nil
}

// Serializer builds the c4 model through the validated constructors
// and returns a serializer loaded with everything the definition
// declares. Content errors (blank names, unknown enum tokens, length
// violations) surface here, before serialization.
func (ws *Workspace) Serializer() (*dsl.Serializer, error) {
	s := dsl.NewSerializer().
		WithName(ws.Name).
		WithDescription(ws.Description)

	for _, p := range ws.Persons {
		location, err := parseLocation(p.Location)
		if err != nil {
			return nil, fmt.Errorf("person %q: %w", p.Name, err)
		}
		person, err := c4.NewPerson(c4.PersonSpec{
			Name:        p.Name,
			Description: p.Description,
			Location:    location,
			Technology:  p.Technology,
		})
		if err != nil {
			return nil, err
		}
		s.AddPerson(person)
	}

	for _, sys := range ws.Systems {
		system, err := buildSystem(sys)
		if err != nil {
			return nil, err
		}
		s.AddSoftwareSystem(system)
	}

	for _, r := range ws.Relationships {
		interaction, err := parseInteraction(r.Interaction)
		if err != nil {
			return nil, fmt.Errorf("relationship %s -> %s: %w", r.Source, r.Target, err)
		}
		rel, err := c4.NewRelationship(c4.RelationshipSpec{
			Source:      r.Source,
			Target:      r.Target,
			Description: r.Description,
			Technology:  r.Technology,
			Interaction: interaction,
		})
		if err != nil {
			return nil, err
		}
		s.AddRelationship(rel)
	}

	for _, v := range ws.Views {
		viewType, err := parseViewType(v.Type)
		if err != nil {
			return nil, fmt.Errorf("view %q: %w", v.Title, err)
		}
		s.AddView(dsl.ViewConfiguration{
			Type:    viewType,
			Target:  v.Target,
			Title:   v.Title,
			Include: v.Include,
			Exclude: v.Exclude,
		})
	}

	for _, st := range ws.ElementStyles {
		s.AddElementStyle(dsl.ElementStyle{
			Selector:    st.Selector,
			Background:  st.Background,
			Color:       st.Color,
			Shape:       st.Shape,
			Size:        st.Size,
			Stroke:      st.Stroke,
			StrokeWidth: st.StrokeWidth,
		})
	}
	for _, st := range ws.RelationshipStyles {
		s.AddRelationshipStyle(dsl.RelationshipStyle{
			Selector:  st.Selector,
			Thickness: st.Thickness,
			Color:     st.Color,
			Router:    st.Router,
			Dashed:    st.Dashed,
		})
	}

	return s, nil
}

func buildSystem(sys System) (*c4.SoftwareSystem, error) {
	location, err := parseLocation(sys.Location)
	if err != nil {
		return nil, fmt.Errorf("system %q: %w", sys.Name, err)
	}
	containers := make([]*c4.Container, 0, len(sys.Containers))
	for _, cn := range sys.Containers {
		container, err := buildContainer(cn)
		if err != nil {
			return nil, fmt.Errorf("system %q: %w", sys.Name, err)
		}
		containers = append(containers, container)
	}
	return c4.NewSoftwareSystem(c4.SoftwareSystemSpec{
		Name:        sys.Name,
		Description: sys.Description,
		Location:    location,
		Containers:  containers,
	})
}

func buildContainer(cn Container) (*c4.Container, error) {
	containerType, err := parseContainerType(cn.Type)
	if err != nil {
		return nil, fmt.Errorf("container %q: %w", cn.Name, err)
	}
	components := make([]*c4.Component, 0, len(cn.Components))
	for _, cm := range cn.Components {
		component, err := buildComponent(cm)
		if err != nil {
			return nil, fmt.Errorf("container %q: %w", cn.Name, err)
		}
		components = append(components, component)
	}
	return c4.NewContainer(c4.ContainerSpec{
		Name:          cn.Name,
		Description:   cn.Description,
		ContainerType: containerType,
		Technology:    cn.Technology,
		Components:    components,
	})
}

func buildComponent(cm Component) (*c4.Component, error) {
	codeElements := make([]*c4.CodeElement, 0, len(cm.CodeElements))
	for _, ce := range cm.CodeElements {
		codeType, err := parseCodeType(ce.Type)
		if err != nil {
			return nil, fmt.Errorf("code element %q: %w", ce.Name, err)
		}
		code, err := c4.NewCodeElement(c4.CodeElementSpec{
			Name:        ce.Name,
			Description: ce.Description,
			CodeType:    codeType,
			Language:    ce.Language,
			FilePath:    ce.FilePath,
		})
		if err != nil {
			return nil, err
		}
		codeElements = append(codeElements, code)
	}
	return c4.NewComponent(c4.ComponentSpec{
		Name:             cm.Name,
		Description:      cm.Description,
		Technology:       cm.Technology,
		Responsibilities: cm.Responsibilities,
		CodeElements:     codeElements,
	})
}
