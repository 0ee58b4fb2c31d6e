package manifest

import (
	"errors"
	"fmt"

	"github.com/c4kit/c4kit/pkg/c4"
	"github.com/c4kit/c4kit/pkg/dsl"
)

// ErrUnknownToken is returned when an enum field holds a value outside
// its supported token set.
var ErrUnknownToken = errors.New("unknown token")

// parseLocation maps "internal" (or empty) and "external".
func parseLocation(s string) (c4.Location, error) {
	switch s {
	case "", "internal":
		return c4.Internal, nil
	case "external":
		return c4.External, nil
	default:
		return c4.Internal, fmt.Errorf("location %q: %w", s, ErrUnknownToken)
	}
}

func parseInteraction(s string) (c4.Interaction, error) {
	switch s {
	case "", "synchronous":
		return c4.Synchronous, nil
	case "asynchronous":
		return c4.Asynchronous, nil
	default:
		return c4.Synchronous, fmt.Errorf("interaction %q: %w", s, ErrUnknownToken)
	}
}

var containerTypes = map[string]c4.ContainerType{
	"webApplication":     c4.WebApplication,
	"desktopApplication": c4.DesktopApplication,
	"mobileApplication":  c4.MobileApplication,
	"database":           c4.Database,
	"fileSystem":         c4.FileSystem,
	"api":                c4.API,
	"messageBus":         c4.MessageBus,
	"other":              c4.OtherContainer,
}

func parseContainerType(s string) (c4.ContainerType, error) {
	if s == "" {
		return c4.OtherContainer, nil
	}
	if t, ok := containerTypes[s]; ok {
		return t, nil
	}
	return c4.OtherContainer, fmt.Errorf("container type %q: %w", s, ErrUnknownToken)
}

var codeTypes = map[string]c4.CodeType{
	"class":     c4.Class,
	"struct":    c4.Struct,
	"function":  c4.Function,
	"interface": c4.Interface,
	"module":    c4.Module,
	"enum":      c4.Enum,
}

func parseCodeType(s string) (c4.CodeType, error) {
	if s == "" {
		return c4.Class, nil
	}
	if t, ok := codeTypes[s]; ok {
		return t, nil
	}
	return c4.Class, fmt.Errorf("code type %q: %w", s, ErrUnknownToken)
}

var viewTypes = map[string]dsl.ViewType{
	"systemContext":   dsl.ViewSystemContext,
	"container":       dsl.ViewContainer,
	"component":       dsl.ViewComponent,
	"systemLandscape": dsl.ViewSystemLandscape,
	"filtered":        dsl.ViewFiltered,
	"dynamic":         dsl.ViewDynamic,
	"deployment":      dsl.ViewDeployment,
	"custom":          dsl.ViewCustom,
}

func parseViewType(s string) (dsl.ViewType, error) {
	if t, ok := viewTypes[s]; ok {
		return t, nil
	}
	return dsl.ViewSystemContext, fmt.Errorf("view type %q: %w", s, ErrUnknownToken)
}
