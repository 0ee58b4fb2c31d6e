package dsl

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/c4kit/c4kit/pkg/c4"
)

// maxIDAttempts bounds the collision counter. Purely defensive: a
// workspace would need over a million same-named elements to hit it.
const maxIDAttempts = 1 << 20

// assignment is the identifier record for a single element: its local
// token and the full dot-joined path used for DSL addressing.
type assignment struct {
	id   string
	path string
}

// index maps every element in the workspace to its assigned identifier
// and resolves reference strings (identifiers or hierarchical paths)
// back to elements. It is built by a pre-order walk of the element
// forest, so identifier assignment depends only on insertion order and
// names.
type index struct {
	byRef  map[uuid.UUID]assignment
	byPath map[string]c4.Element
	used   map[string]struct{}
}

func newIndex() *index {
	return &index{
		byRef:  make(map[uuid.UUID]assignment),
		byPath: make(map[string]c4.Element),
		used:   make(map[string]struct{}),
	}
}

// resolve reports whether ref names an assigned identifier or path.
func (x *index) resolve(ref string) bool {
	_, ok := x.byPath[ref]
	return ok
}

// add assigns a unique identifier to el and records its path under
// parentPath ("" for roots). The path of a nested element is the
// parent's path joined with the element's own token by a dot.
func (x *index) add(el c4.Element, parentPath string) (string, error) {
	id, err := x.unique(el.Name())
	if err != nil {
		return "", err
	}
	path := id
	if parentPath != "" {
		path = parentPath + "." + id
	}
	x.byRef[el.Ref()] = assignment{id: id, path: path}
	x.byPath[path] = el
	return path, nil
}

// unique derives a candidate token from name and suffixes an increasing
// counter until the token is unused. The first element with a given
// candidate keeps the bare form; later collisions take candidate1,
// candidate2, and so on, in assignment order.
func (x *index) unique(name string) (string, error) {
	base := candidateID(name)
	id := base
	for n := 1; ; n++ {
		if _, taken := x.used[id]; !taken {
			break
		}
		if n > maxIDAttempts {
			return "", fmt.Errorf("identifier for %q: %w", name, ErrIdentifierSpaceExhausted)
		}
		id = base + strconv.Itoa(n)
	}
	x.used[id] = struct{}{}
	return id, nil
}

// candidateID builds the identifier candidate for a display name: the
// lowercased first rune of each whitespace-separated word. An acronym
// word (two or more runes, all uppercase) contributes the whole word,
// so "API" becomes "api" rather than "a".
func candidateID(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		if len(runes) >= 2 && allUpper(runes) {
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteRune(unicode.ToLower(runes[0]))
	}
	return b.String()
}

func allUpper(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
