package dsl

import (
	"errors"
	"strconv"
	"testing"
)

func TestCandidateID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"User", "u"},
		{"System", "s"},
		{"Software System", "ss"},
		{"Web Application", "wa"},
		{"Database Schema", "ds"},
		{"API", "api"},
		{"API Service", "apis"},
		{"a", "a"},
		{"  spaced   out  ", "so"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := candidateID(tt.name); got != tt.want {
			t.Errorf("candidateID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestUniqueCollisionCounter(t *testing.T) {
	idx := newIndex()

	for i, want := range []string{"u", "u1", "u2"} {
		got, err := idx.unique("User")
		if err != nil {
			t.Fatalf("unique #%d: %v", i, err)
		}
		if got != want {
			t.Errorf("unique #%d = %q, want %q", i, got, want)
		}
	}
}

func TestUniqueCounterSkipsTakenSuffixes(t *testing.T) {
	idx := newIndex()
	// "Context Types" and "Container Type" both reduce to "ct"; a later
	// "Component Type" must land on ct2.
	for _, name := range []string{"Context Types", "Container Type"} {
		if _, err := idx.unique(name); err != nil {
			t.Fatal(err)
		}
	}
	got, err := idx.unique("Component Type")
	if err != nil {
		t.Fatal(err)
	}
	if got != "ct2" {
		t.Errorf("unique = %q, want ct2", got)
	}
}

func TestUniqueExhaustion(t *testing.T) {
	if testing.Short() {
		t.Skip("fills the full identifier space")
	}
	idx := newIndex()
	idx.used["x"] = struct{}{}
	for i := 1; i <= maxIDAttempts; i++ {
		idx.used["x"+strconv.Itoa(i)] = struct{}{}
	}

	_, err := idx.unique("x")
	if !errors.Is(err, ErrIdentifierSpaceExhausted) {
		t.Errorf("err = %v, want ErrIdentifierSpaceExhausted", err)
	}
}
