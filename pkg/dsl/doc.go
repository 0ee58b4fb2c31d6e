// Package dsl renders a c4 model as Structurizr DSL text.
//
// The entry point is [Serializer], a single-use facade that accumulates
// workspace metadata, the element forest, relationships, views, and
// styles, and produces the complete document in one [Serializer.Serialize]
// call. Serialization runs in two passes: the first walks the element
// forest in insertion order and assigns every element a short unique
// identifier plus a dot-joined hierarchical path; the second emits the
// model, views, and styles blocks against that identifier map. Two
// passes are required because relationships and views may reference
// elements added after them.
//
// Output is deterministic: the same sequence of add calls always yields
// byte-identical text. Errors (unknown references, multi-line quoted
// text) abort serialization before any emission, so no partial document
// is ever returned.
package dsl
