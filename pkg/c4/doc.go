// Package c4 defines the C4 architecture model: people and software
// systems at the context level, containers, components, and code
// elements below them, plus non-owning relationships between any two
// elements.
//
// Every constructor validates its input and returns either a fully
// formed, immutable value or an error - a partially valid element is
// never observable. Ownership is a strict forest: a system owns its
// containers, a container its components, a component its code
// elements. Relationships reference elements by identifier and never
// own their endpoints.
//
// # Example
//
//	system, err := c4.NewSoftwareSystem(c4.SoftwareSystemSpec{
//	    Name:        "API",
//	    Description: "Backend API service",
//	    Containers:  []*c4.Container{webApp},
//	})
//
// The resulting model is consumed by the dsl package, which assigns
// identifiers and renders Structurizr DSL.
package c4
