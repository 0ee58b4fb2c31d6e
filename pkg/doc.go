// Package pkg provides the core libraries for c4kit C4 model serialization.
//
// # Overview
//
// c4kit turns C4 architecture models into Structurizr DSL documents.
// The pkg directory is organized into four main areas:
//
//  1. [c4] - Domain model (people, systems, containers, components, code)
//  2. [dsl] - Structurizr DSL serialization (identifiers, emission)
//  3. [manifest] - Workspace definition files (TOML/JSON)
//  4. [errors] - Structured error codes for the CLI and HTTP boundary
//
// # Architecture
//
// The typical data flow through c4kit:
//
//	Workspace definition (TOML/JSON)
//	         ↓
//	    [manifest] package (decode + build validated model)
//	         ↓
//	    [c4] package (validated immutable elements)
//	         ↓
//	    [dsl] package (identifier assignment + emission)
//	         ↓
//	    Structurizr DSL output
//
// # Quick Start
//
// Build a model and serialize it:
//
//	import (
//	    "github.com/c4kit/c4kit/pkg/c4"
//	    "github.com/c4kit/c4kit/pkg/dsl"
//	)
//
//	// 1. Construct validated elements
//	user, _ := c4.NewPerson(c4.PersonSpec{
//	    Name:        "User",
//	    Description: "A customer",
//	})
//	shop, _ := c4.NewSoftwareSystem(c4.SoftwareSystemSpec{
//	    Name:        "Shop",
//	    Description: "Online shop",
//	})
//
//	// 2. Serialize (single use: the facade is consumed)
//	out, _ := dsl.NewSerializer().
//	    WithName("Retail").
//	    AddPerson(user).
//	    AddSoftwareSystem(shop).
//	    Serialize()
//
// # Main Packages
//
// [c4] - The five C4 element kinds with validated constructors.
// Elements are immutable after construction and exclusively own their
// children (systems own containers, containers own components,
// components own code elements).
//
// [dsl] - Serialization to Structurizr DSL. Identifier assignment is a
// deterministic pre-order walk of the element forest; emission is a
// separate infallible pass, so a failed serialization never yields a
// partial document.
//
// [manifest] - TOML and JSON workspace definitions. Everything decoded
// passes through the c4 constructors, so a manifest can never produce
// a model the serializer rejects on structural grounds.
//
// [errors] - Machine-readable error codes mapping library sentinels to
// consistent CLI messages and HTTP statuses.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/dsl/...      # Specific package
//	go test -run Example       # Examples only
//
// [c4]: https://pkg.go.dev/github.com/c4kit/c4kit/pkg/c4
// [dsl]: https://pkg.go.dev/github.com/c4kit/c4kit/pkg/dsl
// [manifest]: https://pkg.go.dev/github.com/c4kit/c4kit/pkg/manifest
// [errors]: https://pkg.go.dev/github.com/c4kit/c4kit/pkg/errors
package pkg
