package dsl

import "errors"

var (
	// ErrUnknownReference is returned by [Serializer.Serialize] when a
	// relationship endpoint or view target does not resolve to any
	// assigned element identifier or hierarchical path.
	ErrUnknownReference = errors.New("unknown identifier reference")

	// ErrInvalidText is returned by [Serializer.Serialize] when a quoted
	// field contains a line break. The DSL requires single-line quoted
	// strings.
	ErrInvalidText = errors.New("quoted text must be a single line")

	// ErrIdentifierSpaceExhausted is returned when the collision counter
	// exceeds its defensive bound. With an unbounded counter this is
	// practically unreachable.
	ErrIdentifierSpaceExhausted = errors.New("identifier space exhausted")

	// ErrSerializerConsumed is returned when a [Serializer] is used
	// after [Serializer.Serialize] has run. The facade is single-use.
	ErrSerializerConsumed = errors.New("serializer already consumed")
)
