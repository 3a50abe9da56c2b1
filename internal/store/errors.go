package store

import "errors"

// Sentinel errors returned by ConfigSource implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrNodeNotFound is returned when a requested node is unknown to the source.
	ErrNodeNotFound = errors.New("node was not found")

	// ErrSourceUnavailable is returned when the source cannot serve the
	// request, for example because the caller context is already done.
	ErrSourceUnavailable = errors.New("configuration source is unavailable")
)

// Node definition file errors returned while loading a YAML source.
var (
	// ErrReadingNodesFile is returned when the node definitions file cannot be read.
	ErrReadingNodesFile = errors.New("error reading node definitions file")

	// ErrParsingNodesFile is returned when the file is not valid YAML or a
	// value cannot be converted (for example an unknown running mode).
	ErrParsingNodesFile = errors.New("error parsing node definitions file")

	// ErrInvalidNodeDefinitions is returned when the parsed definitions break
	// a source invariant: no nodes, an empty name or a duplicated name.
	ErrInvalidNodeDefinitions = errors.New("invalid node definitions")
)
