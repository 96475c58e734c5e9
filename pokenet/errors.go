package pokenet

import "errors"

var (
	// ErrInvalidInput covers empty or single creature lists, duplicate names,
	// creatures without types and negative raw scores.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownType is returned by a strict TypeChart for a type it doesn't know.
	ErrUnknownType = errors.New("unknown type")
	// ErrOracle wraps failures coming from a TypeOracle.
	ErrOracle = errors.New("type oracle failure")
	// ErrProvider wraps failures coming from a CreatureProvider.
	ErrProvider = errors.New("creature provider failure")
	// ErrUnknownLocation is returned by a Roster for a location it has no entry for.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrIncompleteTraversal means scoring failed to reach every node of a graph.
	ErrIncompleteTraversal = errors.New("traversal did not reach every pokemon")
)
