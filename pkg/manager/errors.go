package manager

import "errors"

var (
	// ErrQueryRequired is returned when a search is attempted with an empty query
	ErrQueryRequired = errors.New("query required")

	// ErrInvalidInteraction is returned for an unrecognized interaction type
	ErrInvalidInteraction = errors.New("invalid interaction type")

	// ErrRatingRange is returned when a rating falls outside the allowed range
	ErrRatingRange = errors.New("rating must be between 0 and 5")

	// ErrInvalidRequest wraps all other request validation failures
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstream wraps failures of the metadata catalog
	ErrUpstream = errors.New("upstream catalog error")
)
