package health

import "errors"

var (
	// ErrComponentConflict indicates a component was configured with both
	// a direct status and aspects.
	ErrComponentConflict = errors.New("health: component has both a direct status and aspects")

	// ErrComponentEmpty indicates a component was configured with neither
	// a direct status nor aspects.
	ErrComponentEmpty = errors.New("health: component has neither a direct status nor aspects")
)
