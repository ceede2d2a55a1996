package parking

import "errors"

var (
	// ErrInvalidInput reports malformed construction arguments such as a
	// negative capacity or an empty registration number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLevelNotFound reports that the addressed level number is not present.
	ErrLevelNotFound = errors.New("level not found")

	// ErrFull reports that no free slot of the requested class exists.
	ErrFull = errors.New("parking lot is full")

	// ErrNotFound reports that a release target slot does not exist or is
	// already empty.
	ErrNotFound = errors.New("not found")

	// ErrUnknownCriterion reports a search criterion outside the supported set.
	ErrUnknownCriterion = errors.New("unknown search criterion")
)
