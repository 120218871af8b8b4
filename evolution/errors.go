package evolution

import "errors"

var (
	// ErrIndexOutOfRange is returned for gene or slot access past the end.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUninitialized is returned when a fitness is read before evaluation.
	ErrUninitialized = errors.New("fitness not evaluated")

	// ErrInvalidConfig is returned for out-of-range settings and unknown operator kinds.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyPopulation is returned when a ranked read is made on a population with no members.
	ErrEmptyPopulation = errors.New("empty population")

	// ErrMalformedBuffer is returned when a FlatBuffer cannot be read.
	ErrMalformedBuffer = errors.New("malformed buffer")
)
