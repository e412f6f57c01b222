package stopwatch

import "errors"

var (
	// ErrInvalidArgument is returned by Create for an empty or blank id.
	ErrInvalidArgument = errors.New("invalid stopwatch id")
	// ErrAlreadyExists is returned by Create when the id is taken.
	ErrAlreadyExists = errors.New("stopwatch already exists")
	// ErrIllegalState is returned by Start, Lap and Stop when the current
	// running state forbids the call.
	ErrIllegalState = errors.New("illegal stopwatch state")
)
