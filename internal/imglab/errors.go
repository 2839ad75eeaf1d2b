package imglab

import "errors"

var (
	// ErrInvalidColor is returned for rgb(a) components outside [0,255], non-integer
	// components, or names missing from the color table (names are lowercase only).
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidPosition is returned for unknown keywords or two keywords on the same axis.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidSource is returned when a source cannot be built or resolved.
	ErrInvalidSource = errors.New("invalid source")

	// ErrMalformedRange is returned for a range whose endpoints are not positive numbers.
	ErrMalformedRange = errors.New("malformed range")

	// ErrUnresolvedParam is returned when a list or range reaches URL assembly.
	ErrUnresolvedParam = errors.New("unresolved parameter")

	// ErrAxisConflict is returned when a srcset request combines axes in a way
	// that cannot produce a single descriptor kind.
	ErrAxisConflict = errors.New("conflicting srcset axes")
)
