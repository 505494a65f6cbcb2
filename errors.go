package annulus

import (
	"errors"
	"fmt"
)

// Sentinel errors for the annulus package.
var (
	// ErrGenerationIncomplete is returned when fewer points than requested
	// could be placed. Widening the gap between the minimum and maximum
	// radius usually helps.
	ErrGenerationIncomplete = errors.New("annulus: not all coordinates were generated")

	// ErrInvalidParams is returned by Params.Validate and DecodeParams.
	ErrInvalidParams = errors.New("annulus: invalid parameters")
)

// IncompleteError reports a placement that produced fewer points than
// requested. It matches ErrGenerationIncomplete with errors.Is.
type IncompleteError struct {
	Requested int
	Generated int
	Minimum   int
	Maximum   int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s (%d of %d); consider changing the minimum (%d) and maximum (%d) radius",
		ErrGenerationIncomplete.Error(), e.Generated, e.Requested, e.Minimum, e.Maximum)
}

// Is reports whether target is ErrGenerationIncomplete.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrGenerationIncomplete
}
