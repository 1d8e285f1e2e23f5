package atmos

import (
	"errors"
	"fmt"
)

// ErrInvalidEnvironment is the one error kind that escapes a tick: an
// ExposedTo tile referenced an environment id outside the table. The
// stricter-than-original bound is applied (reject id >= len(environments),
// not just id > len(environments)); see DESIGN.md.
var ErrInvalidEnvironment = errors.New("atmos: invalid environment id")

// TickError wraps ErrInvalidEnvironment (or, in principle, any other
// fatal tick error) with the Z-level and tile index at which it
// occurred, so the host can report exactly which tile aborted the tick.
type TickError struct {
	Z       int32
	Index   int
	Wrapped error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("atmos: tick failed at z=%d tile=%d: %v", e.Z, e.Index, e.Wrapped)
}

func (e *TickError) Unwrap() error { return e.Wrapped }
