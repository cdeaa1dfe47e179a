package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single sentinel for grid construction and access
// failures. Returned errors wrap it with the failing method and values.
var ErrInvalidArgument = errors.New("grid: invalid argument")

// gridErrorf wraps ErrInvalidArgument with method context, mirroring the
// "Method: detail: sentinel" shape used across the package.
func gridErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
