package main

import (
	"errors"
	"fmt"
)

// errEmptyName rejects empty --variable-name / --value-name values.
var errEmptyName = errors.New("--variable-name and --value-name must not be empty")

// errWidth rejects interval widths outside (0, 1).
func errWidth(w float64) error {
	return fmt.Errorf("--width must be in (0, 1), got %g", w)
}
