package components

import "fmt"

// errInvalid formats a Validate error consistently across components.
func errInvalid(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
