package models

import "strings"

// ValidationError collects the field rule violations found in a single
// candidate entity. Handlers translate it into a 400 response; it is never
// allowed to escape as an unhandled fault.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}
