package handlers

import (
	"errors"

	"cosmos-crm/models"
)

// validationMessages unwraps the message list from a models.ValidationError,
// falling back to the raw error text.
func validationMessages(err error) []string {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr.Errors
	}
	return []string{err.Error()}
}
