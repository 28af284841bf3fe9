package admin

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrRecordNotFound reports a mutation that targets an id absent from the store.
	ErrRecordNotFound = errors.New("admin: record not found")
	// ErrInvalidStatus reports a status value outside the known enumeration.
	ErrInvalidStatus = errors.New("admin: invalid status")
)

const (
	textCodeValidation = "ADMIN_VALIDATION"
	textCodeRemote     = "ADMIN_REMOTE"
)

// wrapValidation tags client-side validation failures. These are resolved
// before any network call is issued.
func wrapValidation(err error, msg string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, msg).WithTextCode(textCodeValidation)
}

// wrapRemote tags backend failures. The store is untouched when one of these
// is returned.
func wrapRemote(err error, msg string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(textCodeRemote)
}

// IsValidationError reports whether err originated from input validation.
func IsValidationError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
