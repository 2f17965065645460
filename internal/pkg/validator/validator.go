// Package validator wraps go-playground/validator for declarative struct
// validation with standardized error formatting.
//
// Besides the library's built-in tags it registers:
//
//   - walletid: a wallet identifier, i.e. a bare file name inside the wallet
//     directory. The empty string passes so the tag composes with required
//     and required_if.
package validator

import (
	"errors"
	"fmt"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'WalletID': value '../alice' does not meet the requirements for the 'walletid' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("walletid", validateWalletID); err != nil {
		panic(err)
	}
}

// IsWalletID reports whether id names a file directly inside a directory.
func IsWalletID(id string) bool {
	return id != "." && id != ".." && !strings.ContainsAny(id, `/\`+"\x00")
}

func validateWalletID(fl gvalidator.FieldLevel) bool {
	id := fl.Field().String()
	return id == "" || IsWalletID(id)
}

// formatError transforms a raw validator error into a multi-error chain
// rooted at ErrValidationFailed, with one message per failed field. Any other
// error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
//	if err := validator.Validate(req); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the request
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(id, "required,walletid").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
