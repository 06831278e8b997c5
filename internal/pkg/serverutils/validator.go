package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError marks a request that failed schema validation; the
// error handler maps it to a 400 with a generic message.
type ValidationError struct {
	cause error
}

func (e *ValidationError) Error() string {
	return "invalid query parameters: " + e.cause.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

func NewValidationError(cause error) error {
	return &ValidationError{cause: cause}
}

// ValidateRequest checks a request DTO against its validate tags.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return &ValidationError{cause: err}
	}
	return nil
}
