package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAndDecode decodes the JSON body into payload and runs its validate tags.
// Unknown fields are rejected.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body", err).WithKind("invalid_request")
	}

	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewAppError(http.StatusBadRequest, validationErrors.Error(), nil).WithKind("invalid_request")
		}
		return NewAppError(http.StatusBadRequest, "Invalid request body", err).WithKind("invalid_request")
	}

	return nil
}

// ValidateVar checks a single value against a validator tag such as "required,email".
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateStruct runs the validate tags of a payload that did not come from a request body.
func ValidateStruct(payload interface{}) error {
	return validate.Struct(payload)
}
