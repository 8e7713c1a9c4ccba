package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = fmt.Errorf("malformed payload: %w", ErrValidation)
	ErrMissingRequiredField = fmt.Errorf("missing required field: %w", ErrValidation)
	ErrInvalidField         = fmt.Errorf("invalid field: %w", ErrValidation)
	ErrUnknownRequirements  = fmt.Errorf("unknown requirements: %w", ErrValidation)
)

func NewValidationError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrInvalidField,
		Details:    fmt.Sprintf("%s: %s", field, reason),
		Field:      field,
	}
}

// Request & Input-Validation Error Constructors
func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "payload",
	}
}

func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrMissingRequiredField,
		Details:    fmt.Sprintf("Missing required field: %s", fieldName),
		Field:      fieldName,
	}
}

// NewUnknownRequirementsError lists every requirement id that is not part of the catalog.
func NewUnknownRequirementsError(ids []uint) *ApiErr {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		err:        ErrUnknownRequirements,
		Details:    fmt.Sprintf("Requisitos no encontrados: [%s]", strings.Join(parts, ", ")),
		Field:      "requisito_id",
		IDs:        ids,
	}
}

// Request & Input-Validation Error Type Checkers
func IsMalformedPayloadError(err error) bool {
	return errors.Is(err, ErrMalformedPayload)
}

func IsMissingRequiredFieldError(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

func IsInvalidFieldError(err error) bool {
	return errors.Is(err, ErrInvalidField)
}

func IsUnknownRequirementsError(err error) bool {
	return errors.Is(err, ErrUnknownRequirements)
}
