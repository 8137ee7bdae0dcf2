// Standard error responses used by every handler in Uplift.
// The error body carries an accessibility block so failures stay as
// inspectable as successful responses.

package errors

import (
	"net/http"
	"strings"
)

// AccessibilityHelp carries assistive-technology friendly variants of an error message.
type AccessibilityHelp struct {
	ScreenReaderMessage string `json:"screen_reader_message"`
	UserFriendlyMessage string `json:"user_friendly_message"`
	SuggestedAction     string `json:"suggested_action"`
}

// ErrorBody is the inner error object sent to the client.
type ErrorBody struct {
	Code          int                `json:"code"`
	Message       string             `json:"message"`
	Type          string             `json:"type"`
	Details       interface{}        `json:"details,omitempty"`
	Accessibility *AccessibilityHelp `json:"accessibility,omitempty"`
}

// Standard for Error responses to the client.
type ErrorResponse struct {
	Err ErrorBody `json:"error"`
}

// Error is required by the error interface.
func (e ErrorResponse) Error() string {
	return e.Err.Message
}

// Get the StatusCode of the error.
func (e ErrorResponse) StatusCode() int {
	return e.Err.Code
}

// Replicates the New method of default errors package.
func New(err string) error {
	return ErrorResponse{
		Err: ErrorBody{Message: err},
	}
}

// InternalServerError creates a new error response representing an internal server error (HTTP 500)
func InternalServerError(msg string) ErrorResponse {
	if msg == "" {
		msg = "We encountered an error while processing your request."
	}
	return ErrorResponse{
		Err: ErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Type:    "server_error",
		},
	}
}

// NotFound creates a new error response representing a resource-not-found error (HTTP 404)
func NotFound(msg string) ErrorResponse {
	if msg == "" {
		msg = "The requested resource was not found."
	}
	return ErrorResponse{
		Err: ErrorBody{
			Code:    http.StatusNotFound,
			Message: msg,
			Type:    "not_found",
		},
	}
}

// Unauthorized creates a new error response representing an authentication/authorization failure (HTTP 401)
func Unauthorized(msg string) ErrorResponse {
	if msg == "" {
		msg = "You are not authenticated to perform the requested action."
	}
	return ErrorResponse{
		Err: ErrorBody{
			Code:    http.StatusUnauthorized,
			Message: msg,
			Type:    "unauthorized",
		},
	}
}

// Forbidden creates a new error response representing an authorization failure (HTTP 403)
func Forbidden(msg string) ErrorResponse {
	if msg == "" {
		msg = "You are not authorized to perform the requested action."
	}
	return ErrorResponse{
		Err: ErrorBody{
			Code:    http.StatusForbidden,
			Message: msg,
			Type:    "forbidden",
		},
	}
}

// BadRequest creates a new error response representing a bad request (HTTP 400)
func BadRequest(msg string) ErrorResponse {
	if msg == "" {
		msg = "Your request is in a bad format."
	}
	return ErrorResponse{
		Err: ErrorBody{
			Code:    http.StatusBadRequest,
			Message: msg,
			Type:    "bad_request",
		},
	}
}

// UnprocessableEntity creates a new error response representing an unprocessable request body (HTTP 422)
func UnprocessableEntity(msg string) ErrorResponse {
	if msg == "" {
		msg = "The submitted data could not be processed."
	}
	return ErrorResponse{
		Err: ErrorBody{
			Code:    http.StatusUnprocessableEntity,
			Message: msg,
			Type:    "unprocessable_entity",
		},
	}
}

// Standard for Validation-error responses to the client.
type validationError struct {
	Param   string `json:"param"`   // Parameter or Field
	Message string `json:"message"` // Issue in Field
}

// Captures multiple validation issues and sends it as a response in one go.
// Use-case of this would be bunch of validation issues caught in a form.
type ValidationErrorResponse struct {
	Response []validationError `json:"errors"`
}

// Scans through set of validation errors found by govalidator,
// Generates a slice of serializable validationErrorResponse.
func GenerateValidationErrorResponse(errs []error) ErrorResponse {
	// govalidator returns array of errors in -> Param:Message format
	// We split the error from ":"
	resp := []validationError{}
	for _, err := range errs {
		e := strings.SplitN(err.Error(), ":", 2)
		if len(e) != 2 {
			resp = append(resp, validationError{Param: "", Message: strings.TrimSpace(err.Error())})
			continue
		}
		resp = append(
			resp, validationError{
				Param:   e[0],
				Message: strings.TrimSpace(e[1]),
			},
		)
	}
	return ErrorResponse{
		Err: ErrorBody{
			Code:    http.StatusBadRequest,
			Message: "Data validation error",
			Type:    "validation_error",
			Details: ValidationErrorResponse{Response: resp},
		},
	}
}
