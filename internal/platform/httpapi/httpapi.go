// Package httpapi carries the JSON error vocabulary shared by every API
// handler: 400 with field-level details, 401, 404 and a localized 500.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by Bind when the request body is malformed or
// violates a field constraint.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string { return "validation failed" }

// Bind decodes the JSON body into v and runs struct validation. The returned
// error is a *ValidationError for any shape or constraint problem, so no
// store mutation can happen on bad input.
func Bind(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "format tidak valid"}}}
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, FieldError{Field: fe.Field(), Message: "gagal pada aturan " + fe.Tag()})
			}
			return &ValidationError{Fields: fields}
		}
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}
	return nil
}

// Invalid writes a 400 with the message and per-field errors.
func Invalid(c echo.Context, message string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": message,
			"errors":  verr.Fields,
		})
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"message": message})
}

// Message writes a bare {"message": ...} body with the given status.
func Message(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"message": message})
}

// NotFound writes a 404 with the localized message.
func NotFound(c echo.Context, message string) error {
	return Message(c, http.StatusNotFound, message)
}

// Internal writes a 500 with the localized message.
func Internal(c echo.Context, message string) error {
	return Message(c, http.StatusInternalServerError, message)
}

// Unauthorized writes the 401 used by the session gate.
func Unauthorized(c echo.Context) error {
	return Message(c, http.StatusUnauthorized, "Unauthorized")
}
