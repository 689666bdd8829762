package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorStruct struct {
	Error string `json:"error"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	Error  string            `json:"error"`
	Fields []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func errorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorStruct{Error: message})
}

// validationErrorResponse converts a binding failure into a 422 with
// field-scoped messages. Non-validator errors (malformed JSON, wrong types)
// get a generic shape failure.
func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorStruct{Error: "malformed request payload"})
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorStruct{
		Error:  "validation error",
		Fields: out,
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("value must be at least %v", value)
	case "max":
		return fmt.Sprintf("value must be at most %v", value)
	case "zonecolor":
		return "color must be in #RRGGBB hexadecimal format"
	}
	return tag
}
