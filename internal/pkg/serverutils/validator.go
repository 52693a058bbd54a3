package serverutils

import (
	"errors"
	"reflect"
	"strings"

	"plantcare-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest checks the validate tags of a request DTO and reports the
// first failing field as a BadRequest.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.BadRequest("Invalid request body.")
	}

	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return apperror.BadRequest("Missing '%s' field.", fe.Field())
	}
	return apperror.BadRequest("Invalid '%s' field: failed on %s.", fe.Field(), fe.Tag())
}
