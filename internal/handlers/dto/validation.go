package dto

import (
	"encoding/json"
	errs "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UseJSONFieldNames faz o validator do gin reportar o nome JSON do campo
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldErrors extrai os erros por campo de uma falha de binding:
// tags do validator ou valor JSON do tipo errado. nil para JSON malformado.
func FieldErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if errs.As(err, &verrs) {
		result := make([]ValidationError, 0, len(verrs))
		for _, fe := range verrs {
			result = append(result, ValidationError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
				Tag:     fe.Tag(),
				Value:   fe.Param(),
			})
		}
		return result
	}

	var typeErr *json.UnmarshalTypeError
	if errs.As(err, &typeErr) {
		return []ValidationError{{
			Field:   typeErr.Field,
			Message: "must be " + describeKind(typeErr.Type),
			Tag:     "type",
			Value:   typeErr.Value,
		}}
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}

	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "a non-negative integer"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid " + t.String()
	}
}
