package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON (or form) tag names in errors.
// - Registers the role tag and alias tags used by request DTOs.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs the project's tag name function, validations and aliases on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseRole(fl.Field().String())
		return ok
	})
	v.RegisterAlias("pwd", "min=8") // password minimum length
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) {
		return map[string]string{"payload": "invalid json"}
	}
	if errors.As(err, &ute) {
		return map[string]string{ute.Field: "must be " + ute.Type.String()}
	}

	// Form values that do not parse as numbers or booleans
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return map[string]string{"payload": fmt.Sprintf("invalid value %q", ne.Num)}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	// aliases report their expansion here
	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isCollection(fe.Kind()) {
			return "must contain at least " + param + " items"
		}
		if isString(fe.Kind()) {
			return "must be at least " + param + " characters"
		}
		return "must be at least " + param
	case "max":
		if isString(fe.Kind()) {
			return "must be at most " + param + " characters"
		}
		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(param, " ", ", ")
	case "role":
		return "must be one of: admin, manager, user"
	case "latitude":
		return "must be a latitude between -90 and 90"
	case "longitude":
		return "must be a longitude between -180 and 180"
	case "dive":
		return "contains an invalid item"
	case "url":
		return "must be a valid URL"
	}
	return fmt.Sprintf("failed on %s validation", fe.Tag())
}

func isString(k reflect.Kind) bool { return k == reflect.String }

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}
