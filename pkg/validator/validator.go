package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var (
	symbolPattern = regexp.MustCompile(`^[A-Za-z]{1,5}$`)
	pricePattern  = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every rejected field of a request.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator validates request structs through `validate` tags.
type Validator struct {
	validate *playground.Validate
}

// New registers the custom `symbol` and `price` tags and reports fields by their json names.
func New() *Validator {
	v := playground.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("symbol", func(fl playground.FieldLevel) bool {
		return symbolPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("price", func(fl playground.FieldLevel) bool {
		s := fl.Field().String()
		if !pricePattern.MatchString(s) {
			return false
		}
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && f > 0
	})
	return &Validator{validate: v}
}

// Validate returns a *ValidationError listing every failing field, or nil.
// It satisfies echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "symbol":
		return "must be 1 to 5 letters"
	case "price":
		return "must be a positive number with at most 2 decimal places"
	case "datetime":
		return fmt.Sprintf("must be a date formatted as %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}
