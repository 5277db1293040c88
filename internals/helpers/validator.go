package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"schoolhub_backend/internals/constants"
)

// Validate is shared by every DTO; validator caches struct metadata per instance.
var Validate = NewValidator()

// NewValidator reports fields by their json/query/form name and knows the "term" tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("term", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, err := constants.ParseTerm(fl.Field().String())
		return err == nil
	})
	return v
}
