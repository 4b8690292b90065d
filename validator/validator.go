package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	errs "github.com/vortex-fintech/zimphone/errors"
	"github.com/vortex-fintech/zimphone/phone"
)

var v *validator.Validate

func init() {
	v = validator.New()
	mustRegisterNumberTag("zw_phone", phone.IsValid)
	mustRegisterNumberTag("zw_mobile", phone.IsMobile)
	mustRegisterNumberTag("zw_landline", phone.IsLandline)
}

// mustRegisterNumberTag registers a string-only tag. Non-nil *string fields
// reach check dereferenced. A nil pointer fails the tag unless the field is
// also tagged omitempty.
func mustRegisterNumberTag(tag string, check func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return check(f.String())
	})
	if err != nil {
		panic(err)
	}
}

func Instance() *validator.Validate {
	return v
}

// Validate returns field path -> reason code, or nil when i is valid.
// Nested fields are reported without the root struct name ("Contact.Phone").
func Validate(i any) map[string]string {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_error": "validation_failed"}
	}
	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		out[fieldPath(e)] = mapTagToCode(e.Tag())
	}
	return out
}

// ValidateErr is Validate shaped as an errors.ErrorResponse.
func ValidateErr(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.InvalidArgument().WithReason("validation_failed")
	}
	return errs.FromPlayground(verrs, tagMap)
}

func fieldPath(e validator.FieldError) string {
	if _, rest, ok := strings.Cut(e.StructNamespace(), "."); ok && rest != "" {
		return rest
	}
	return e.Field()
}
