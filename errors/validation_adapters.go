package errors

import (
	"fmt"
	"strings"

	play "github.com/go-playground/validator/v10"
)

// FromPlayground adapts go-playground validation errors into an
// InvalidArgument response. Field paths drop the root struct name.
func FromPlayground(err play.ValidationErrors, tagToReason map[string]string) ErrorResponse {
	violations := make([]FieldViolation, 0, len(err))
	for _, fe := range err {
		tag := fe.Tag()
		reason := tagToReason[tag]
		if reason == "" {
			reason = "invalid"
		}

		field := fe.Field()
		if ns := fe.StructNamespace(); ns != "" {
			if _, rest, ok := strings.Cut(ns, "."); ok && rest != "" {
				field = rest
			}
		}

		violations = append(violations, FieldViolation{
			Field:       field,
			Reason:      reason,
			Description: fmt.Sprintf("%s validation failed (%s)", field, tag),
		})
	}
	return ValidationViolations(violations)
}
