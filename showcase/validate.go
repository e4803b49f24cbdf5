package showcase

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/networkteam/badge/views"
)

var (
	strictOnce     sync.Once
	strictValidate *validator.Validate

	lenientOnce     sync.Once
	lenientValidate *validator.Validate
)

// validatorInstance returns the shared validator. In lenient mode unknown variants
// and sizes pass, they resolve to the defaults when rendered.
func validatorInstance(strict bool) *validator.Validate {
	if strict {
		strictOnce.Do(func() {
			strictValidate = newValidator(func(fl validator.FieldLevel) bool {
				return views.ParseVariant(fl.Field().String()) == views.BadgeVariant(fl.Field().String())
			}, func(fl validator.FieldLevel) bool {
				return views.ParseSize(fl.Field().String()) == views.BadgeSize(fl.Field().String())
			})
		})
		return strictValidate
	}

	lenientOnce.Do(func() {
		accept := func(validator.FieldLevel) bool { return true }
		lenientValidate = newValidator(accept, accept)
	})
	return lenientValidate
}

func newValidator(variant, size validator.Func) *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("badge_variant", variant)
	_ = v.RegisterValidation("badge_size", size)
	return v
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists all invalid fields of a showcase.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid showcase: " + strings.Join(msgs, "; ")
}

// Validate checks a showcase. Every badge needs text; strict mode additionally
// rejects unknown variants and sizes.
func Validate(s *Showcase, strict bool) error {
	if s == nil {
		return &ValidationError{Fields: []FieldError{{Field: "showcase", Message: "is nil"}}}
	}

	err := validatorInstance(strict).Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validating showcase: %w", err)
	}

	result := &ValidationError{}
	for _, fe := range validationErrs {
		result.Fields = append(result.Fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return result
}

// fieldPath turns "Showcase.Badges[0].Text" into "badges[0].text".
func fieldPath(namespace string) string {
	namespace = strings.TrimPrefix(namespace, "Showcase.")
	return strings.ToLower(namespace)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "badge_variant":
		return fmt.Sprintf("unknown variant %q", fe.Value())
	case "badge_size":
		return fmt.Sprintf("unknown size %q", fe.Value())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
