// Package validation runs the two validation passes every document goes
// through before it is persisted: field constraints declared as struct tags,
// then the record-level rules that may consult referenced documents.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// patterns backs the regex-shaped custom tags used on entity fields.
var patterns = map[string]*regexp.Regexp{
	"ean13_shape":       regexp.MustCompile(`^\d{13}$`),
	"national_id_shape": regexp.MustCompile(`^(?:[X-Z]\d{7}[A-Z]|\d{8}[A-Z])$`),
	"birth_date":        regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	"card_number":       regexp.MustCompile(`^\d{16}$`),
	"card_month":        regexp.MustCompile(`^(0[1-9]|1[0-2])$`),
	"card_year":         regexp.MustCompile(`^\d{2}$`),
	"card_cvv":          regexp.MustCompile(`^\d{3}$`),
}

// FieldValidator checks field-level constraints declared with `validate` tags.
type FieldValidator struct {
	validate *validator.Validate
}

// NewFieldValidator builds a validator with the custom pattern tags registered.
func NewFieldValidator() (*FieldValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	for tag, re := range patterns {
		if err := v.RegisterValidation(tag, matchPattern(re)); err != nil {
			return nil, errors.Wrapf(err, "register validation %s", tag)
		}
	}

	// Money fields compare as numbers so that gte=0 applies to them.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}

		return nil
	}, decimal.Decimal{})

	return &FieldValidator{validate: v}, nil
}

// MustNewFieldValidator is NewFieldValidator for package-level setup and tests.
func MustNewFieldValidator() *FieldValidator {
	fv, err := NewFieldValidator()
	if err != nil {
		panic(err)
	}

	return fv
}

// Struct validates every tagged field of doc and returns all violations at once
// as domainerrors.ConstraintViolations, or nil.
func (fv *FieldValidator) Struct(doc any) error {
	err := fv.validate.Struct(doc)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "validate struct")
	}

	violations := make(domainerrors.ConstraintViolations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.ConstraintViolation{
			Field:  fieldPath(fe),
			Rule:   fe.Tag(),
			Reason: reason(fe),
		})
	}

	return violations
}

func matchPattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}

		return re.MatchString(fl.Field().String())
	}
}

// fieldPath drops the root struct name: "Order.Lines[0].UnitPrice" -> "Lines[0].UnitPrice".
func fieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}

		return "must be at least " + fe.Param()
	}

	if re, ok := patterns[fe.Tag()]; ok {
		return fmt.Sprintf("%q does not match %s", fe.Value(), re.String())
	}

	return "failed on " + fe.Tag()
}
