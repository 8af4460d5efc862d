package shared

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field rules carried over from the legacy schema. The storage layer
// duplicates uniqueness and enum membership; these regexes are the
// application-side authority for format rules.
var (
	usernameRegex    = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)
	emailDomainRegex = regexp.MustCompile(`^(?i)[a-z0-9._%+-]+@(gmail\.com|googlemail\.com|yahoo\.com|yahoo\.co\.uk|protonmail\.com|proton\.me|outlook\.com|hotmail\.com|icloud\.com|mail\.com|aol\.com|zoho\.com)$`)
	digitsRegex      = regexp.MustCompile(`^[0-9]+$`)
	countryCodeRegex = regexp.MustCompile(`^\+[0-9]{1,4}$`)
	slugRegex        = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return toSnakeCase(fld.Name)
	})

	mustRegister(v, "username", usernameRegex)
	mustRegister(v, "emaildomain", emailDomainRegex)
	mustRegister(v, "digits", digitsRegex)
	mustRegister(v, "countrycode", countryCodeRegex)
	mustRegister(v, "slug", slugRegex)

	return v
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// ValidateStruct runs the registered field rules against an entity and
// converts every violation to a ValidationError so callers can tell
// which field broke which rule.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verrs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		verrs = append(verrs, NewValidationError(fe.Field(), messageFor(fe)))
	}
	return verrs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "username":
		return "must start with a letter or number and may contain only letters, numbers, underscores, and hyphens"
	case "emaildomain":
		return "must be a valid email from a supported domain: Gmail, Googlemail, Yahoo, ProtonMail, Outlook, Hotmail, iCloud, Mail.com, AOL, or Zoho"
	case "digits":
		return "must contain only digits"
	case "countrycode":
		return "must start with '+' followed by 1 to 4 digits"
	case "slug":
		return "must be a URL-safe identifier"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("cannot exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("cannot be more than %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("cannot be less than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("cannot be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("cannot be more than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func toSnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (name[i-1] < 'A' || name[i-1] > 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
