package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/utils"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,}$`)
	nationalIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// AccountValidator checks account-holder details using `validate` struct tags.
// Field names in messages come from the `label` tag when present.
type AccountValidator struct {
	validate *validator.Validate
}

func NewAccountValidator() *AccountValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("nationalid", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || nationalIDPattern.MatchString(s)
	})

	return &AccountValidator{validate: v}
}

// Struct validates s and returns a *ValidationError describing every failed
// field, or nil.
func (v *AccountValidator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{}
	for _, e := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{Field: e.Field(), Message: message(e)})
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s can't be empty", e.Field())
	case "max":
		return fmt.Sprintf("%s too long (max %s characters)", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s too short (min %s characters)", e.Field(), e.Param())
	case "phone":
		return fmt.Sprintf("%s must be a phone number (digits, spaces, dashes, optional leading +)", e.Field())
	case "nationalid":
		return fmt.Sprintf("%s must contain only letters and digits", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// ValidateHolderName is a prompt validator for the account holder's name.
func ValidateHolderName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateContact is a prompt validator for a contact phone number.
func ValidateContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return fmt.Errorf("contact number can't be empty")
	}
	if len(contact) > constants.MaxContactLen || !phonePattern.MatchString(contact) {
		return fmt.Errorf("enter a phone number such as +251911234567")
	}
	return nil
}

// ValidateNationalID is a prompt validator for the optional national ID.
func ValidateNationalID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if len(id) > constants.MaxNationalIDLen || !nationalIDPattern.MatchString(strings.ToUpper(id)) {
		return fmt.Errorf("national ID must be at most %d letters or digits", constants.MaxNationalIDLen)
	}
	return nil
}

// ValidateAmount returns a prompt validator for a positive number with at
// most scale decimal places.
func ValidateAmount(scale int32) func(string) error {
	return func(input string) error {
		amount, err := utils.ParseAmount(input)
		if err != nil {
			return fmt.Errorf("invalid number format")
		}
		if !amount.IsPositive() {
			return fmt.Errorf("amount must be greater than zero")
		}
		if !amount.Equal(amount.Truncate(scale)) {
			if scale == 0 {
				return fmt.Errorf("amount must be a whole number")
			}
			return fmt.Errorf("amount can have at most %d decimal places", scale)
		}
		return nil
	}
}

// ValidateAccountNumber returns a prompt validator for numbers like ETH1001.
func ValidateAccountNumber(prefix string) func(string) error {
	return func(input string) error {
		input = strings.ToUpper(strings.TrimSpace(input))
		digits, ok := strings.CutPrefix(input, strings.ToUpper(prefix))
		if !ok || digits == "" {
			return fmt.Errorf("account number must look like %s1001", prefix)
		}
		for _, c := range digits {
			if c < '0' || c > '9' {
				return fmt.Errorf("account number must look like %s1001", prefix)
			}
		}
		return nil
	}
}
