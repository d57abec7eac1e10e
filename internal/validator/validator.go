package validator

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/examportal/backend/internal/model"
)

// Digits only, optional leading +, at least ten digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// Validator checks inbound request payloads before they reach the services.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	// Never fails: the pattern is a compile-time constant.
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// ValidateSignup returns a 422 HTTPError describing the first problem found,
// or nil when the payload is acceptable.
func (v *Validator) ValidateSignup(req model.SignupRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		switch {
		case first.Field() == "Phone" && first.Tag() == "phone":
			return model.NewHTTPError(http.StatusUnprocessableEntity,
				"Phone format is incorrect.")
		case first.Field() == "Email" && first.Tag() == "email":
			return model.NewHTTPError(http.StatusUnprocessableEntity,
				"Email format is incorrect.")
		}
	}

	return model.NewHTTPError(http.StatusUnprocessableEntity,
		"Invalid inputs passed, please check your data.")
}
