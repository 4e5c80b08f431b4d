// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var pricingTierPattern = regexp.MustCompile(`^\$\${0,4}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("pricing_tier", validatePricingTier)
	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("singleline", validateSingleLine)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// pricing_tier accepts "$" through "$$$$$".
func validatePricingTier(fl validator.FieldLevel) bool {
	return pricingTierPattern.MatchString(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// singleline rejects line breaks in values that end up in mail headers.
func validateSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of " + e.Param()
	case "singleline":
		return e.Field() + " must be a single line"
	case "pricing_tier":
		return "Pricing must be between $ and $$$$$"
	default:
		return e.Field() + " is invalid"
	}
}
