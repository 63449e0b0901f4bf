package middleware

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateBody parses the request body into dest and runs struct validation.
// Failures come back as *fiber.Error so the global error handler shapes the
// response.
func ValidateBody(c *fiber.Ctx, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(dest); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		firstError := validationErrors[0]

		var errorMessage string
		switch firstError.Tag() {
		case "required":
			errorMessage = firstError.Field() + " is required"
		case "email":
			errorMessage = "Invalid email format"
		case "min":
			errorMessage = firstError.Field() + " is too short"
		case "max":
			errorMessage = firstError.Field() + " is too long"
		case "gt":
			errorMessage = firstError.Field() + " must be greater than " + firstError.Param()
		default:
			errorMessage = "Validation failed for " + firstError.Field()
		}

		return fiber.NewError(fiber.StatusBadRequest, errorMessage)
	}

	return nil
}

// IsValidEmail checks a single address outside of struct validation.
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
