package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/b4dow/uptask-backend/internal/apperr"
)

var validate = validator.New()

// FieldError is one entry in a 400 validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindAndValidate parses the JSON body into dst and validates it. On
// failure the response has already been written and false is returned.
func bindAndValidate(c *fiber.Ctx, dst any) bool {
	if err := c.BodyParser(dst); err != nil {
		c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse request body"})
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fieldErrs := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fieldErrs = append(fieldErrs, FieldError{Field: fe.Field(), Message: messageFor(fe)})
			}
			c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
			return false
		}
		c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
		return false
	}
	return true
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " cannot be empty"
	case "email":
		return "Email is not valid"
	case "min":
		return "Password is too short, minimum 8 characters"
	case "eqfield":
		return "Passwords do not match"
	case "numeric":
		return fe.Field() + " must be numeric"
	default:
		return fe.Field() + " is not valid"
	}
}

// fail writes the error's mapped status and client-safe message. Internal
// errors are logged with full detail but never leak it.
func fail(c *fiber.Ctx, err error) error {
	status := apperr.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": apperr.Message(err)})
}
