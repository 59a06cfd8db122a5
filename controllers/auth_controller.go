package controllers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/b4dow/uptask-backend/services"
)

// AuthController exposes the account lifecycle under /api/auth.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// CreateAccount handles POST /api/auth/create-account
func (ac *AuthController) CreateAccount(c *fiber.Ctx) error {
	var req RegisterRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	if err := ac.auth.Register(c.Context(), req.Name, req.Email, req.Password); err != nil {
		return fail(c, err)
	}
	return c.SendString("Account created, check your email to confirm it")
}

// ConfirmAccount handles POST /api/auth/confirm-account
func (ac *AuthController) ConfirmAccount(c *fiber.Ctx) error {
	var req TokenRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	if err := ac.auth.Confirm(c.Context(), req.Token); err != nil {
		return fail(c, err)
	}
	return c.SendString("Account confirmed successfully")
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	if err := ac.auth.Login(c.Context(), req.Email, req.Password); err != nil {
		return fail(c, err)
	}
	return c.SendString("Authenticated")
}

// RequestCode handles POST /api/auth/request-code
func (ac *AuthController) RequestCode(c *fiber.Ctx) error {
	var req EmailRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	if err := ac.auth.RequestCode(c.Context(), req.Email); err != nil {
		return fail(c, err)
	}
	return c.SendString("A new token was sent to your email")
}

// ForgotPassword handles POST /api/auth/forgot-password
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req EmailRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	if err := ac.auth.ForgotPassword(c.Context(), req.Email); err != nil {
		return fail(c, err)
	}
	return c.SendString("Check your email for instructions")
}

// ValidateToken handles POST /api/auth/validate-token
func (ac *AuthController) ValidateToken(c *fiber.Ctx) error {
	var req TokenRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	if err := ac.auth.ValidateToken(c.Context(), req.Token); err != nil {
		return fail(c, err)
	}
	return c.SendString("Valid token, set your new password")
}

// UpdatePassword handles POST /api/auth/update-password/:token
func (ac *AuthController) UpdatePassword(c *fiber.Ctx) error {
	token := c.Params("token")
	if _, err := strconv.Atoi(token); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"errors": []FieldError{{Field: "token", Message: "Token is not valid"}},
		})
	}

	var req UpdatePasswordRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	if err := ac.auth.ResetPassword(c.Context(), token, req.Password); err != nil {
		return fail(c, err)
	}
	return c.SendString("Password updated successfully")
}
