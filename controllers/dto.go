package controllers

// Request bodies, validated before any workflow logic runs. The rules
// mirror the public API contract: required names, 8-character minimum
// passwords with confirmation, well-formed emails.

type RegisterRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type UpdatePasswordRequest struct {
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type ProjectRequest struct {
	ProjectName string `json:"projectName" validate:"required"`
	ClientName  string `json:"clientName" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type TaskRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}
