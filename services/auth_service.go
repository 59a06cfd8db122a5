package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/b4dow/uptask-backend/email"
	"github.com/b4dow/uptask-backend/internal/apperr"
	"github.com/b4dow/uptask-backend/internal/auth"
	"github.com/b4dow/uptask-backend/models"
	"github.com/b4dow/uptask-backend/repositories"
)

const mailDispatchTimeout = 10 * time.Second

// AuthService orchestrates the account lifecycle: registration with email
// confirmation, login, confirmation-code resend, and password reset via
// single-use tokens.
type AuthService struct {
	users  repositories.UserStore
	tokens repositories.TokenStore
	mailer email.Mailer
}

func NewAuthService(users repositories.UserStore, tokens repositories.TokenStore, mailer email.Mailer) *AuthService {
	return &AuthService{users: users, tokens: tokens, mailer: mailer}
}

// Register creates a pending account and a bound confirmation token. The
// two writes are issued concurrently and both outcomes are awaited; there
// is no compensating rollback if one of them fails.
func (s *AuthService) Register(ctx context.Context, name, emailAddr, password string) error {
	_, err := s.users.FindByEmail(ctx, emailAddr)
	if err == nil {
		return apperr.New(apperr.Conflict, "User is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	// The id is assigned up front so the token can reference the user
	// while both rows are still being written.
	user := &models.User{ID: uuid.New(), Name: name, Email: emailAddr, Password: hash}

	token, err := s.mintToken(user.ID)
	if err != nil {
		return err
	}

	s.dispatch(s.mailer.SendConfirmation, email.Payload{
		Email: user.Email,
		Name:  user.Name,
		Token: token.Code,
	})

	return settle(
		func() error { return s.users.Create(ctx, user) },
		func() error { return s.tokens.Create(ctx, token) },
	)
}

// Confirm consumes a confirmation code: the bound account becomes
// confirmed and the token is deleted.
func (s *AuthService) Confirm(ctx context.Context, code string) error {
	token, err := s.findToken(ctx, code)
	if err != nil {
		return err
	}
	user, err := s.users.FindByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	user.Confirmed = true
	return settle(
		func() error { return s.users.Save(ctx, user) },
		func() error { return s.tokens.Delete(ctx, token) },
	)
}

// Login verifies credentials. Logging into an unconfirmed account is a
// side-effecting failure: a fresh confirmation token is minted and mailed
// before the Unauthorized error is returned.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "User not found")
	}
	if err != nil {
		return err
	}

	if !user.Confirmed {
		token, err := s.mintToken(user.ID)
		if err != nil {
			return err
		}
		if err := s.tokens.Create(ctx, token); err != nil {
			return err
		}
		s.dispatch(s.mailer.SendConfirmation, email.Payload{
			Email: user.Email,
			Name:  user.Name,
			Token: token.Code,
		})
		return apperr.New(apperr.Unauthorized,
			"Account has not been confirmed, we have sent a confirmation email")
	}

	if !auth.CheckPassword(password, user.Password) {
		return apperr.New(apperr.Unauthorized, "Invalid credentials")
	}
	return nil
}

// RequestCode mints and mails a new confirmation token for a pending
// account.
func (s *AuthService) RequestCode(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "User is not registered")
	}
	if err != nil {
		return err
	}
	if user.Confirmed {
		return apperr.New(apperr.Forbidden, "User is already confirmed")
	}

	token, err := s.mintToken(user.ID)
	if err != nil {
		return err
	}

	s.dispatch(s.mailer.SendConfirmation, email.Payload{
		Email: user.Email,
		Name:  user.Name,
		Token: token.Code,
	})

	return settle(
		func() error { return s.users.Save(ctx, user) },
		func() error { return s.tokens.Create(ctx, token) },
	)
}

// ForgotPassword mints a reset token bound to the account and mails it.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "User is not registered")
	}
	if err != nil {
		return err
	}

	token, err := s.mintToken(user.ID)
	if err != nil {
		return err
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return err
	}

	s.dispatch(s.mailer.SendPasswordReset, email.Payload{
		Email: user.Email,
		Name:  user.Name,
		Token: token.Code,
	})
	return nil
}

// ValidateToken is a pure check: it reports whether a code is currently
// consumable without consuming it.
func (s *AuthService) ValidateToken(ctx context.Context, code string) error {
	_, err := s.findToken(ctx, code)
	return err
}

// ResetPassword consumes a reset code and overwrites the bound account's
// password with a freshly hashed value.
func (s *AuthService) ResetPassword(ctx context.Context, code, password string) error {
	token, err := s.findToken(ctx, code)
	if err != nil {
		return err
	}
	user, err := s.users.FindByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hash
	return settle(
		func() error { return s.users.Save(ctx, user) },
		func() error { return s.tokens.Delete(ctx, token) },
	)
}

func (s *AuthService) findToken(ctx context.Context, code string) (*models.Token, error) {
	token, err := s.tokens.FindByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Invalid token")
	}
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (s *AuthService) mintToken(userID uuid.UUID) (*models.Token, error) {
	code, err := auth.GenerateCode()
	if err != nil {
		return nil, err
	}
	return &models.Token{ID: uuid.New(), Code: code, UserID: userID}, nil
}

// dispatch sends a message off the request goroutine. Failures are logged
// and never surfaced to the caller.
func (s *AuthService) dispatch(send func(context.Context, email.Payload) error, p email.Payload) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailDispatchTimeout)
		defer cancel()
		if err := send(ctx, p); err != nil {
			log.Printf("Error sending email to %s: %v", p.Email, err)
		}
	}()
}
