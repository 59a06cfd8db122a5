package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b4dow/uptask-backend/internal/apperr"
	"github.com/b4dow/uptask-backend/internal/auth"
	"github.com/b4dow/uptask-backend/models"
)

func newAuthFixture() (*AuthService, *fakeUserStore, *fakeTokenStore, *fakeMailer) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	mailer := &fakeMailer{}
	return NewAuthService(users, tokens, mailer), users, tokens, mailer
}

func seedUser(t *testing.T, users *fakeUserStore, email, password string, confirmed bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		ID:        newTestID(),
		Name:      "Test User",
		Email:     email,
		Password:  hash,
		Confirmed: confirmed,
	}
	require.NoError(t, users.Save(context.Background(), user))
	return user
}

func TestRegisterCreatesPendingUserAndToken(t *testing.T) {
	svc, users, tokens, mailer := newAuthFixture()
	ctx := context.Background()

	err := svc.Register(ctx, "Ana", "a@x.com", "12345678")
	require.NoError(t, err)

	user, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.False(t, user.Confirmed)
	assert.NotEqual(t, "12345678", user.Password)
	assert.True(t, auth.CheckPassword("12345678", user.Password))

	require.Equal(t, 1, tokens.count())
	code := tokens.codes()[0]
	token, err := tokens.FindByCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)
	assert.Len(t, code, 6)

	// mail dispatch is fire-and-forget
	require.Eventually(t, func() bool { return mailer.confirmationCount() == 1 },
		time.Second, 10*time.Millisecond)
	assert.Equal(t, code, mailer.lastConfirmation().Token)
	assert.Equal(t, "a@x.com", mailer.lastConfirmation().Email)
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	svc, users, tokens, _ := newAuthFixture()
	ctx := context.Background()

	seedUser(t, users, "a@x.com", "12345678", false)

	err := svc.Register(ctx, "Ana", "a@x.com", "12345678")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
	assert.Equal(t, 1, users.count())
	assert.Equal(t, 0, tokens.count())
}

func TestConfirmUnknownTokenIsNotFound(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	ctx := context.Background()

	user := seedUser(t, users, "a@x.com", "12345678", false)

	err := svc.Confirm(ctx, "000000")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	got, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, got.Confirmed)
}

func TestConfirmFlipsBoundUserAndDeletesToken(t *testing.T) {
	svc, users, tokens, _ := newAuthFixture()
	ctx := context.Background()

	user := seedUser(t, users, "a@x.com", "12345678", false)
	other := seedUser(t, users, "b@x.com", "12345678", false)
	token := &models.Token{ID: newTestID(), Code: "123456", UserID: user.ID}
	require.NoError(t, tokens.Create(ctx, token))

	require.NoError(t, svc.Confirm(ctx, "123456"))

	got, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.Confirmed)

	untouched, err := users.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.False(t, untouched.Confirmed)

	assert.Equal(t, 0, tokens.count())
}

func TestLoginUnknownUserIsNotFound(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	err := svc.Login(context.Background(), "nobody@x.com", "12345678")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestLoginUnconfirmedMintsTokenAndFails(t *testing.T) {
	svc, users, tokens, mailer := newAuthFixture()
	ctx := context.Background()

	seedUser(t, users, "a@x.com", "12345678", false)

	err := svc.Login(ctx, "a@x.com", "12345678")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
	assert.Equal(t, 1, tokens.count())

	require.Eventually(t, func() bool { return mailer.confirmationCount() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestLoginWrongPasswordIsGenericUnauthorized(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	ctx := context.Background()

	seedUser(t, users, "a@x.com", "correct-password", true)

	err := svc.Login(ctx, "a@x.com", "wrong-password")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
	assert.Equal(t, "Invalid credentials", apperr.Message(err))
}

func TestLoginSucceedsForConfirmedUser(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	ctx := context.Background()

	seedUser(t, users, "a@x.com", "correct-password", true)

	assert.NoError(t, svc.Login(ctx, "a@x.com", "correct-password"))
}

func TestRequestCodeForConfirmedUserIsForbidden(t *testing.T) {
	svc, users, tokens, _ := newAuthFixture()
	ctx := context.Background()

	seedUser(t, users, "a@x.com", "12345678", true)

	err := svc.RequestCode(ctx, "a@x.com")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))
	assert.Equal(t, 0, tokens.count())
}

func TestRequestCodeMintsAndMailsToken(t *testing.T) {
	svc, users, tokens, mailer := newAuthFixture()
	ctx := context.Background()

	user := seedUser(t, users, "a@x.com", "12345678", false)

	require.NoError(t, svc.RequestCode(ctx, "a@x.com"))
	require.Equal(t, 1, tokens.count())

	token, err := tokens.FindByCode(ctx, tokens.codes()[0])
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)

	require.Eventually(t, func() bool { return mailer.confirmationCount() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestForgotPasswordUnknownUserIsNotFound(t *testing.T) {
	svc, _, tokens, _ := newAuthFixture()

	err := svc.ForgotPassword(context.Background(), "nobody@x.com")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.Equal(t, 0, tokens.count())
}

func TestForgotPasswordMintsBoundTokenAndMailsReset(t *testing.T) {
	svc, users, tokens, mailer := newAuthFixture()
	ctx := context.Background()

	user := seedUser(t, users, "a@x.com", "12345678", true)

	require.NoError(t, svc.ForgotPassword(ctx, "a@x.com"))
	require.Equal(t, 1, tokens.count())

	token, err := tokens.FindByCode(ctx, tokens.codes()[0])
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)

	require.Eventually(t, func() bool { return mailer.resetCount() == 1 },
		time.Second, 10*time.Millisecond)
	assert.Equal(t, token.Code, mailer.lastReset().Token)
}

func TestValidateToken(t *testing.T) {
	svc, users, tokens, _ := newAuthFixture()
	ctx := context.Background()

	user := seedUser(t, users, "a@x.com", "12345678", true)
	require.NoError(t, tokens.Create(ctx, &models.Token{ID: newTestID(), Code: "654321", UserID: user.ID}))

	assert.NoError(t, svc.ValidateToken(ctx, "654321"))

	err := svc.ValidateToken(ctx, "000000")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	// validation is a pure check, the token survives it
	assert.Equal(t, 1, tokens.count())
}

// slowUserStore delays the user insert so the token write finishes first.
type slowUserStore struct {
	*fakeUserStore
	delay time.Duration
}

func (s *slowUserStore) Create(ctx context.Context, user *models.User) error {
	time.Sleep(s.delay)
	return s.fakeUserStore.Create(ctx, user)
}

func TestRegisterTokenWriteDoesNotWaitForUser(t *testing.T) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	mailer := &fakeMailer{}
	svc := NewAuthService(&slowUserStore{fakeUserStore: users, delay: 50 * time.Millisecond}, tokens, mailer)
	ctx := context.Background()

	// the token row lands before the user row exists; neither write may
	// depend on the other having committed
	err := svc.Register(ctx, "Ana", "a@x.com", "12345678")
	require.NoError(t, err)

	require.Equal(t, 1, tokens.count())
	user, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	token, err := tokens.FindByCode(ctx, tokens.codes()[0])
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)
}

func TestExpiredTokenBehavesAsNotFound(t *testing.T) {
	svc, users, tokens, _ := newAuthFixture()
	tokens.ttl = 10 * time.Minute
	ctx := context.Background()

	user := seedUser(t, users, "a@x.com", "12345678", false)
	stale := &models.Token{
		ID:        newTestID(),
		Code:      "333444",
		UserID:    user.ID,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, tokens.Create(ctx, stale))
	fresh := &models.Token{ID: newTestID(), Code: "555666", UserID: user.ID}
	require.NoError(t, tokens.Create(ctx, fresh))

	err := svc.ValidateToken(ctx, "333444")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	err = svc.Confirm(ctx, "333444")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	got, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, got.Confirmed)

	assert.NoError(t, svc.ValidateToken(ctx, "555666"))
}

func TestResetPasswordRotatesCredentialAndConsumesToken(t *testing.T) {
	svc, users, tokens, _ := newAuthFixture()
	ctx := context.Background()

	user := seedUser(t, users, "a@x.com", "old-password-1", true)
	require.NoError(t, tokens.Create(ctx, &models.Token{ID: newTestID(), Code: "111222", UserID: user.ID}))

	require.NoError(t, svc.ResetPassword(ctx, "111222", "new-password-1"))

	err := svc.Login(ctx, "a@x.com", "old-password-1")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))

	assert.NoError(t, svc.Login(ctx, "a@x.com", "new-password-1"))

	// single use: a second consumption attempt does not find the token
	err = svc.ResetPassword(ctx, "111222", "another-password")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
