package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/karbhat74/Aikyam/internal/model"
	"github.com/karbhat74/Aikyam/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret-do-not-deploy"

// memUserRepo enforces email uniqueness the way the real store does: at
// write time, not by a prior existence check.
type memUserRepo struct {
	byEmail map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*model.User{}}
}

func (m *memUserRepo) Create(_ context.Context, user *model.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestRegisterLoginVerify(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newMemUserRepo(), testSecret)

	user, err := svc.Register(ctx, "alice", "a@x.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	// Same email again must surface the storage-layer duplicate.
	_, err = svc.Register(ctx, "alice2", "a@x.com", "another-pass")
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	token, loggedIn, err := svc.Login(ctx, "a@x.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	uid, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), testSecret)

	_, _, err := svc.Login(context.Background(), "nobody@x.com", "whatever1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newMemUserRepo(), testSecret)

	_, err := svc.Register(ctx, "bob", "b@x.com", "bobs-password")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "b@x.com", "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newMemUserRepo(), testSecret)

	tests := []struct {
		name     string
		username string
		email    string
		password string
		field    string
	}{
		{"empty username", "", "a@x.com", "longenough", "username"},
		{"missing at", "alice", "ax.com", "longenough", "email"},
		{"missing domain dot", "alice", "a@xcom", "longenough", "email"},
		{"empty local part", "alice", "@x.com", "longenough", "email"},
		{"short password", "alice", "a@x.com", "short", "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, tt.password)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), testSecret)

	claims := Claims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongKeyAndGarbage(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), testSecret)

	claims := Claims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
