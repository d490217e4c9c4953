package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-course-platform/internal/domain"
)

func newTestAccountService() (*AccountService, *memUserRepo) {
	repo := newMemUserRepo()
	return NewAccountService(repo, zap.NewNop()), repo
}

func TestAccountService_Register(t *testing.T) {
	svc, repo := newTestAccountService()

	id, err := svc.Register(context.Background(), "John", "john@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	u, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "john@example.com", u.Email)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotContains(t, u.PasswordHash, "password123", "raw secret must never be stored")
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAccountService()

	_, err := svc.Register(context.Background(), "John", "john@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Johnny", "john@example.com", "password456")
	require.Error(t, err)
	assert.Equal(t, domain.CodeDuplicateEmail, domain.CodeOf(err))

	// Comparison is case-insensitive.
	_, err = svc.Register(context.Background(), "Johnny", "John@Example.COM", "password456")
	require.Error(t, err)
	assert.Equal(t, domain.CodeDuplicateEmail, domain.CodeOf(err))
}

func TestAccountService_Register_InvalidInput(t *testing.T) {
	svc, _ := newTestAccountService()

	cases := []struct {
		name, uname, email, secret string
	}{
		{"empty name", "", "a@b.com", "password123"},
		{"empty email", "John", "", "password123"},
		{"email without at", "John", "not-an-email", "password123"},
		{"short secret", "John", "a@b.com", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.uname, tc.email, tc.secret)
			require.Error(t, err)
			assert.Equal(t, domain.CodeInvalidInput, domain.CodeOf(err))
		})
	}
}

func TestAccountService_Verify(t *testing.T) {
	svc, _ := newTestAccountService()

	id, err := svc.Register(context.Background(), "John", "john@example.com", "password123")
	require.NoError(t, err)

	got, err := svc.Verify(context.Background(), "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	// Lookup is case-insensitive on email.
	got, err = svc.Verify(context.Background(), "John@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestAccountService_Verify_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAccountService()

	_, err := svc.Register(context.Background(), "John", "john@example.com", "password123")
	require.NoError(t, err)

	// Wrong secret and unknown email fail identically.
	_, err = svc.Verify(context.Background(), "john@example.com", "wrong-secret")
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidCredentials, domain.CodeOf(err))

	_, err = svc.Verify(context.Background(), "nobody@example.com", "password123")
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidCredentials, domain.CodeOf(err))
}

func TestAccountService_Get_NotFound(t *testing.T) {
	svc, _ := newTestAccountService()

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}
