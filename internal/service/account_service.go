package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"go-course-platform/internal/domain"
	"go-course-platform/pkg/utils"
)

// MinSecretLen is the minimum accepted password length.
const MinSecretLen = 8

// AccountService is the credential store: it owns user records and is the
// only component that ever sees a raw secret.
type AccountService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewAccountService(users domain.UserRepository, log *zap.Logger) *AccountService {
	return &AccountService{users: users, log: log}
}

// Register creates a user and returns its id. Only the bcrypt hash of the
// secret is stored. Emails are compared case-insensitively by storing them
// lowercased.
func (s *AccountService) Register(ctx context.Context, name, email, rawSecret string) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return "", domain.E(domain.CodeInvalidInput, "name is required")
	}
	if email == "" || !strings.ContainsRune(email, '@') {
		return "", domain.E(domain.CodeInvalidInput, "invalid email")
	}
	if len(rawSecret) < MinSecretLen {
		return "", domain.Ef(domain.CodeInvalidInput, "secret must be at least %d characters", MinSecretLen)
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.E(domain.CodeDuplicateEmail, "email already registered")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         name,
		PasswordHash: utils.HashPassword(rawSecret),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// A concurrent registration may win between the check and the
		// insert; the repo reports that as DUPLICATE_EMAIL.
		return "", err
	}
	s.log.Info("user registered", zap.String("user_id", u.ID))
	return u.ID, nil
}

// Verify checks email+secret and returns the user id. The response never
// reveals whether the email or the secret was wrong; bcrypt's comparison is
// constant-time on the hash.
func (s *AccountService) Verify(ctx context.Context, email, rawSecret string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil || !utils.CheckPassword(rawSecret, u.PasswordHash) {
		return "", domain.E(domain.CodeInvalidCredentials, "invalid credentials")
	}
	return u.ID, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.E(domain.CodeNotFound, "user not found")
	}
	return u, nil
}
