package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/racedaybr/pitvote/internal/domain/admin"
)

// TokenManager issues and checks signed access tokens for admin subjects.
type TokenManager interface {
	Issue(subject string) (string, error)
	Validate(raw string) (string, error)
}

// PasswordVerifier compares a plaintext password against a stored hash.
// A mismatch is reported through the boolean, not the error.
type PasswordVerifier interface {
	Verify(plain, hash string) (bool, error)
}

// AuthService owns admin login and bearer-token verification.
type AuthService struct {
	adminRepo admin.Repository
	passwords PasswordVerifier
	tokens    TokenManager
}

func NewAuthService(adminRepo admin.Repository, passwords PasswordVerifier, tokens TokenManager) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Login checks the credentials and returns a fresh access token. Unknown
// usernames and wrong passwords both come back as ErrUnauthorized so the
// response never reveals which half failed.
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || plainPassword == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	cred, exists, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("get admin: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}

	ok, err := s.passwords.Verify(plainPassword, cred.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}

	accessToken, err := s.tokens.Issue(cred.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return accessToken, nil
}

// VerifyAccessToken validates a bearer token and re-resolves its subject
// against stored admins, so a deleted admin's outstanding tokens stop
// working immediately.
func (s *AuthService) VerifyAccessToken(ctx context.Context, raw string) (admin.Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return admin.Principal{}, fmt.Errorf("%w: missing token", ErrUnauthorized)
	}

	subject, err := s.tokens.Validate(raw)
	if err != nil {
		return admin.Principal{}, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	_, exists, err := s.adminRepo.GetByUsername(ctx, subject)
	if err != nil {
		return admin.Principal{}, fmt.Errorf("get admin: %w", err)
	}
	if !exists {
		return admin.Principal{}, fmt.Errorf("%w: unknown subject", ErrUnauthorized)
	}

	return admin.Principal{Username: subject}, nil
}
