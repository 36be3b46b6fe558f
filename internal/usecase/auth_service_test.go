package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/racedaybr/pitvote/internal/domain/admin"
	"github.com/racedaybr/pitvote/internal/infrastructure/repository/memory"
	"github.com/racedaybr/pitvote/internal/infrastructure/token"
	"github.com/racedaybr/pitvote/internal/platform/password"
)

func newAuthFixture(t *testing.T) (*AuthService, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	hasher := password.NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("super-secret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	store.PutAdmin(admin.Credential{Username: "race-control", PasswordHash: hash})

	tokens, err := token.NewManager("0123456789abcdef0123456789abcdef", 30*time.Minute)
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}

	return NewAuthService(store.Admins(), hasher, tokens), store
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	accessToken, err := svc.Login(ctx, "race-control", "super-secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if accessToken == "" {
		t.Fatalf("expected non-empty access token")
	}

	principal, err := svc.VerifyAccessToken(ctx, accessToken)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if principal.Username != "race-control" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.Login(ctx, "race-control", "guessing"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		if _, err := svc.Login(ctx, "nobody", "super-secret"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("blank input", func(t *testing.T) {
		if _, err := svc.Login(ctx, "  ", ""); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestAuthService_VerifyAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	t.Run("missing token", func(t *testing.T) {
		if _, err := svc.VerifyAccessToken(ctx, "  "); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := svc.VerifyAccessToken(ctx, "not.a.jwt"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("token signed by another key", func(t *testing.T) {
		foreign, err := token.NewManager("ffffffffffffffffffffffffffffffff", 30*time.Minute)
		if err != nil {
			t.Fatalf("new foreign manager: %v", err)
		}
		raw, err := foreign.Issue("race-control")
		if err != nil {
			t.Fatalf("issue foreign token: %v", err)
		}
		if _, err := svc.VerifyAccessToken(ctx, raw); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestAuthService_VerifyAccessTokenUnknownSubject(t *testing.T) {
	ctx := context.Background()

	store := memory.NewStore()
	hasher := password.NewHasher(bcrypt.MinCost)
	tokens, err := token.NewManager("0123456789abcdef0123456789abcdef", 30*time.Minute)
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}
	svc := NewAuthService(store.Admins(), hasher, tokens)

	// Valid signature, but the subject is not a stored admin.
	raw, err := tokens.Issue("ghost")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := svc.VerifyAccessToken(ctx, raw); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
