package token

import (
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every validation failure: bad signature, malformed
// claims, expiry, empty subject. Callers must not distinguish between them.
var ErrInvalidToken = crerr.New("invalid or expired token")

const minSecretLen = 32

// Manager issues and validates HS256 bearer tokens carrying a subject claim.
// The signing secret is operator-supplied; construction fails on weak input
// so a misconfigured deployment never serves traffic.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if len(secret) < minSecretLen {
		return nil, crerr.Newf("token signing secret must be at least %d bytes", minSecretLen)
	}
	if ttl <= 0 {
		return nil, crerr.New("token ttl must be positive")
	}

	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(subject string) (string, error) {
	if subject == "" {
		return "", crerr.New("token subject is required")
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", crerr.Wrap(err, "sign token")
	}

	return signed, nil
}

// Validate checks signature, algorithm and expiry, and returns the subject.
func (m *Manager) Validate(raw string) (string, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(_ *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", crerr.WithSecondaryError(ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
