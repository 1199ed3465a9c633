package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and verifies HS256 session tokens. It implements
// Verifier.
type TokenService struct {
	secret    []byte
	expiresIn time.Duration
}

func NewTokenService(secret string, expiresIn time.Duration) *TokenService {
	return &TokenService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
	}
}

// Sign returns a new token for the user.
func (s *TokenService) Sign(userID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiresIn)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses the token and returns the identity it carries.
//
// All parse and signature failures map to ErrInvalidCredentials: an
// expired or tampered token is a caller problem, not a server problem.
func (s *TokenService) Verify(credential string) (Identity, error) {
	token, err := jwt.Parse(credential, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidCredentials
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	id, err := uuid.Parse(subject)
	if err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{ID: id}, nil
}
