// Package auth resolves request credentials to user identities.
//
// The session gate consumes the Verifier interface so that handlers
// never depend on a concrete token implementation. "No credentials" and
// "credential verification failed" are distinct error conditions and
// must stay distinct all the way to the HTTP status code.
package auth

import (
	"errors"

	"github.com/google/uuid"
)

// Identity is the resolved caller of a request.
type Identity struct {
	ID uuid.UUID
}

var (
	ErrNoCredentials      = errors.New("no credentials were provided")
	ErrInvalidCredentials = errors.New("the provided credentials are invalid or expired")
)

// Verifier resolves a raw credential string to an identity.
//
// Implementations return ErrInvalidCredentials for credentials that do
// not verify. Any other error means verification itself failed and is
// reported as an internal error, never as unauthorized.
type Verifier interface {
	Verify(credential string) (Identity, error)
}
