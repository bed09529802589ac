// Package secret checks the shared admin credential sent in the
// x-edit-password header.
package secret

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HeaderName is the request header carrying the admin credential.
const HeaderName = "x-edit-password"

// Guard compares caller-supplied credentials against the server secret.
// A secret beginning with "$2" is treated as a bcrypt hash.
type Guard struct {
	secret string
}

func NewGuard(secret string) *Guard {
	return &Guard{secret: strings.TrimSpace(secret)}
}

// Configured reports whether a server secret is set. An unconfigured guard
// rejects every credential.
func (g *Guard) Configured() bool {
	return g != nil && g.secret != ""
}

// Verify reports whether credential matches the server secret.
func (g *Guard) Verify(credential string) bool {
	if !g.Configured() || credential == "" {
		return false
	}
	if isBcryptHash(g.secret) {
		return bcrypt.CompareHashAndPassword([]byte(g.secret), []byte(credential)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(g.secret), []byte(credential)) == 1
}

// Hashed reports whether the server secret is a bcrypt hash. A hashed
// secret cannot itself be used as a credential.
func (g *Guard) Hashed() bool {
	return g.Configured() && isBcryptHash(g.secret)
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// Hash returns a bcrypt hash suitable for EDIT_PASSWORD.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}
