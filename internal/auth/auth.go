package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role allowed past the protected routes.
const RoleAdmin = "admin"

// ErrInvalidToken is returned for tokens that fail signature or claim
// checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Principal is the verified identity extracted from a bearer token. The
// raw token rides along so fetchers can forward it to the backends.
type Principal struct {
	UserID string
	Role   string
	Token  string
}

// IsAdmin reports whether the principal may use the admin dashboard.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// Verifier checks bearer tokens issued by the user service. The HS256
// secret is shared with that service; verification happens locally so a
// rejected request never reaches a backend.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the shared signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a token and returns its principal.
func (v *Verifier) Verify(token string) (Principal, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Principal{}, ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	if id == "" {
		return Principal{}, ErrInvalidToken
	}

	return Principal{UserID: id, Role: role, Token: token}, nil
}
