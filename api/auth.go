// Package api talks to the record service a finished capture is
// registered with.
package api

import (
	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
)

// UserInfo identifies the authenticated user a record is created for.
type UserInfo struct {
	UserID string
	Email  string
}

// ParseToken extracts the user identity from a JWT. The signature is
// not verified here: the token is only inspected for identity, the
// service verifies it on every request.
func ParseToken(token string) (*UserInfo, error) {
	if token == "" {
		return nil, errors.New("no user token configured")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parsing user token")
	}

	info := &UserInfo{}
	if sub, ok := claims["sub"].(string); ok {
		info.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}

	if info.UserID == "" {
		return nil, errors.New("user token has no subject")
	}
	return info, nil
}
