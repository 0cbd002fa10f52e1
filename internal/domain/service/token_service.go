package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates the session tokens issued by the auth collaborator.
// Token issuance lives outside this service; only validation is needed to
// recover the stable user id and role claim every component consumes.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
