package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims carries the application claims embedded in access tokens.
// UserID is the subject's UUID in string form; TokenType guards against a
// non-access token being presented on API routes.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}
