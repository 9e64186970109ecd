package auth

import (
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// FallbackDisplayName is shown when a signup token carries no usable name.
const FallbackDisplayName = "GitHub User"

// PeekSignupToken extracts a provisional display name from a signup token
// without verifying its signature.
//
// This is a display hint only. The token is validated server-side when it is
// exchanged at /auth/complete-signup; nothing read here may ever feed an
// access decision.
func PeekSignupToken(token string) string {
	claims := jwtlib.MapClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(token, claims); err != nil {
		return FallbackDisplayName
	}

	if login, ok := claims["githubLogin"].(string); ok && login != "" {
		return login
	}
	if name, ok := claims["name"].(string); ok && name != "" {
		return name
	}
	return FallbackDisplayName
}
