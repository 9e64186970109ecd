package devserver

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const signupTokenTTL = 15 * time.Minute

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// issueSignupToken mints the one-time token carried through the simulated
// GitHub handoff. The client only peeks at the name claims for display; the
// server verifies the signature on exchange.
func issueSignupToken(secret []byte, githubLogin, name string) (string, error) {
	now := NowTimeFunc()
	claims := jwtlib.MapClaims{
		"githubLogin": githubLogin,
		"name":        name,
		"iat":         now.Unix(),
		"exp":         now.Add(signupTokenTTL).Unix(),
		"jti":         uuid.New().String(),
	}

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "[issueSignupToken] sign")
	}
	return token, nil
}

// verifySignupToken checks signature and expiry and returns the GitHub
// login and display name claims.
func verifySignupToken(secret []byte, raw string) (githubLogin, name string, err error) {
	claims := jwtlib.MapClaims{}
	_, err = jwtlib.ParseWithClaims(raw, claims, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", "", errors.Wrap(err, "[verifySignupToken] parse")
	}

	githubLogin, _ = claims["githubLogin"].(string)
	name, _ = claims["name"].(string)
	return githubLogin, name, nil
}
