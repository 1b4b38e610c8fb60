package service

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

// JWTSessionCodec implements ports.SessionCodec with HS256-signed JWTs. The
// token carries only the user ID as its subject; no expiration claim is set,
// so a token stays verifiable until the signing secret changes.
type JWTSessionCodec struct {
	secret []byte
}

func NewJWTSessionCodec(secret string) *JWTSessionCodec {
	return &JWTSessionCodec{secret: []byte(secret)}
}

func (c *JWTSessionCodec) Issue(userID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: userID})
	return t.SignedString(c.secret)
}

func (c *JWTSessionCodec) Decode(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidSession
	}
	return claims.Subject, nil
}
