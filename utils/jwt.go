package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SignSessionToken émet le token porteur d'une session. Pas d'expiration :
// c'est voulu, un token reste valable tant qu'il n'est pas révoqué par un
// logout ou un logoutAll.
func SignSessionToken(userID string, secret []byte) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Subject:  userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("can't sign the token: %w", err)
	}
	return signed, nil
}

// VerifySessionToken contrôle la signature et rend les claims. La validité
// de session (token toujours actif côté compte) se vérifie ensuite en base.
func VerifySessionToken(tokenStr string, secret []byte) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
