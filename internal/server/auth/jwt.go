// Package auth issues and checks the session tokens handed out at login.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the user id in sub, the token id in jti and the account
// name in acc.
type Claims struct {
	jwt.RegisteredClaims
	Account string `json:"acc"`
}

// GenerateToken signs a token for userID. The returned token id identifies
// it for revocation.
func GenerateToken(userID, account string, secretKey []byte, validityDuration time.Duration) (token string, tokenID string, err error) {
	now := time.Now()
	tokenID = uuid.NewString()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Account: account,
	})

	token, err = t.SignedString(secretKey)
	if err != nil {
		return "", "", err
	}
	return token, tokenID, nil
}

// ParseToken validates the signature and expiry of tokenString.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
