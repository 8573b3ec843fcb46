// Package token issues and validates signed session tokens.
//
// A token binds an account ID and an issuance time to a server-held HMAC
// secret (HS256). Tokens are stateless: the server keeps no record of issued
// tokens and no revocation list, so a token stays structurally valid until
// its natural expiry even if the account changes or disappears in the
// meantime. Callers that resolve a token must therefore re-check that the
// subject still exists.
package token

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/accountd/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the subject account ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// Issuer mints and validates session tokens with a shared secret.
type Issuer struct {
	secretKey        []byte
	validityDuration time.Duration
}

func NewIssuer(secretKey []byte, validityDuration time.Duration) *Issuer {
	return &Issuer{secretKey: secretKey, validityDuration: validityDuration}
}

// Issue returns a signed token for the given account ID. Two calls for the
// same account yield different tokens (issuance time varies) but both remain
// independently valid.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := t.SignedString(i.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate parses and verifies a token string and returns the subject
// account ID. Failures are tagged: common.ErrTokenMalformed,
// common.ErrTokenSignature, or common.ErrTokenExpired. Validation never
// consults any store, so it cannot leak whether the subject exists.
func (i *Issuer) Validate(tokenString string) (string, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrTokenSignature
		default:
			return "", common.ErrTokenMalformed
		}
	}

	if !t.Valid {
		return "", common.ErrTokenMalformed
	}

	return claims.UserID, nil
}
