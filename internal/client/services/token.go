package services

import (
	"fmt"
	"time"

	"github.com/editaisbr/editais/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// tokenSigningKey signs the locally minted session marker. The marker only
// records that a login happened on this machine; the backend never accepts
// it as a credential.
var tokenSigningKey = []byte("editaisbr-local-session")

// SessionClaims is the payload of the persisted token marker.
type SessionClaims struct {
	jwt.RegisteredClaims
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// MintTokenMarker builds the HS256-signed marker persisted under the token
// key after every successful session mutation.
func MintTokenMarker(uid, email string) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   "editaisbr-client",
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UID:   uid,
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tokenSigningKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token marker: %w", err)
	}
	return signed, nil
}

// ParseTokenMarker verifies a persisted marker and returns its claims.
// Returns common.ErrInvalidToken for anything that does not verify.
func ParseTokenMarker(marker string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(marker, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tokenSigningKey, nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
