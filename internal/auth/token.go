// File: internal/auth/token.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session tokens carry an anonymous session id, not a user identity. Signing
// them keeps a client from forging its way into another session's history.

// GenerateSessionToken signs a session id into a compact token.
func GenerateSessionToken(sessionID string, secretKey []byte) (string, error) {
	if sessionID == "" {
		return "", errors.New("session ID cannot be empty")
	}

	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour * 24 * 7).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateSessionToken checks the signature and returns the session id.
func ValidateSessionToken(tokenString string, secretKey []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["sub"].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", errors.New("invalid session token")
}
