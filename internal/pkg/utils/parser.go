package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// ParseActorJWT validates a bearer token and returns the authenticated party
// ID (sub) and its explicit role claim. The role is always carried in the
// token payload, never derived from the shape of the account record.
func ParseActorJWT(tokenString, secret string) (actorID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid token claims")
	}

	actorID, ok = claims["sub"].(string)
	if !ok || actorID == "" {
		return "", "", fmt.Errorf("sub claim missing")
	}
	role, ok = claims["role"].(string)
	if !ok || role == "" {
		return "", "", fmt.Errorf("role claim missing")
	}
	return actorID, role, nil
}
