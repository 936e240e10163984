package seed

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenPaths lists where login responses carry the session token, in
// lookup order. Older backends return "token", newer ones "access_token".
var tokenPaths = []string{"token", "access_token", "data.token"}

// sessionClaims mirrors the claims the backend signs into access tokens.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"userId"`
	TokenUUID string `json:"tokenUuid"`
	ExpiredAt int64  `json:"expiredAt"`
}

// TokenClaims is the unverified view of a session token.
type TokenClaims struct {
	UserID    int64
	TokenID   string
	Subject   string
	ExpiresAt time.Time
}

// InspectToken decodes token as a JWT without verifying its signature.
// Opaque tokens report ok=false.
func InspectToken(token string) (TokenClaims, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return TokenClaims{}, false
	}
	var claims sessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, false
	}

	result := TokenClaims{
		UserID:  claims.UserID,
		TokenID: claims.TokenUUID,
		Subject: claims.Subject,
	}
	if result.TokenID == "" {
		result.TokenID = claims.ID
	}
	switch {
	case claims.ExpiresAt != nil:
		result.ExpiresAt = claims.ExpiresAt.Time
	case claims.ExpiredAt > 0:
		result.ExpiresAt = time.Unix(claims.ExpiredAt, 0)
	}
	return result, true
}

// captureToken returns the first non-empty string found at tokenPaths.
func captureToken(value any) (string, bool) {
	for _, path := range tokenPaths {
		found, ok := lookupPath(value, path)
		if !ok {
			continue
		}
		token, ok := found.(string)
		if !ok {
			continue
		}
		if token = strings.TrimSpace(token); token != "" {
			return token, true
		}
	}
	return "", false
}

func lookupPath(value any, path string) (any, bool) {
	current := value
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
