package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed admin session token. There is a single
// shared admin identity; the token proves possession of the admin password.
const SessionCookie = "chorale_admin_session"

// SessionTTL caps how long an admin stays signed in.
const SessionTTL = 7 * 24 * time.Hour

// GenerateSessionToken signs an admin session token.
func GenerateSessionToken(secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(SessionTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// verifies the session token (unexported, only used internally).
func parseSessionToken(tokenString, secret string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid claims")
	}
	if sub, _ := claims["sub"].(string); sub != "admin" {
		return errors.New("invalid sub claim")
	}
	return nil
}

// SessionMiddleware rejects requests that lack a valid admin session cookie.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if err := parseSessionToken(cookie, secret); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
			return
		}
		c.Next()
	}
}
