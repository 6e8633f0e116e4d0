package auth

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ownerKey = "owner_id"

// Middleware verifies HS256 bearer tokens and stores the subject as the owner id.
func Middleware(secret []byte) gin.HandlerFunc {
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authorization header"})
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(token, claims, keyFunc,
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(30*time.Second),
		)
		if err != nil || claims.Subject == "" {
			slog.Debug("rejected bearer token", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ownerKey, claims.Subject)
		c.Next()
	}
}

// OwnerID returns the authenticated owner, or "" outside the middleware.
func OwnerID(c *gin.Context) string {
	return c.GetString(ownerKey)
}

// SetOwnerID is used by callers that authenticate by other means.
func SetOwnerID(c *gin.Context, ownerID string) {
	c.Set(ownerKey, ownerID)
}

// IssueToken signs a token for ownerID. Used by ctl and tests; sessions are issued elsewhere in production.
func IssueToken(secret []byte, ownerID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   ownerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
