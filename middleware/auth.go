package middleware

import (
	"errors"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"booking-backend/apperrors"
	"booking-backend/utils"
)

const userIDKey = "userId"

type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// ParseValidate verifies an HS256 token signed with JWT_SECRET and
// returns its claims.
func ParseValidate(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	return c, nil
}

// AuthenticateToken extracts the caller's user id from a Bearer token
// and stores it on the context. Session management is not handled
// here; a valid signature is all the transport layer requires.
func AuthenticateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.JSONAppError(c, apperrors.Unauthorized("missing bearer token"))
			c.Abort()
			return
		}

		claims, err := ParseValidate(strings.TrimPrefix(header, "Bearer "))
		if err != nil || claims.UserID == 0 {
			utils.JSONAppError(c, apperrors.Unauthorized("invalid token"))
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id placed by AuthenticateToken.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
