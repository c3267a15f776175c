package middleware

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tutorbase/backend/internal/response"
)

// ContextActorID is the gin context key holding the acting user's id
const ContextActorID = "actor_id"

var errInvalidToken = errors.New("invalid token")

// ActorClaims are the bearer-token claims this service reads. The user id
// is taken from user_id, falling back to a numeric subject.
type ActorClaims struct {
	UserID int64 `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// ParseActor validates an HS256 token and returns the user id it names
func ParseActor(secret []byte, token string) (int64, error) {
	claims := &ActorClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, errInvalidToken
	}

	if claims.UserID > 0 {
		return claims.UserID, nil
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidToken
	}
	return id, nil
}

// Actor records the bearer token's user as the acting user. A missing
// header is allowed; a malformed or invalid token is rejected with 401.
func Actor(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		id, err := ParseActor(key, strings.TrimSpace(parts[1]))
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextActorID, id)
		c.Next()
	}
}

// ActorID returns the acting user's id, or nil when the request is anonymous
func ActorID(c *gin.Context) *int64 {
	v, ok := c.Get(ContextActorID)
	if !ok {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}
