package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims ActorClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func actorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Actor(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		if id := ActorID(c); id != nil {
			c.JSON(http.StatusOK, gin.H{"actor": *id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"actor": nil})
	})
	return r
}

func TestActor(t *testing.T) {
	expiry := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "anonymous",
			wantStatus: http.StatusOK,
			wantBody:   `{"actor":null}`,
		},
		{
			name:       "user_id claim",
			header:     "Bearer " + signToken(t, testSecret, ActorClaims{UserID: 42, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: expiry}}),
			wantStatus: http.StatusOK,
			wantBody:   `{"actor":42}`,
		},
		{
			name:       "numeric subject",
			header:     "Bearer " + signToken(t, testSecret, ActorClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "7", ExpiresAt: expiry}}),
			wantStatus: http.StatusOK,
			wantBody:   `{"actor":7}`,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, "other", ActorClaims{UserID: 42}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + signToken(t, testSecret, ActorClaims{UserID: 42, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer header",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no usable user id",
			header:     "Bearer " + signToken(t, testSecret, ActorClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			actorRouter().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
