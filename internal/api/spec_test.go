package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/refunds",
		"/refunds/{id}/process",
		"/refunds/{id}/cancel",
		"/refunds/{id}/reset",
		"/invoicing",
		"/invoicing/{id}/void",
		"/webhooks/stripe",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestDocsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterDocsRoutes(r)

	tests := []struct {
		path        string
		wantStatus  int
		contentType string
	}{
		{"/", http.StatusMovedPermanently, ""},
		{"/docs", http.StatusOK, "text/html; charset=utf-8"},
		{"/docs/openapi", http.StatusOK, "application/json; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
		})
	}
}
