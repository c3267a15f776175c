// Package middleware holds the HTTP middleware shared by the API server.
package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tutorbase/backend/internal/models"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"
)

// IdempotencyStore persists the first successful response per key and path
type IdempotencyStore interface {
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, idemKey *models.IdempotencyKey) error
}

type responseRecorder struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (rr *responseRecorder) WriteHeader(code int) {
	rr.status = code
	rr.ResponseWriter.WriteHeader(code)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	rr.body.Write(b)
	return rr.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a repeated Idempotency-Key on
// a POST to one of paths. Requests without the header run normally. Only 2xx
// responses are stored, so a failed request can be retried with the same key.
func Idempotency(store IdempotencyStore, logger *slog.Logger, paths ...string) func(http.Handler) http.Handler {
	guarded := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		guarded[normalizeRequestPath(p)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestPath := normalizeRequestPath(r.URL.Path)
			if _, ok := guarded[requestPath]; !ok || r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			key := strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			cached, err := store.Get(ctx, key, requestPath)
			if err != nil {
				logger.Error("idempotency lookup failed", "key", key, "path", requestPath, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if cached != nil {
				logger.Info("replaying idempotent response",
					"key", key,
					"path", requestPath,
					"status", cached.ResponseStatus,
				)
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.Header().Set(replayedHeader, "true")
				w.WriteHeader(cached.ResponseStatus)
				_, _ = w.Write([]byte(cached.ResponseBody)) //nolint:errcheck // client may have gone away
				return
			}

			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status < 200 || rec.status >= 300 {
				return
			}

			err = store.Store(ctx, &models.IdempotencyKey{
				Key:            key,
				RequestPath:    requestPath,
				ResponseStatus: rec.status,
				ResponseBody:   rec.body.String(),
				CreatedAt:      time.Now(),
			})
			if err != nil {
				logger.Error("failed to store idempotent response", "key", key, "path", requestPath, "error", err)
			}
		})
	}
}

func normalizeRequestPath(urlPath string) string {
	if len(urlPath) > 1 {
		return strings.TrimSuffix(urlPath, "/")
	}
	return urlPath
}
